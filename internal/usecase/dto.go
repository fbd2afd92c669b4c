package usecase

import (
	"time"

	"github.com/renatoc1/leadtrack/internal/entity"
)

// DailyAggregate é o rollup de um dia de leads. Derivado, nunca persistido.
// Invariantes: TotalLeads == soma dos contadores de Statuses;
// TotalSoldAmount == soma dos SoldAmount dos leads SOLD do dia.
type DailyAggregate struct {
	Date            string                    `json:"date"`
	TotalLeads      int                       `json:"total_leads"`
	Leads           []entity.Lead             `json:"leads"`
	Statuses        map[entity.LeadStatus]int `json:"statuses"`
	TotalSoldAmount float64                   `json:"total_sold_amount"`
}

// NormalizedLead é a linha de importação já saneada, pronta para o batch-write.
type NormalizedLead struct {
	Name         *string           `json:"name"`
	Email        *string           `json:"email"`
	Company      *string           `json:"company"`
	Phone        *string           `json:"phone"`
	City         *string           `json:"city"`
	Designation  *string           `json:"designation"`
	Message      *string           `json:"message"`
	Status       entity.LeadStatus `json:"status"`
	CallBackTime *time.Time        `json:"call_back_time"`
	EmployeeID   *string           `json:"employee_id"`
}

type ImportLeadsOutput struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// UpdateLeadInput carrega só os campos presentes no PUT; nil = não mexe.
type UpdateLeadInput struct {
	Name         *string            `json:"name"`
	Email        *string            `json:"email"`
	Company      *string            `json:"company"`
	Phone        *string            `json:"phone"`
	City         *string            `json:"city"`
	Designation  *string            `json:"designation"`
	Message      *string            `json:"message"`
	Status       *entity.LeadStatus `json:"status"`
	SoldAmount   *float64           `json:"sold_amount"`
	CallBackTime *time.Time         `json:"call_back_time"`
}

type EmployeeTargetOutput struct {
	EmployeeID   string         `json:"employee_id"`
	TargetAmount *float64       `json:"target_amount"`
	SoldLeads    int64          `json:"sold_leads"`
	SoldAmount   float64        `json:"sold_amount"`
	Remaining    TargetProgress `json:"remaining"`
}

// DepartmentSummary é a visão gerencial de um departamento: meta única
// compartilhada e somatório dos números dos funcionários.
type DepartmentSummary struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Target     *float64       `json:"target"`
	TotalLeads int64          `json:"total_leads"`
	SoldLeads  int64          `json:"sold_leads"`
	SoldAmount float64        `json:"sold_amount"`
	Remaining  TargetProgress `json:"remaining"`
}

type CreateEmployeeInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	DepartmentID string   `json:"department_id"`
	TargetAmount *float64 `json:"target_amount"`
}

type UpdateEmployeeInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	DepartmentID string   `json:"department_id"`
	TargetAmount *float64 `json:"target_amount"`
}
