package entity

import (
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

// LeadStatus é o estágio do lead no funil de vendas.
type LeadStatus string

const (
	StatusHot      LeadStatus = "HOT"
	StatusWarm     LeadStatus = "WARM"
	StatusCold     LeadStatus = "COLD"
	StatusSold     LeadStatus = "SOLD"
	StatusCallBack LeadStatus = "CALL_BACK"
)

// AllStatuses na ordem em que os relatórios expõem os contadores.
var AllStatuses = []LeadStatus{StatusHot, StatusWarm, StatusCold, StatusSold, StatusCallBack}

// IsValid reporta se s é um dos cinco valores do enum.
func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusHot, StatusWarm, StatusCold, StatusSold, StatusCallBack:
		return true
	}
	return false
}

type Lead struct {
	ID          string     `json:"id"`
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	Company     *string    `json:"company"`
	Phone       *string    `json:"phone"`
	City        *string    `json:"city"`
	Designation *string    `json:"designation"`
	Message     *string    `json:"message"`
	Status      LeadStatus `json:"status"`

	// SoldAmount só entra nos totais quando Status == SOLD.
	SoldAmount   *float64   `json:"sold_amount"`
	CallBackTime *time.Time `json:"call_back_time"`
	EmployeeID   *string    `json:"employee_id"`
	CreatedAt    time.Time  `json:"created_at"`
}
