package usecase

import (
	"context"

	"github.com/renatoc1/leadtrack/internal/entity"
	"github.com/renatoc1/leadtrack/internal/infra/queue"
)

// LeadStore é o colaborador de persistência dos leads. O core nunca abre
// conexão: recebe a interface injetada (testável com mocks, sem banco vivo).
type LeadStore interface {
	FindLeads(ctx context.Context, filter ResolvedFilter) ([]entity.Lead, error)
	CreateLeads(ctx context.Context, batch []NormalizedLead) (int64, error)
	UpdateLead(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error)
	DeleteLead(ctx context.Context, id string) error

	// SoldStats retorna (qtde de leads SOLD, soma dos valores vendidos)
	// dos funcionários informados. Lista vazia = todos.
	SoldStats(ctx context.Context, employeeIDs []string) (int64, float64, error)
}

// EmployeeLookup é somente leitura; o core jamais muta funcionários.
type EmployeeLookup interface {
	FindEmployeeIDs(ctx context.Context, departmentID string) ([]string, error)
	FindEmployee(ctx context.Context, id string) (*entity.Employee, error)
}

type DepartmentStore interface {
	FindSummaries(ctx context.Context) ([]DepartmentSummary, error)
}

type QueueProducerInterface interface {
	PublishLeadsImported(ctx context.Context, payload queue.LeadsImportedPayload) error
}
