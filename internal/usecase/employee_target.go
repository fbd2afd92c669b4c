package usecase

import (
	"context"
)

// EmployeeTargetUseCase cruza a meta configurada do funcionário com os
// números de venda dele. Base de apuração: contagem de leads SOLD.
type EmployeeTargetUseCase struct {
	Employees EmployeeLookup
	Store     LeadStore
}

func NewEmployeeTargetUseCase(employees EmployeeLookup, store LeadStore) *EmployeeTargetUseCase {
	return &EmployeeTargetUseCase{
		Employees: employees,
		Store:     store,
	}
}

func (uc *EmployeeTargetUseCase) Execute(ctx context.Context, employeeID string) (*EmployeeTargetOutput, error) {
	employee, err := uc.Employees.FindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	soldLeads, soldAmount, err := uc.Store.SoldStats(ctx, []string{employeeID})
	if err != nil {
		return nil, err
	}

	return &EmployeeTargetOutput{
		EmployeeID:   employee.ID,
		TargetAmount: employee.TargetAmount,
		SoldLeads:    soldLeads,
		SoldAmount:   soldAmount,
		Remaining:    ReconcileTarget(employee.TargetAmount, float64(soldLeads)),
	}, nil
}
