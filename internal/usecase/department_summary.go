package usecase

import (
	"context"
)

// DepartmentSummaryUseCase monta a visão gerencial: totais somados dos
// funcionários de cada departamento contra a meta única do departamento.
// A reconciliação aqui é informativa — não existe rateio automático da
// meta entre os membros.
type DepartmentSummaryUseCase struct {
	Departments DepartmentStore
}

func NewDepartmentSummaryUseCase(departments DepartmentStore) *DepartmentSummaryUseCase {
	return &DepartmentSummaryUseCase{Departments: departments}
}

func (uc *DepartmentSummaryUseCase) Execute(ctx context.Context) ([]DepartmentSummary, error) {
	summaries, err := uc.Departments.FindSummaries(ctx)
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].Remaining = ReconcileTarget(summaries[i].Target, float64(summaries[i].SoldLeads))
	}

	if summaries == nil {
		summaries = []DepartmentSummary{}
	}

	return summaries, nil
}
