package usecase

import (
	"context"
)

// LeadReportUseCase produz o relatório diário filtrado. Todo o acesso a
// dados entra por interface — nada de cliente global de banco aqui.
type LeadReportUseCase struct {
	Store  LeadStore
	Lookup EmployeeLookup
}

func NewLeadReportUseCase(store LeadStore, lookup EmployeeLookup) *LeadReportUseCase {
	return &LeadReportUseCase{
		Store:  store,
		Lookup: lookup,
	}
}

func (uc *LeadReportUseCase) Execute(ctx context.Context, in LeadFilterInput) ([]DailyAggregate, error) {
	filter, err := ResolveLeadFilter(ctx, uc.Lookup, in)
	if err != nil {
		return nil, err
	}

	// Filtro sem correspondência = relatório vazio bem-formado, nunca erro.
	if filter.None {
		return []DailyAggregate{}, nil
	}

	leads, err := uc.Store.FindLeads(ctx, filter)
	if err != nil {
		return nil, err
	}

	return BuildDailyReport(leads), nil
}
