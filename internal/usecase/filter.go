package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/renatoc1/leadtrack/internal/entity"
)

// FilterAll é o valor sentinela dos dropdowns ("todos os funcionários").
const FilterAll = "all"

// LeadFilterInput são os parâmetros crus da query string.
type LeadFilterInput struct {
	EmployeeID   string
	DepartmentID string
	StartDate    string
	EndDate      string
}

// ResolvedFilter é o predicado concreto que o LeadStore sabe executar.
// None curto-circuita para relatório vazio sem tocar no banco.
type ResolvedFilter struct {
	Start       *time.Time
	End         *time.Time
	EmployeeIDs []string
	None        bool
}

var noResults = ResolvedFilter{None: true}

// ResolveLeadFilter expande departamento em conjunto de funcionários e
// normaliza as bordas de data (00:00:00.000 até 23:59:59.999, UTC).
//
// Regra de precedência: quando departamento e funcionário são informados
// juntos e o funcionário pertence ao conjunto, o filtro continua sendo o
// conjunto do departamento — não o id isolado. Comportamento assimétrico,
// mas é o contrato.
func ResolveLeadFilter(ctx context.Context, lookup EmployeeLookup, in LeadFilterInput) (ResolvedFilter, error) {
	var filter ResolvedFilter

	if in.StartDate != "" {
		day, ok := parseFilterDate(in.StartDate)
		if !ok {
			return noResults, nil
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		filter.Start = &start
	}

	if in.EndDate != "" {
		day, ok := parseFilterDate(in.EndDate)
		if !ok {
			return noResults, nil
		}
		end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999_000_000, time.UTC)
		filter.End = &end
	}

	employeeID := in.EmployeeID
	if employeeID == FilterAll {
		employeeID = ""
	}

	if in.DepartmentID != "" && in.DepartmentID != FilterAll {
		ids, err := lookup.FindEmployeeIDs(ctx, in.DepartmentID)
		if err != nil {
			// Departamento inexistente degrada para "sem dados", não é falha.
			if errors.Is(err, entity.ErrDepartmentNotFound) {
				return noResults, nil
			}
			return ResolvedFilter{}, err
		}
		if len(ids) == 0 {
			return noResults, nil
		}

		if employeeID != "" && !containsID(ids, employeeID) {
			return noResults, nil
		}

		filter.EmployeeIDs = ids
		return filter, nil
	}

	if employeeID != "" {
		filter.EmployeeIDs = []string{employeeID}
	}

	return filter, nil
}

func parseFilterDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
