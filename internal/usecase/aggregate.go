package usecase

import (
	"sort"

	"github.com/renatoc1/leadtrack/internal/entity"
)

// BuildDailyReport agrupa os leads por dia-calendário UTC e monta o rollup
// diário. Função pura: não lê do banco, entrada vazia devolve lista vazia.
// A ordem relativa dos leads dentro de cada dia é preservada como veio
// (o store já devolve createdAt desc).
func BuildDailyReport(leads []entity.Lead) []DailyAggregate {
	byDay := make(map[string]*DailyAggregate)

	for _, lead := range leads {
		day := lead.CreatedAt.UTC().Format("2006-01-02")

		agg, ok := byDay[day]
		if !ok {
			agg = &DailyAggregate{
				Date:     day,
				Leads:    []entity.Lead{},
				Statuses: newStatusCounters(),
			}
			byDay[day] = agg
		}

		agg.Leads = append(agg.Leads, lead)
		agg.TotalLeads++
		agg.Statuses[lead.Status]++

		if lead.Status == entity.StatusSold && lead.SoldAmount != nil {
			agg.TotalSoldAmount += *lead.SoldAmount
		}
	}

	report := make([]DailyAggregate, 0, len(byDay))
	for _, agg := range byDay {
		report = append(report, *agg)
	}

	// Dia mais recente primeiro. Datas ISO ordenam lexicograficamente.
	sort.Slice(report, func(i, j int) bool {
		return report[i].Date > report[j].Date
	})

	return report
}

// newStatusCounters garante os cinco status sempre presentes, zerados.
func newStatusCounters() map[entity.LeadStatus]int {
	counters := make(map[entity.LeadStatus]int, len(entity.AllStatuses))
	for _, status := range entity.AllStatuses {
		counters[status] = 0
	}
	return counters
}
