package handlers

import (
	"log"
	"net/http"

	"github.com/renatoc1/leadtrack/internal/infra/http/middleware"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

type LeadStatsHandler struct {
	ReportUC *usecase.LeadReportUseCase
}

func NewLeadStatsHandler(uc *usecase.LeadReportUseCase) *LeadStatsHandler {
	return &LeadStatsHandler{ReportUC: uc}
}

// HandleGetStats responde o relatório diário filtrado.
// GET /leads/stats?employeeId=&departmentId=&startDate=&endDate=
func (h *LeadStatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	input := usecase.LeadFilterInput{
		EmployeeID:   query.Get("employeeId"),
		DepartmentID: query.Get("departmentId"),
		StartDate:    query.Get("startDate"),
		EndDate:      query.Get("endDate"),
	}

	report, err := h.ReportUC.Execute(r.Context(), input)
	if err != nil {
		log.Printf("❌ Erro ao gerar relatório de leads: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	middleware.RecordReportGenerated()
	writeJSON(w, http.StatusOK, report)
}
