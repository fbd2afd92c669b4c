package handlers

import (
	"log"
	"net/http"

	"github.com/renatoc1/leadtrack/internal/usecase"
)

type DepartmentHandler struct {
	SummaryUC *usecase.DepartmentSummaryUseCase
}

func NewDepartmentHandler(uc *usecase.DepartmentSummaryUseCase) *DepartmentHandler {
	return &DepartmentHandler{SummaryUC: uc}
}

// HandleList devolve a visão gerencial por departamento.
// GET /departments
func (h *DepartmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.SummaryUC.Execute(r.Context())
	if err != nil {
		log.Printf("❌ Erro ao listar departamentos: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}
