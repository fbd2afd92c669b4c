package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/renatoc1/leadtrack/internal/entity"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

type LeadHandler struct {
	Store usecase.LeadStore
}

func NewLeadHandler(store usecase.LeadStore) *LeadHandler {
	return &LeadHandler{Store: store}
}

// HandleUpdate aplica um update parcial. Depois da criação, status e valor
// vendido são os campos que mudam de verdade.
// PUT /leads/{id}
func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if errs := usecase.ValidateUpdateLeadInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"code":   "VALIDATION_ERROR",
			"errors": validationMessages(errs),
		})
		return
	}

	lead, err := h.Store.UpdateLead(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		log.Printf("❌ Erro ao atualizar lead %s: %v", id, err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// HandleDelete remove o lead. DELETE /leads/{id}
func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteLead(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		log.Printf("❌ Erro ao excluir lead %s: %v", id, err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted"})
}
