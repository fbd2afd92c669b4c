package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/renatoc1/leadtrack/internal/entity"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

// EmployeeWriter é o contrato de escrita que o handler consome. O core de
// relatórios só enxerga o EmployeeLookup (somente leitura).
type EmployeeWriter interface {
	Create(ctx context.Context, input usecase.CreateEmployeeInput) (*entity.Employee, error)
	Update(ctx context.Context, id string, input usecase.UpdateEmployeeInput) (*entity.Employee, error)
}

type EmployeeHandler struct {
	Writer   EmployeeWriter
	TargetUC *usecase.EmployeeTargetUseCase
}

func NewEmployeeHandler(writer EmployeeWriter, targetUC *usecase.EmployeeTargetUseCase) *EmployeeHandler {
	return &EmployeeHandler{
		Writer:   writer,
		TargetUC: targetUC,
	}
}

// HandleCreate cadastra um funcionário. POST /employees
func (h *EmployeeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if errs := usecase.ValidateCreateEmployeeInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"code":   "VALIDATION_ERROR",
			"errors": validationMessages(errs),
		})
		return
	}

	employee, err := h.Writer.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmployeeEmailExists):
			// Conflito é repassado como veio: nada de dedup automático.
			writeErrorResponse(w, http.StatusConflict, "EMAIL_EXISTS", "An employee with this email already exists.")
		case errors.Is(err, entity.ErrDepartmentNotFound):
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_DEPARTMENT", "Invalid department ID")
		default:
			log.Printf("❌ Erro ao cadastrar funcionário: %v", err)
			writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Employee added successfully",
		"employee": employee,
	})
}

// HandleUpdate atualiza nome/email e, se vierem, cargo e departamento.
// PUT /employees/{id}
func (h *EmployeeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if errs := usecase.ValidateUpdateEmployeeInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"code":   "VALIDATION_ERROR",
			"errors": validationMessages(errs),
		})
		return
	}

	employee, err := h.Writer.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmployeeNotFound):
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Employee not found")
		case errors.Is(err, entity.ErrEmployeeEmailExists):
			writeErrorResponse(w, http.StatusConflict, "EMAIL_EXISTS", "An employee with this email already exists.")
		default:
			log.Printf("❌ Erro ao atualizar funcionário %s: %v", id, err)
			writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// HandleGetTarget devolve a meta do funcionário reconciliada com as vendas.
// GET /employees/{id}/target
func (h *EmployeeHandler) HandleGetTarget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	output, err := h.TargetUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrEmployeeNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Employee not found")
			return
		}
		log.Printf("❌ Erro ao buscar meta do funcionário %s: %v", id, err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
