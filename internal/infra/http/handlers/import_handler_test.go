package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/renatoc1/leadtrack/internal/usecase"
)

func newImportHandler(store usecase.LeadStore) *ImportHandler {
	return NewImportHandler(usecase.NewImportLeadsUseCase(store, nil))
}

func TestHandleImportJSON(t *testing.T) {
	store := new(MockLeadStore)
	store.On("CreateLeads", mock.Anything, mock.Anything).Return(int64(2), nil)

	h := newImportHandler(store)

	body := `[{"name": "Ana", "status": "HOT"}, {"name": "Bia", "phone": 11999990000}]`
	req := httptest.NewRequest(http.MethodPost, "/leads/import", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleImportJSON(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.ImportLeadsOutput
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&output))
	assert.Equal(t, int64(2), output.Count)
	assert.Equal(t, "Leads imported successfully", output.Message)
	store.AssertExpectations(t)
}

func TestHandleImportJSONMalformedBody(t *testing.T) {
	store := new(MockLeadStore)
	h := newImportHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/leads/import", strings.NewReader(`{quebrado`))
	rec := httptest.NewRecorder()

	h.HandleImportJSON(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "INVALID_JSON", resp.Code)
	assert.Equal(t, "Invalid or empty data", resp.Message)
	store.AssertNotCalled(t, "CreateLeads", mock.Anything, mock.Anything)
}

// Lote que não é array: rejeição atômica, nada persiste.
func TestHandleImportJSONRejectsNonArray(t *testing.T) {
	store := new(MockLeadStore)
	h := newImportHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/leads/import", strings.NewReader(`{"name": "Ana"}`))
	rec := httptest.NewRecorder()

	h.HandleImportJSON(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "INVALID_BATCH", resp.Code)
	store.AssertNotCalled(t, "CreateLeads", mock.Anything, mock.Anything)
}

func TestHandleImportJSONStoreFailure(t *testing.T) {
	store := new(MockLeadStore)
	store.On("CreateLeads", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	h := newImportHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/leads/import", strings.NewReader(`[{"name": "Ana"}]`))
	rec := httptest.NewRecorder()

	h.HandleImportJSON(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleImportSpreadsheetRejectsGarbage(t *testing.T) {
	store := new(MockLeadStore)
	h := newImportHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/leads/import/spreadsheet", strings.NewReader("não é xlsx"))
	rec := httptest.NewRecorder()

	h.HandleImportSpreadsheet(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "INVALID_SPREADSHEET", resp.Code)
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// Outro IP tem a própria janela.
	assert.True(t, rl.Allow("10.0.0.2"))
}
