package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/renatoc1/leadtrack/internal/infra/http/middleware"
	"github.com/renatoc1/leadtrack/internal/infra/spreadsheet"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

type ImportHandler struct {
	ImportUC    *usecase.ImportLeadsUseCase
	rateLimiter *RateLimiter
}

func NewImportHandler(uc *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{
		ImportUC:    uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// HandleImportJSON recebe o lote como array JSON no corpo.
// POST /leads/import
func (h *ImportHandler) HandleImportJSON(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var payload interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		middleware.RecordImportRejected()
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid or empty data")
		return
	}

	h.runImport(w, r, payload)
}

// HandleImportSpreadsheet recebe o lote como .xlsx no corpo. As linhas da
// planilha passam pelo mesmo normalizador do JSON.
// POST /leads/import/spreadsheet
func (h *ImportHandler) HandleImportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	rows, err := spreadsheet.ReadLeadRows(r.Body)
	if err != nil {
		middleware.RecordImportRejected()
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_SPREADSHEET", "Invalid or empty data")
		return
	}

	h.runImport(w, r, rows)
}

func (h *ImportHandler) runImport(w http.ResponseWriter, r *http.Request, payload interface{}) {
	output, err := h.ImportUC.Execute(r.Context(), payload)
	if err != nil {
		if usecase.IsInvalidBatchError(err) {
			// Lote rejeitado por inteiro, nada foi gravado.
			middleware.RecordImportRejected()
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_BATCH", err.Error())
			return
		}
		log.Printf("❌ Erro ao importar leads: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Error importing leads")
		return
	}

	middleware.RecordLeadsImported(output.Count)
	writeJSON(w, http.StatusOK, output)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
