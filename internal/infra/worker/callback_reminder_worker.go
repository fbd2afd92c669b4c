package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// CallbackReminderWorker varre periodicamente os leads CALL_BACK com
// horário de retorno vencido e registra o lembrete. Não muta o lead:
// mudança de status é sempre via edição.
type CallbackReminderWorker struct {
	db           *sql.DB
	tickInterval time.Duration
}

func NewCallbackReminderWorker(db *sql.DB) *CallbackReminderWorker {
	return &CallbackReminderWorker{
		db:           db,
		tickInterval: 1 * time.Minute,
	}
}

func (w *CallbackReminderWorker) Start(ctx context.Context) {
	log.Println("🕒 Callback Reminder Worker iniciado")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.remindDueCallbacks(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Callback Reminder Worker encerrado")
			return
		case <-ticker.C:
			w.remindDueCallbacks(ctx)
		}
	}
}

func (w *CallbackReminderWorker) remindDueCallbacks(ctx context.Context) {
	query := `
		SELECT id, name, phone, call_back_time, employee_id
		FROM leads
		WHERE status = 'CALL_BACK'
			AND call_back_time IS NOT NULL
			AND call_back_time <= NOW()
			AND call_back_time > NOW() - INTERVAL '1 day'
		ORDER BY call_back_time
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Erro ao buscar retornos vencidos: %v", err)
		return
	}
	defer rows.Close()

	dueCount := 0
	for rows.Next() {
		var (
			id           string
			name         *string
			phone        *string
			callBackTime time.Time
			employeeID   *string
		)

		if err := rows.Scan(&id, &name, &phone, &callBackTime, &employeeID); err != nil {
			log.Printf("⚠️ Erro ao escanear retorno vencido: %v", err)
			continue
		}

		overdue := time.Since(callBackTime)
		log.Printf("⏱️ Retorno pendente: lead=%s employee=%s overdue=%s",
			id, strOrDash(employeeID), overdue.Round(time.Minute))
		dueCount++
	}

	if dueCount > 0 {
		log.Printf("✅ %d retorno(s) vencido(s) para hoje", dueCount)
	}
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
