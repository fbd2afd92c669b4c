package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/renatoc1/leadtrack/internal/entity"
)

// NormalizeBatch transforma o JSON cru da importação em leads canônicos.
// O lote inteiro é rejeitado se o corpo não for uma lista não-vazia de
// objetos — nada de sucesso parcial antes da persistência.
func NormalizeBatch(payload interface{}) ([]NormalizedLead, error) {
	rows, ok := payload.([]interface{})
	if !ok {
		return nil, &InvalidBatchError{Reason: "o corpo deve ser uma lista de leads"}
	}
	if len(rows) == 0 {
		return nil, &InvalidBatchError{Reason: "a lista de leads está vazia"}
	}

	batch := make([]NormalizedLead, 0, len(rows))
	for i, raw := range rows {
		row, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &InvalidBatchError{Reason: fmt.Sprintf("linha %d não é um objeto", i+1)}
		}
		batch = append(batch, normalizeRow(row))
	}

	return batch, nil
}

func normalizeRow(row map[string]interface{}) NormalizedLead {
	lead := NormalizedLead{
		Name:        stringField(row, "name"),
		Email:       stringField(row, "email"),
		Company:     stringField(row, "company"),
		Phone:       phoneField(row, "phone"),
		City:        stringField(row, "city"),
		Designation: stringField(row, "designation"),
		Message:     stringField(row, "message"),
		EmployeeID:  stringField(row, "employeeId"),
	}

	// Política herdada do importador: status fora do enum (ou ausente)
	// vira COLD. A linha não é rejeitada, é reclassificada.
	if status, valid := parseStatus(row["status"]); valid {
		lead.Status = status
	} else {
		lead.Status = entity.StatusCold
	}

	lead.CallBackTime = timeField(row, "callBackTime")

	return lead
}

func parseStatus(value interface{}) (entity.LeadStatus, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	status := entity.LeadStatus(s)
	return status, status.IsValid()
}

func stringField(row map[string]interface{}, key string) *string {
	s, ok := row[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// phoneField tolera telefone vindo como número da planilha.
func phoneField(row map[string]interface{}, key string) *string {
	switch v := row[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return &v
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s
	default:
		return nil
	}
}

func timeField(row map[string]interface{}, key string) *time.Time {
	switch v := row[key].(type) {
	case string:
		if t, ok := parseTimestamp(v); ok {
			return &t
		}
		return nil
	case float64:
		// epoch em milissegundos, como um Date numérico
		t := time.UnixMilli(int64(v)).UTC()
		return &t
	default:
		return nil
	}
}

func parseTimestamp(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
