package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cabeçalhos reconhecidos na planilha, já normalizados (minúsculas, sem
// espaços/underscores) → chave do objeto de importação.
var headerKeys = map[string]string{
	"name":         "name",
	"email":        "email",
	"company":      "company",
	"phone":        "phone",
	"city":         "city",
	"designation":  "designation",
	"message":      "message",
	"status":       "status",
	"callbacktime": "callBackTime",
	"employeeid":   "employeeId",
}

// ReadLeadRows lê a primeira aba de um .xlsx e devolve as linhas no mesmo
// formato solto do corpo JSON de importação. A validação do conteúdo é do
// normalizador — aqui só se traduz planilha em objetos.
func ReadLeadRows(r io.Reader) ([]interface{}, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("planilha sem abas")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	if len(rows) == 0 {
		return []interface{}{}, nil
	}

	// Primeira linha é o cabeçalho.
	columns := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		columns[i] = headerKeys[normalizeHeader(header)]
	}

	out := make([]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]interface{})
		for i, cell := range row {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			if cell == "" {
				continue
			}
			record[columns[i]] = cell
		}
		if len(record) == 0 {
			continue // linha totalmente em branco
		}
		out = append(out, record)
	}

	return out, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "_", "")
	return h
}
