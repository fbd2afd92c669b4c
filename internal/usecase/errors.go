package usecase

import "fmt"

// InvalidBatchError rejeita o lote de importação inteiro antes de qualquer
// escrita. Nunca há sucesso parcial na normalização.
type InvalidBatchError struct {
	Reason string
}

func (e *InvalidBatchError) Error() string {
	return fmt.Sprintf("lote de importação inválido: %s", e.Reason)
}

func IsInvalidBatchError(err error) bool {
	_, ok := err.(*InvalidBatchError)
	return ok
}
