package usecase

import (
	"context"
	"log"
	"time"

	"github.com/renatoc1/leadtrack/internal/infra/queue"
)

// ImportLeadsUseCase: normaliza o lote e grava tudo numa única escrita.
// O evento de fila é pós-commit e best-effort: falha na publicação não
// desfaz a importação, só é logada.
type ImportLeadsUseCase struct {
	Store LeadStore
	Queue QueueProducerInterface // opcional
}

func NewImportLeadsUseCase(store LeadStore, producer QueueProducerInterface) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{
		Store: store,
		Queue: producer,
	}
}

func (uc *ImportLeadsUseCase) Execute(ctx context.Context, payload interface{}) (*ImportLeadsOutput, error) {
	batch, err := NormalizeBatch(payload)
	if err != nil {
		return nil, err
	}

	count, err := uc.Store.CreateLeads(ctx, batch)
	if err != nil {
		return nil, err
	}

	if uc.Queue != nil {
		event := queue.LeadsImportedPayload{
			Count:      count,
			ImportedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if pubErr := uc.Queue.PublishLeadsImported(ctx, event); pubErr != nil {
			log.Printf("⚠️ Falha ao publicar evento de importação: %v", pubErr)
		}
	}

	return &ImportLeadsOutput{
		Message: "Leads imported successfully",
		Count:   count,
	}, nil
}
