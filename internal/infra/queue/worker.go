package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ImportNotifier define o contrato do canal de aviso (email, etc).
type ImportNotifier interface {
	SendImportSummary(count int64, importedAt string) error
}

// Worker consome os eventos de importação e dispara o resumo para o
// gestor. Totalmente desacoplado do banco.
type Worker struct {
	Channel  *amqp.Channel
	Notifier ImportNotifier
}

func NewWorker(ch *amqp.Channel, notifier ImportNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			log.Printf("📥 [WORKER] Evento de importação recebido")

			var payload LeadsImportedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.Notifier.SendImportSummary(payload.Count, payload.ImportedAt); err != nil {
				log.Printf("❌ [WORKER] Erro ao enviar resumo: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Resumo enviado: %d leads importados", payload.Count)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
