package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/renatoc1/leadtrack/internal/infra/database"
	"github.com/renatoc1/leadtrack/internal/infra/http/handlers"
	appmiddleware "github.com/renatoc1/leadtrack/internal/infra/http/middleware"
	"github.com/renatoc1/leadtrack/internal/infra/mail"
	"github.com/renatoc1/leadtrack/internal/infra/queue"
	"github.com/renatoc1/leadtrack/internal/infra/worker"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// RabbitMQ é opcional: sem broker a importação funciona, só não
	// notifica. O health check reporta "not configured".
	var producer usecase.QueueProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Printf("⚠️ RabbitMQ indisponível, seguindo sem eventos de importação: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	employeeRepo := database.NewEmployeeRepository(db)
	departmentRepo := database.NewDepartmentRepository(db)

	// 2. Worker de notificação (consome eventos de importação e envia o resumo)
	if rabbitMQ != nil && os.Getenv("MAIL_HOST") != "" {
		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MANAGER_EMAIL"),
		)
		mailWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go mailWorker.Start(queue.QueueName)
	}

	// Lembretes de retorno (CALL_BACK vencidos)
	reminderWorker := worker.NewCallbackReminderWorker(db)
	go reminderWorker.Start(context.Background())

	// 3. UseCases
	reportUC := usecase.NewLeadReportUseCase(leadRepo, employeeRepo)
	importUC := usecase.NewImportLeadsUseCase(leadRepo, producer)
	targetUC := usecase.NewEmployeeTargetUseCase(employeeRepo, leadRepo)
	departmentUC := usecase.NewDepartmentSummaryUseCase(departmentRepo)

	// 4. Handlers
	statsHandler := handlers.NewLeadStatsHandler(reportUC)
	importHandler := handlers.NewImportHandler(importUC)
	leadHandler := handlers.NewLeadHandler(leadRepo)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo, targetUC)
	departmentHandler := handlers.NewDepartmentHandler(departmentUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/leads/stats", statsHandler.HandleGetStats)
	r.Post("/leads/import", importHandler.HandleImportJSON)
	r.Post("/leads/import/spreadsheet", importHandler.HandleImportSpreadsheet)
	r.Put("/leads/{id}", leadHandler.HandleUpdate)
	r.Delete("/leads/{id}", leadHandler.HandleDelete)

	r.Post("/employees", employeeHandler.HandleCreate)
	r.Put("/employees/{id}", employeeHandler.HandleUpdate)
	r.Get("/employees/{id}/target", employeeHandler.HandleGetTarget)

	r.Get("/departments", departmentHandler.HandleList)

	port := ":8080"
	log.Printf("🔥 Server LeadTrack rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
