package main

import (
	"fmt"
	"log"

	"utsav/internal/config"
	"utsav/internal/handler"
	"utsav/internal/repository/postgres"
	"utsav/internal/router"
	"utsav/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	clientRepo := postgres.NewClientRepo(db)
	eventRepo := postgres.NewEventRepo(db)
	quotationRepo := postgres.NewQuotationRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	sequenceRepo := postgres.NewSequenceRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize services
	clientSvc := service.NewClientService(clientRepo)
	eventSvc := service.NewEventService(eventRepo)
	quotationSvc := service.NewQuotationService(quotationRepo, sequenceRepo, clientSvc)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, sequenceRepo, clientSvc)
	conversionSvc := service.NewConversionService(quotationRepo, invoiceRepo, sequenceRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo)
	statsSvc := service.NewStatsService(statsRepo)

	// Initialize handlers
	clientH := handler.NewClientHandler(clientSvc)
	eventH := handler.NewEventHandler(eventSvc)
	quotationH := handler.NewQuotationHandler(quotationSvc, conversionSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, paymentSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	exportH := handler.NewExportHandler(invoiceSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, clientH, eventH, quotationH, invoiceH, statsH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
