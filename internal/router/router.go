package router

import (
	"github.com/gin-gonic/gin"

	"utsav/internal/handler"
	"utsav/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	clientH *handler.ClientHandler,
	eventH *handler.EventHandler,
	quotationH *handler.QuotationHandler,
	invoiceH *handler.InvoiceHandler,
	statsH *handler.StatsHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	clients := v1.Group("/clients")
	clients.POST("", clientH.Create)
	clients.GET("", clientH.List)
	clients.GET("/:id", clientH.GetByID)
	clients.PUT("/:id", clientH.Update)
	clients.DELETE("/:id", clientH.Delete)

	events := v1.Group("/events")
	events.POST("", eventH.Create)
	events.GET("", eventH.List)
	events.GET("/:id", eventH.GetByID)
	events.PUT("/:id", eventH.Update)
	events.DELETE("/:id", eventH.Delete)

	quotations := v1.Group("/quotations")
	quotations.POST("", quotationH.Create)
	quotations.GET("", quotationH.List)
	quotations.GET("/:id", quotationH.GetByID)
	quotations.PUT("/:id", quotationH.Update)
	quotations.PATCH("/:id/status", quotationH.SetStatus)
	quotations.POST("/:id/convert", quotationH.Convert)
	quotations.DELETE("/:id", quotationH.Delete)

	invoices := v1.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PUT("/:id", invoiceH.Update)
	invoices.PATCH("/:id/status", invoiceH.SetStatus)
	invoices.POST("/:id/payments", invoiceH.RecordPayment)
	invoices.GET("/:id/payments", invoiceH.ListPayments)
	invoices.DELETE("/:id", invoiceH.Delete)

	stats := v1.Group("/stats")
	stats.GET("/dashboard", statsH.Dashboard)

	exports := v1.Group("/exports")
	exports.GET("/invoices.csv", exportH.ExportInvoicesCSV)
	exports.GET("/invoices.xlsx", exportH.ExportInvoicesXLSX)

	return r
}
