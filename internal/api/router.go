package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/handlers"
	custommiddleware "github.com/finsheet/Finance-Sheets-Backend/internal/api/middleware"
	"github.com/finsheet/Finance-Sheets-Backend/internal/config"
	"github.com/finsheet/Finance-Sheets-Backend/internal/service"
)

// Services bundles the service dependencies of the router.
type Services struct {
	System      *service.SystemService
	Sheet       *service.SheetService
	Transaction *service.TransactionService
	Report      *service.ReportService
	Receipt     *service.ReceiptService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		sheetHandler := handlers.NewSheetHandler(services.Sheet)
		transactionHandler := handlers.NewTransactionHandler(services.Transaction)
		receiptHandler := handlers.NewReceiptHandler(services.Receipt)

		r.Route("/sheet", func(r chi.Router) {
			r.Get("/", sheetHandler.Sheets)
			r.Post("/", sheetHandler.CreateSheet)

			// Fixed segment before the {uuid} wildcard so "selected" never
			// reaches the UUID validator.
			r.Get("/selected", sheetHandler.SelectedSheet)
			r.Put("/selected", sheetHandler.SelectSheet)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", sheetHandler.GetSheet)
				r.Delete("/", sheetHandler.DeleteSheet)

				r.Get("/transaction", transactionHandler.Transactions)
				r.Post("/transaction", transactionHandler.CreateTransaction)
				r.With(custommiddleware.ValidateTransactionUUIDMiddleware).
					Delete("/transaction/{txUuid}", transactionHandler.DeleteTransaction)

				r.Post("/receipt", receiptHandler.ConfirmReceipt)
			})
		})

		r.Route("/trash", func(r chi.Router) {
			trashHandler := handlers.NewTrashHandler(services.Sheet)
			r.Get("/", trashHandler.TrashedSheets)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Post("/restore", trashHandler.RestoreSheet)
				r.Delete("/", trashHandler.PermanentlyDeleteSheet)
			})
		})

		r.Route("/report/{uuid}", func(r chi.Router) {
			reportHandler := handlers.NewReportHandler(services.Report)
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Get("/summary", reportHandler.Summary)
			r.Get("/breakdown", reportHandler.Breakdown)
			r.Get("/spending", reportHandler.Spending)
			r.Get("/monthly", reportHandler.Monthly)
			r.Get("/top", reportHandler.Top)
		})

		r.Route("/receipt", func(r chi.Router) {
			r.Post("/parse", receiptHandler.ParseReceipt)
			r.Get("/config", receiptHandler.Config)
			r.Put("/config", receiptHandler.UpdateConfig)
		})

		categoryHandler := handlers.NewCategoryHandler()
		r.Get("/category", categoryHandler.Categories)
	})

	return r
}
