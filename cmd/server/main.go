package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api"
	"github.com/finsheet/Finance-Sheets-Backend/internal/config"
	"github.com/finsheet/Finance-Sheets-Backend/internal/database"
	"github.com/finsheet/Finance-Sheets-Backend/internal/gemini"
	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
	"github.com/finsheet/Finance-Sheets-Backend/internal/repository"
	"github.com/finsheet/Finance-Sheets-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := ledger.New()

	// Open the snapshot database when persistence is configured. Without
	// DB_PATH the ledger is purely in-memory and starts empty.
	var snapshotService *service.SnapshotService
	var settingRepo *repository.SettingRepository
	systemService := service.NewSystemService(nil)
	if cfg.Database.Path != "" {
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		log.Printf("Connected to database: %s", cfg.Database.Path)

		snapshotService = service.NewSnapshotService(store, repository.NewLedgerRepository(db))
		if err := snapshotService.Load(); err != nil {
			log.Fatalf("Failed to load ledger snapshot: %v", err)
		}

		settingRepo = repository.NewSettingRepository(db)
		systemService = service.NewSystemService(db)
	}

	var fernetKey *fernet.Key
	if cfg.Scanner.FernetKey != "" {
		fernetKey, err = fernet.DecodeKey(cfg.Scanner.FernetKey)
		if err != nil {
			log.Fatalf("Failed to decode FERNET_KEY: %v", err)
		}
	}

	expenseCategories := make([]string, len(model.ExpenseCategories))
	for i, c := range model.ExpenseCategories {
		expenseCategories[i] = string(c)
	}
	geminiClient := gemini.NewReceiptClient(expenseCategories)

	// Create services
	sheetService := service.NewSheetService(store)
	transactionService := service.NewTransactionService(store)
	reportService := service.NewReportService(store)

	var settings service.SettingStore
	if settingRepo != nil {
		settings = settingRepo
	}
	receiptService := service.NewReceiptService(geminiClient, store, settings, fernetKey, cfg.Scanner.APIKey)

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Sheet:       sheetService,
		Transaction: transactionService,
		Report:      reportService,
		Receipt:     receiptService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Periodic snapshot autosave, plus one final save on shutdown.
	if snapshotService != nil {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.Database.SnapshotSchedule, func() {
			if err := snapshotService.Save(); err != nil {
				log.Printf("Failed to save ledger snapshot: %v", err)
			}
		}); err != nil {
			log.Fatalf("Invalid SNAPSHOT_SCHEDULE %q: %v", cfg.Database.SnapshotSchedule, err)
		}
		scheduler.Start()

		g.Go(func() error {
			<-ctx.Done()
			<-scheduler.Stop().Done()
			if err := snapshotService.Save(); err != nil {
				log.Printf("Failed to save final ledger snapshot: %v", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
