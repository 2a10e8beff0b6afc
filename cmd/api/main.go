package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/molog/internal/config"
	"github.com/MrJamesThe3rd/molog/internal/database"
	"github.com/MrJamesThe3rd/molog/internal/export"
	mologHttp "github.com/MrJamesThe3rd/molog/internal/http"
	exportHandler "github.com/MrJamesThe3rd/molog/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/molog/internal/http/importcsv"
	layoutHandler "github.com/MrJamesThe3rd/molog/internal/http/layout"
	ledgerHandler "github.com/MrJamesThe3rd/molog/internal/http/ledger"
	txHandler "github.com/MrJamesThe3rd/molog/internal/http/transaction"
	"github.com/MrJamesThe3rd/molog/internal/importer"
	"github.com/MrJamesThe3rd/molog/internal/popover"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
	"github.com/MrJamesThe3rd/molog/internal/transaction/memory"
	txStore "github.com/MrJamesThe3rd/molog/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	// "api token <subject>" prints a bearer token for the configured secret.
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := printToken(cfg, os.Args[2:]); err != nil {
			slog.Error("failed to issue token", "error", err)
			os.Exit(1)
		}

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "store", cfg.App.Store, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	weekStart, _ := cfg.WeekStart()

	var (
		transactionService = transaction.NewService(repo)
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		ledgerH      = ledgerHandler.NewHandler(transactionService, ledgerHandler.Options{
			WeekStart: weekStart,
			Capacity:  cfg.Ledger.Capacity,
		})
		layoutH = layoutHandler.NewHandler(popover.DefaultOptions())
		importH = importHandler.NewHandler(importService, transactionService)
		exportH = exportHandler.NewHandler(exportService)
	)

	router := mologHttp.New(mologHttp.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		JWTSecret:   cfg.Auth.JWTSecret,
	}, transactionH, ledgerH, layoutH, importH, exportH)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "port", server.Addr, "store", cfg.App.Store,
		"auth", cfg.Auth.JWTSecret != "")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// openRepository picks the store named by STORE. The memory store starts with
// the demo ledger.
func openRepository(ctx context.Context, cfg *config.Config) (transaction.Repository, func(), error) {
	if cfg.App.Store == config.StoreMemory {
		return memory.NewSeeded(), func() {}, nil
	}

	db, err := database.Open(ctx, cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	return txStore.New(db), func() { db.Close() }, nil
}

func printToken(cfg *config.Config, args []string) error {
	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is not set")
	}

	subject := "molog"
	if len(args) > 0 {
		subject = args[0]
	}

	token, err := mologHttp.SignToken([]byte(cfg.Auth.JWTSecret), subject, 30*24*time.Hour, time.Now())
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}
