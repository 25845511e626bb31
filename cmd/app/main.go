package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	envFile := flag.String("env-file", ".env", "path to a .env file, ignored when missing")
	issueToken := flag.String("issue-token", "", "print a bearer token for the account and exit")
	flag.Parse()

	configs, err := cmd.LoadConfig(*configPath, *envFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, logCloser, err := cmd.NewLogger(configs)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logCloser.Close() }()

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	if *issueToken != "" {
		printToken(&app, *issueToken)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Migrate(ctx); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if err = app.BootstrapManager(ctx); err != nil {
		log.Fatalf("Error installing ledger manager: %v", err)
	}

	publisher, publisherCloser, err := app.CreateEventPublisher()
	if err != nil {
		log.Fatalf("Error connecting event broker: %v", err)
	}
	defer func() { _ = publisherCloser.Close() }()

	jobManager, err := app.CreateJobManager(publisher)
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort)
}

func printToken(app *cmd.CompositionRoot, account string) {
	caller, err := kernel.NewAccount(account)
	if err != nil {
		log.Fatalf("Invalid account: %v", err)
	}
	auth, err := app.CreateAuthenticator()
	if err != nil {
		log.Fatalf("Error creating authenticator: %v", err)
	}
	token, err := auth.IssueToken(caller)
	if err != nil {
		log.Fatalf("Error issuing token: %v", err)
	}
	fmt.Println(token)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error creating router: %v", err)
	}
	e.Logger.SetLevel(log.INFO)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Errorf("HTTP server failed: %v", err)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Errorf("HTTP server shutdown failed: %v", err)
	}
}
