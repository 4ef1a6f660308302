package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"todo-manager/internal/auth"
	"todo-manager/internal/config"
	"todo-manager/internal/logging"
	"todo-manager/internal/repository/sqlite"
	"todo-manager/internal/server"
	"todo-manager/internal/services"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database directory: %v\n", err)
		os.Exit(1)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	logging.Debugf("using database at %s\n", cfg.GetDatabasePath())

	logger := log.New(os.Stderr, "todo-server ", log.LstdFlags)
	if len(cfg.Auth.Tokens) == 0 {
		logger.Printf("warning: no auth tokens configured (set TODO_AUTH_TOKENS); all requests will be rejected")
	}

	resolver := auth.NewStaticResolver(cfg.Auth.Tokens)
	tasks := services.NewTaskService(repo, cfg)
	srv := server.New(cfg, tasks, resolver, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
