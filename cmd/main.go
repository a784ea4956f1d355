package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "problem_tracker/docs"
	"problem_tracker/internal/config"
	"problem_tracker/internal/handlers"
	"problem_tracker/internal/logger"
	"problem_tracker/internal/repository"
	"problem_tracker/internal/repository/db"
	"problem_tracker/internal/server"
	"problem_tracker/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Problem Tracker API
// @version      1.0
// @description  Personal programming-problem tracking service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// load config.yml first; the log level comes from it
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	// open DB
	sqlDB, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Config{
		JWTSecret:        cfg.JWTSecret,
		ProblemsPerQuery: cfg.ProblemsPerQuery,
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		log.Infow("starting server", "port", cfg.Port)
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
