package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-site/config"
	_ "go-portfolio-site/docs" // Important for Swagger
	v1 "go-portfolio-site/internal/delivery/http/v1"
	"go-portfolio-site/internal/repository/jsonfile"
	"go-portfolio-site/internal/usecase"
	"go-portfolio-site/pkg/logger"
	"go-portfolio-site/pkg/mail"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Site API
// @version         1.0
// @description     JSON API behind the portfolio website. The only mutating endpoint relays contact-form submissions to the mail provider.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio site", "port", cfg.Port)

	// 3. Setup Content Store
	validate := validator.New()
	resumeRepo, err := jsonfile.NewResumeRepository(cfg.ResumeDataPath, validate)
	if err != nil {
		logger.Log.Error("Failed to load resume content", "path", cfg.ResumeDataPath, "error", err)
		os.Exit(1)
	}

	// 4. Setup Mail Sender (process-wide, built once from config)
	var sender mail.Sender
	if cfg.PostmarkServerToken != "" {
		sender, err = mail.NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
		if err != nil {
			logger.Log.Error("Failed to configure mail provider", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Log.Warn("POSTMARK_SERVER_TOKEN not set - contact emails will be written to disk", "dir", cfg.MailDevDir)
		sender = mail.NewDevSender(cfg.MailDevDir)
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, cfg.ContactFromEmail, cfg.ContactToEmail)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    contactUC,
		ResumeUC:     resumeUC,
		Config:       cfg,
		TemplateGlob: "web/templates/*.html",
		StaticDir:    "web/static",
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
