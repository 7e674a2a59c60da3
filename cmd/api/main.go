package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/Maximiliano-zm/deudas-service/internal/config"
	"github.com/Maximiliano-zm/deudas-service/internal/handler"
	"github.com/Maximiliano-zm/deudas-service/internal/middleware"
	"github.com/Maximiliano-zm/deudas-service/internal/notifier"
	"github.com/Maximiliano-zm/deudas-service/internal/repository"
	"github.com/Maximiliano-zm/deudas-service/internal/service"
	"github.com/Maximiliano-zm/deudas-service/internal/storage"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatalf("Failed to apply migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	images, err := storage.NewImageStore(cfg.ImageDir, cfg.ImageBaseURL, logger)
	if err != nil {
		logger.Fatalf("Failed to init image store: %v", err)
	}
	svc := service.NewService(repo, images, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Due-date reminder sweep
	sender := notifier.NewSender(cfg, logger)
	reminders := notifier.New(cfg, repo, sender, logger)
	if err := reminders.Start(); err != nil {
		logger.Fatalf("Failed to start reminders: %v", err)
	}
	defer reminders.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/health", h.Health).Methods("GET")
	// Receipt images
	r.PathPrefix(cfg.ImageBaseURL + "/").Handler(
		http.StripPrefix(cfg.ImageBaseURL+"/", http.FileServer(http.Dir(images.Dir()))))
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/debts", h.ListDebts).Methods("GET")
	authRouter.HandleFunc("/debts", h.CreateDebt).Methods("POST")
	authRouter.HandleFunc("/debts/export", h.ExportDebtBook).Methods("GET")
	authRouter.HandleFunc("/debts/{id}/statement", h.RegisterStatement).Methods("POST")
	authRouter.HandleFunc("/debts/{id}/pay", h.Pay).Methods("POST")
	authRouter.HandleFunc("/import/preview", h.PreviewImport).Methods("POST")
	authRouter.HandleFunc("/import/template", h.ImportTemplate).Methods("GET")
	authRouter.HandleFunc("/import", h.Import).Methods("POST")
	authRouter.HandleFunc("/income", h.GetIncome).Methods("GET")
	authRouter.HandleFunc("/income", h.SaveIncome).Methods("PUT")
	authRouter.HandleFunc("/summary", h.Summary).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
