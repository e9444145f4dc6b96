package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clinica-vida/clinic-service/internal/config"
	"github.com/clinica-vida/clinic-service/internal/consultation"
	"github.com/clinica-vida/clinic-service/internal/dashboard"
	httpserver "github.com/clinica-vida/clinic-service/internal/http"
	"github.com/clinica-vida/clinic-service/internal/notify"
	"github.com/clinica-vida/clinic-service/internal/patient"
	"github.com/clinica-vida/clinic-service/internal/settings"
	"github.com/clinica-vida/clinic-service/internal/storage"
	"github.com/clinica-vida/clinic-service/internal/telemetry"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var metrics *telemetry.Metrics
	var provider *telemetry.Provider
	if cfg.Telemetry.Enabled {
		provider, err = telemetry.InitProvider(ctx, telemetry.LoadConfig())
		if err != nil {
			log.Printf("Warning: telemetry init failed, continuing without: %v", err)
		} else {
			metrics, err = telemetry.InitMetrics()
			if err != nil {
				log.Printf("Warning: metrics init failed, continuing without: %v", err)
			}
		}
	}

	slotStore, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer slotStore.Close()
	log.Printf("Storage ready (driver=%s path=%s)", cfg.Storage.Driver, cfg.Storage.Path)

	publisher := notify.NewLogPublisher()

	patients := patient.NewStore(ctx, patient.NewBridge(slotStore), publisher, metrics)
	consultations := consultation.NewStore(ctx, consultation.NewBridge(slotStore), patients, publisher, metrics)
	settingsStore := settings.NewStore(ctx, settings.NewBridge(slotStore), publisher, metrics)
	log.Printf("Stores loaded: %d patients, %d consultations",
		len(patients.Patients()), len(consultations.Consultations()))

	router := httpserver.SetupRouter(httpserver.Stores{
		Patients:      patients,
		Consultations: consultations,
		Dashboard:     dashboard.NewService(patients, consultations),
		Settings:      settingsStore,
	}, metrics)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: httpserver.CORSMiddleware(cfg.CORS.AllowedOrigins)(router),
	}

	go func() {
		log.Printf("clinic-service starting on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: server shutdown: %v", err)
	}
	if provider != nil {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: telemetry shutdown: %v", err)
		}
	}
	log.Println("Shutdown complete")
}
