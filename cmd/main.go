package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers/get_available_slots"
	getSalonAppointmentsHandler "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers/get_salon_appointments"
	streamAppointmentsHandler "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers/stream_appointments"
	syncTransactionsHandler "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers/sync_transactions"
	updateAppointmentStatusHandler "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers/update_appointment_status"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/middleware"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/config"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/realtime"
	appointmentRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/appointment"
	clientRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/client"
	salonRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/salon"
	serviceRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/service"
	transactionRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/transaction"
	appointmentsService "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/service/appointments"
	financeService "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/service/finance"
	createAppointmentUC "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/usecase/get_available_slots"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/dbmetrics"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/logger"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/metrics"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/simpletxmanager"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/txmanager"
)

func main() {
	// A local .env is optional; environment overrides win over config.toml.
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting kiagenda booking service...")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager, instrumented when metrics
	// are on.
	var (
		salonRepository       *salonRepo.Repository
		serviceRepository     *serviceRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		clientRepository      *clientRepo.Repository
		transactionRepository *transactionRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		salonRepository = salonRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		transactionRepository = transactionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		salonRepository = salonRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		transactionRepository = transactionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	financeSvc := financeService.NewService(
		appointmentRepository,
		transactionRepository,
		salonRepository,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		financeSvc,
		log,
	)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		salonRepository,
		serviceRepository,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		salonRepository,
		serviceRepository,
		appointmentRepository,
		clientRepository,
		txMgr,
		log,
	)

	// Realtime bridge: LISTEN on the appointments channel and fan events
	// out to connected SSE streams.
	hub := realtime.NewHub()
	bridge := realtime.NewBridge(cfg.Database.DSN(), hub, log)
	defer bridge.Close()

	bridgeCtx, stopBridge := context.WithCancel(context.Background())
	defer stopBridge()
	go func() {
		if err := bridge.Run(bridgeCtx); err != nil {
			log.Error("Realtime bridge stopped: %v", err)
		}
	}()

	// Nightly ledger resync
	var scheduler *financeService.Scheduler
	if cfg.Sync.Enabled {
		scheduler, err = financeService.NewScheduler(cfg.Sync.Schedule, financeSvc, log)
		if err != nil {
			log.Fatal("Failed to create sync scheduler: %v", err)
		}
		scheduler.Start()
		log.Info("Financial sync scheduled: %s", cfg.Sync.Schedule)
	}

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getSalonAppointments := getSalonAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	syncTransactions := syncTransactionsHandler.NewHandler(financeSvc, log)
	streamAppointments := streamAppointmentsHandler.NewHandler(hub, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: booking flow and the realtime stream (EventSource
	// cannot send custom headers).
	api.HandleFunc("/salons/{salonId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments",
		createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salons/{salonId}/appointments/stream",
		streamAppointments.Handle).Methods(http.MethodGet)

	// Staff routes require the gateway-verified X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments/{appointmentId}",
		getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/salons/{salonId}/appointments",
		getSalonAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/financial/sync",
		syncTransactions.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}
	stopBridge()

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
