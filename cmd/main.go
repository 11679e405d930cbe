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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-AssistantBooking/internal/api/handlers"
	createPeriodHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/create_period"
	createReservationHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/create_reservation"
	createResourceHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/create_resource"
	deleteResourceHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/delete_resource"
	getPeriodHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/get_period"
	getReservationHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/get_reservation"
	getResourceHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/get_resource"
	listOpenResourcesHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/list_open_resources"
	listPeriodReservationsHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/list_period_reservations"
	listPeriodResourcesHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/list_period_resources"
	listPeriodsHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/list_periods"
	listResourceReservationsHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/list_resource_reservations"
	processReservationHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/process_reservation"
	releaseAssistantHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/release_assistant"
	updatePeriodStatusHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/update_period_status"
	updateReservationHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/update_reservation"
	updateResourceSlotsHandler "github.com/m04kA/SMC-AssistantBooking/internal/api/handlers/update_resource_slots"
	"github.com/m04kA/SMC-AssistantBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantBooking/internal/config"
	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	assistantRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/assistant"
	periodRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/period"
	resourceRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/resource"
	reservationRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AssistantBooking/internal/integrations/accessservice"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/allocation"
	"github.com/m04kA/SMC-AssistantBooking/internal/service/periodgate"
	periodsService "github.com/m04kA/SMC-AssistantBooking/internal/service/periods"
	reservationsService "github.com/m04kA/SMC-AssistantBooking/internal/service/reservations"
	resourcesService "github.com/m04kA/SMC-AssistantBooking/internal/service/resources"
	createReservationUC "github.com/m04kA/SMC-AssistantBooking/internal/usecase/create_reservation"
	releaseAssistantUC "github.com/m04kA/SMC-AssistantBooking/internal/usecase/release_assistant"
	updateReservationUC "github.com/m04kA/SMC-AssistantBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-AssistantBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-AssistantBooking/pkg/logger"
	"github.com/m04kA/SMC-AssistantBooking/pkg/metrics"
	"github.com/m04kA/SMC-AssistantBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AssistantBooking...")

	// Метрики нужны движку распределения всегда, наружу отдаем только если включены
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegistry(cfg.Metrics.ServiceName, prometheus.NewRegistry())
	}

	// Подключаемся к базе данных
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

	stopMetricsCh := make(chan struct{})
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithMaxRetries(cfg.Allocation.MaxTxRetries),
		txmanager.WithRetryObserver(metricsCollector),
	)

	// Интеграции
	accessClient := accessservice.NewClient(
		cfg.AccessService.URL,
		time.Duration(cfg.AccessService.Timeout)*time.Second,
		log,
	)
	log.Info("Access service client initialized (url=%s timeout=%ds)", cfg.AccessService.URL, cfg.AccessService.Timeout)

	// Репозитории
	periodRepository := periodRepo.NewRepository(wrappedDB)
	resourceRepository := resourceRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	assistantRepository := assistantRepo.NewRepository(wrappedDB)

	// Сервисы
	gate := periodgate.NewService(periodRepository, log)
	allocator := allocation.NewService(
		resourceRepository,
		reservationRepository,
		gate,
		txMgr,
		metricsCollector,
		log,
	)
	resourceSvc := resourcesService.NewService(resourceRepository, periodRepository, accessClient, txMgr, log)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		resourceRepository,
		periodRepository,
		accessClient,
		allocator,
		log,
	)
	periodSvc := periodsService.NewService(periodRepository, accessClient, log)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		resourceRepository,
		assistantRepository,
		reservationRepository,
		gate,
		accessClient,
		allocator,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		gate,
		accessClient,
		allocator,
		txMgr,
		log,
	)
	releaseAssistantUseCase := releaseAssistantUC.NewUseCase(
		assistantRepository,
		reservationRepository,
		accessClient,
		allocator,
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют X-User-ID, выставляемый шлюзом
	api.Use(middleware.Auth)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Таймслоты и активности ---
	for _, kind := range []domain.ResourceKind{domain.KindTimeslot, domain.KindActivity} {
		resources := handlers.ResourcesPath(kind)
		bookings := handlers.ReservationsPath(kind)

		api.HandleFunc(resources, createResourceHandler.NewHandler(resourceSvc, kind, log).Handle).Methods(http.MethodPost)
		// Статические пути регистрируются раньше {resourceId}
		api.HandleFunc(resources+"/open", listOpenResourcesHandler.NewHandler(resourceSvc, kind, log).Handle).Methods(http.MethodGet)
		api.HandleFunc(resources+"/period/{periodId}",
			listPeriodResourcesHandler.NewHandler(resourceSvc, kind, log).Handle).Methods(http.MethodGet)
		api.HandleFunc(resources+"/{resourceId}", getResourceHandler.NewHandler(resourceSvc, kind, log).Handle).Methods(http.MethodGet)
		api.HandleFunc(resources+"/{resourceId}", deleteResourceHandler.NewHandler(resourceSvc, kind, log).Handle).Methods(http.MethodDelete)
		api.HandleFunc(resources+"/{resourceId}/slots",
			updateResourceSlotsHandler.NewHandler(resourceSvc, kind, log).Handle).Methods(http.MethodPatch)
		api.HandleFunc(resources+"/{resourceId}/bookings",
			listResourceReservationsHandler.NewHandler(reservationSvc, kind, log).Handle).Methods(http.MethodGet)

		// Бронирования ассистентов
		api.HandleFunc(bookings, createReservationHandler.NewHandler(createReservationUseCase, kind, log).Handle).Methods(http.MethodPost)
		api.HandleFunc(bookings+"/{reservationId}", getReservationHandler.NewHandler(reservationSvc, kind, log).Handle).Methods(http.MethodGet)
		api.HandleFunc(bookings+"/{reservationId}", updateReservationHandler.NewHandler(updateReservationUseCase, kind, log).Handle).Methods(http.MethodPatch)
		api.HandleFunc(bookings+"/{reservationId}/process",
			processReservationHandler.NewHandler(reservationSvc, kind, log).Handle).Methods(http.MethodPost)
		api.HandleFunc("/periods/{periodId}"+bookings,
			listPeriodReservationsHandler.NewHandler(reservationSvc, kind, log).Handle).Methods(http.MethodGet)
	}

	// --- Периоды ---
	api.HandleFunc("/periods", createPeriodHandler.NewHandler(periodSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/periods", listPeriodsHandler.NewHandler(periodSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/periods/{periodId}", getPeriodHandler.NewHandler(periodSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/periods/{periodId}/status", updatePeriodStatusHandler.NewHandler(periodSvc, log).Handle).Methods(http.MethodPatch)

	// --- Ассистенты ---
	api.HandleFunc("/assistants/{assistantId}/disable",
		releaseAssistantHandler.NewHandler(releaseAssistantUseCase, releaseAssistantUC.ModeDisable, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/assistants/{assistantId}",
		releaseAssistantHandler.NewHandler(releaseAssistantUseCase, releaseAssistantUC.ModeDelete, log).Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
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

	close(stopMetricsCh)

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
