package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers/create_booking"
	getPageHandler "github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers/get_page"
	getStateHandler "github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers/get_state"
	liveUpdatesHandler "github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers/live_updates"
	selectDateHandler "github.com/m04kA/SMC-BarberFrontDesk/internal/api/handlers/select_date"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/api/middleware"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/config"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/integrations/barbershop"
	"github.com/m04kA/SMC-BarberFrontDesk/internal/service/frontdesk"
	scheduleService "github.com/m04kA/SMC-BarberFrontDesk/internal/service/schedule"
	bootstrapUC "github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/bootstrap"
	loadCatalogUC "github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/load_catalog"
	submitBookingUC "github.com/m04kA/SMC-BarberFrontDesk/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-BarberFrontDesk/pkg/logger"
	"github.com/m04kA/SMC-BarberFrontDesk/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml", ".env")
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

	log.Info("Starting SMC-BarberFrontDesk...")

	backendURL, source := cfg.LookupBackendURL()
	log.Info("Backend URL %s (source=%s, timeout=%ds)", backendURL, source, cfg.Backend.Timeout)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент бэкенда
	client := barbershop.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		metricsCollector,
	)

	// Инициализируем use cases и сервисы
	bootstrapUseCase := bootstrapUC.NewUseCase(client, cfg.FrontDesk.DebugPageURL, log, metricsCollector)
	loadCatalogUseCase := loadCatalogUC.NewUseCase(client, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(client, log, metricsCollector)
	scheduleSvc := scheduleService.NewService(client, log, metricsCollector)

	frontDesk := frontdesk.NewService(
		bootstrapUseCase,
		loadCatalogUseCase,
		submitBookingUseCase,
		scheduleSvc,
		cfg.FrontDesk.DebugPageURL,
		log,
	)

	validator, err := handlers.NewValidator()
	if err != nil {
		log.Fatal("Failed to initialize validator: %v", err)
	}

	// Инициализируем handlers
	getPage := getPageHandler.NewHandler(frontDesk, log)
	createBooking := createBookingHandler.NewHandler(frontDesk, getPage, validator, log)
	selectDate := selectDateHandler.NewHandler(frontDesk, getPage, log)
	getState := getStateHandler.NewHandler(frontDesk)
	liveUpdates := liveUpdatesHandler.NewHandler(frontDesk, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// --- Страница ---
	r.HandleFunc("/", getPage.Handle).Methods(http.MethodGet)
	r.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/schedule", selectDate.HandleForm).Methods(http.MethodPost)

	// --- API ---
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/state", getState.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", selectDate.Handle).Methods(http.MethodGet)
	api.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/live", liveUpdates.Handle).Methods(http.MethodGet)

	// Проверка каталога, загрузка каталога и расписания идут в фоне:
	// страница доступна сразу и показывает состояние загрузки
	startCtx, cancelStart := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.FrontDesk.StartupTimeout)*time.Second,
	)
	defer cancelStart()
	go func() {
		if err := frontDesk.Start(startCtx); err != nil {
			log.Warn("Front desk started in degraded mode: %v", err)
		}
	}()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
