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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/MDC-AppointmentService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/MDC-AppointmentService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/MDC-AppointmentService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/m04kA/MDC-AppointmentService/internal/api/handlers/get_day_bookings"
	healthHandler "github.com/m04kA/MDC-AppointmentService/internal/api/handlers/health"
	"github.com/m04kA/MDC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/MDC-AppointmentService/internal/config"
	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	scheduleFile "github.com/m04kA/MDC-AppointmentService/internal/infra/schedule/file"
	schedulePostgres "github.com/m04kA/MDC-AppointmentService/internal/infra/schedule/postgres"
	bookingStore "github.com/m04kA/MDC-AppointmentService/internal/infra/storage/booking"
	bookingsService "github.com/m04kA/MDC-AppointmentService/internal/service/bookings"
	createBookingUC "github.com/m04kA/MDC-AppointmentService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/MDC-AppointmentService/internal/usecase/get_availability"
	"github.com/m04kA/MDC-AppointmentService/pkg/datelock"
	"github.com/m04kA/MDC-AppointmentService/pkg/logger"
	"github.com/m04kA/MDC-AppointmentService/pkg/metrics"
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

	log.Info("Starting MDC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейс поставщика расписания (используется обоими use case)
	type ScheduleProvider interface {
		WorkingHours(ctx context.Context, weekday time.Weekday) (*domain.DayWindow, error)
		PreExistingBookings(ctx context.Context, date time.Time) ([]domain.Interval, error)
	}
	var scheduleProvider ScheduleProvider

	// Выбираем источник расписания
	switch cfg.Schedule.Source {
	case config.ScheduleSourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Schedule source: postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		scheduleProvider = schedulePostgres.NewRepository(db)

	case config.ScheduleSourceFile:
		log.Info("Schedule source: file (%s)", cfg.Schedule.File)
		scheduleProvider = scheduleFile.NewRepository(cfg.Schedule.File)
	}

	// Инициализируем хранилище runtime-бронирований и блокировку по датам
	store := bookingStore.NewStore()
	dateLock := datelock.New()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(scheduleProvider, store, dateLock, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(scheduleProvider, store, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	health := healthHandler.NewHandler(cfg.Metrics.ServiceName)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирования на дату
	api.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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
