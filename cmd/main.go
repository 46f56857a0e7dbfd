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
	"github.com/redis/go-redis/v9"

	createReservationHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/delete_reservation"
	getDayHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_day"
	getDayCountHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_day_count"
	getMonthHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_month_availability"
	getNameReservationsHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_name_reservations"
	getNamesHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_names"
	renameReservationHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/rename_reservation"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/availability"
	"github.com/m04kA/SMC-DeskBooking/internal/config"
	monthCache "github.com/m04kA/SMC-DeskBooking/internal/infra/cache/month"
	reservationRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/reservation"
	reservationsService "github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_reservation"
	getMonthUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_month_availability"
	"github.com/m04kA/SMC-DeskBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBooking/pkg/logger"
	"github.com/m04kA/SMC-DeskBooking/pkg/metrics"
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

	log.Info("Starting SMC-DeskBooking...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Reservations.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Reservations.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var repository *reservationRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
		repository = reservationRepo.NewRepository(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
	}

	// Инициализируем кэш месяца
	var cache monthCache.Store = monthCache.NewNoop()
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()

		// Без Redis сервис работает напрямую с БД
		if err != nil {
			log.Warn("Redis unavailable at %s, month cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			cache = monthCache.NewCache(redisClient, cfg.Cache.Prefix, cfg.Cache.TTLDuration())
			log.Info("Month cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Cache.TTL)
		}
	}

	calc := availability.NewCalculator(cfg.Reservations.Capacity, cfg.Reservations.WeekdaysOnly)

	// Триггер вместимости читает то же значение, что и калькулятор
	syncCtx, cancelSync := context.WithTimeout(context.Background(), 5*time.Second)
	err = repository.SetCapacity(syncCtx, calc.Capacity())
	cancelSync()
	if err != nil {
		log.Fatal("Failed to store reservations capacity: %v", err)
	}
	log.Info("Reservations: capacity=%d, weekdays_only=%t, timezone=%s, precheck=%t",
		calc.Capacity(), calc.WeekdaysOnly(), location, cfg.Reservations.Precheck)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		repository,
		cache,
		calc,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		repository,
		cache,
		calc,
		metricsCollector,
		location,
		cfg.Reservations.Precheck,
		log,
	)

	getMonthUseCase := getMonthUC.NewUseCase(
		repository,
		cache,
		calc,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getMonth := getMonthHandler.NewHandler(getMonthUseCase, log)
	getDay := getDayHandler.NewHandler(reservationSvc, log)
	getDayCount := getDayCountHandler.NewHandler(reservationSvc, log)
	renameReservation := renameReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getNames := getNamesHandler.NewHandler(reservationSvc, log)
	getNameReservations := getNameReservationsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер.
	// UseEncodedPath нужен для имен с пробелами и "/" в пути.
	r := mux.NewRouter().UseEncodedPath()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь ---
	// Доступность мест по дням месяца
	api.HandleFunc("/months/{year:[0-9]{4}}/{month:[0-9]{1,2}}", getMonth.Handle).Methods(http.MethodGet)

	// Бронирования дня (и оценка имени, если передан ?name=)
	api.HandleFunc("/days/{date}", getDay.Handle).Methods(http.MethodGet)

	// Количество бронирований дня
	api.HandleFunc("/days/{date}/count", getDayCount.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Смена имени в бронировании
	api.HandleFunc("/days/{date}/reservations/{name}", renameReservation.Handle).Methods(http.MethodPatch)

	// Удаление бронирования
	api.HandleFunc("/days/{date}/reservations/{name}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Имена ---
	// Автодополнение имен
	api.HandleFunc("/names", getNames.Handle).Methods(http.MethodGet)

	// Бронирования человека
	api.HandleFunc("/names/{name}/reservations", getNameReservations.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
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
