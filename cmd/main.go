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

	cancelAppointmentHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_available_slots"
	getTemplateHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_template"
	getWeekHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_week"
	healthHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/list_appointments"
	saveAvailabilityHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/save_availability"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/availability"
	templateRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/template"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/events"
	appointmentsService "github.com/m04kA/SMC-CalendarService/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-CalendarService/internal/service/availability"
	cancelAppointmentUC "github.com/m04kA/SMC-CalendarService/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/m04kA/SMC-CalendarService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
	getWeekUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week"
	saveAvailabilityUC "github.com/m04kA/SMC-CalendarService/internal/usecase/save_availability"
	"github.com/m04kA/SMC-CalendarService/pkg/datelock"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
	"github.com/m04kA/SMC-CalendarService/pkg/txmanager"
)

// Locker общий интерфейс блокировок дат для use cases
type Locker interface {
	Lock(ctx context.Context, key string) (datelock.Unlock, error)
}

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

	log.Info("Starting SMC-CalendarService...")

	loc, err := cfg.Booking.LoadLocation()
	if err != nil {
		log.Fatal("Failed to load location %q: %v", cfg.Booking.Location, err)
	}
	log.Info("Calendar location: %s, appointment duration: %d min", loc, cfg.Booking.DurationMinutes)

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

	// Оборачиваем БД: с метриками собираем и статистику пула
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	healthChecks := map[string]healthHandler.Pinger{"postgres": db}

	// Блокировки дат: Redis для нескольких инстансов, иначе внутри процесса
	var locker Locker
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		locker = datelock.NewRedisLocker(rdb, cfg.Redis.KeyPrefix, cfg.Redis.LockTTL(), cfg.Redis.LockWait())
		healthChecks["redis"] = healthHandler.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		log.Info("Redis date locks enabled (addr=%s, ttl=%s, wait=%s)",
			cfg.Redis.Addr, cfg.Redis.LockTTL(), cfg.Redis.LockWait())
	} else {
		locker = datelock.NewLocalLocker()
		log.Warn("Redis is disabled, using in-process date locks")
	}

	// Публикация событий о записях
	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.WriteTimeout(), log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()
	if cfg.Kafka.Enabled() {
		log.Info("Kafka events enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем репозитории
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB, loc)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB, loc)
	templateRepository := templateRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	timeProvider := &saveAvailabilityUC.RealTimeProvider{Location: loc}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, templateRepository, log)

	// Инициализируем use cases
	saveAvailabilityUseCase := saveAvailabilityUC.NewUseCase(
		availabilityRepository,
		appointmentRepository,
		templateRepository,
		txMgr,
		locker,
		metricsCollector,
		timeProvider,
		cfg.Booking.MaxYearsAhead,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		availabilityRepository,
		appointmentRepository,
		txMgr,
		locker,
		publisher,
		metricsCollector,
		timeProvider,
		cfg.Booking.DurationMinutes,
		log,
	)

	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		availabilityRepository,
		appointmentRepository,
		templateRepository,
		txMgr,
		locker,
		publisher,
		metricsCollector,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		timeProvider,
		cfg.Booking.WindowDays,
		cfg.Booking.MaxWindowDays,
		log,
	)

	getWeekUseCase := getWeekUC.NewUseCase(
		availabilityRepository,
		appointmentRepository,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	saveAvailability := saveAvailabilityHandler.NewHandler(saveAvailabilityUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getTemplate := getTemplateHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getWeek := getWeekHandler.NewHandler(getWeekUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	health := healthHandler.NewHandler(healthChecks, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	// Сохранение недельного шаблона и разворот на год
	api.HandleFunc("/availability/{year:[0-9]+}", saveAvailability.Handle).Methods(http.MethodPut)

	// Сохранённый шаблон года
	api.HandleFunc("/availability/{year:[0-9]+}", getTemplate.Handle).Methods(http.MethodGet)

	// Доступность по датам
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Свободные слоты в окне записи
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Данные недельного календаря
	api.HandleFunc("/week", getWeek.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", cancelAppointment.Handle).Methods(http.MethodDelete)

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
