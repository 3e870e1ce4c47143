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

	bookAppointmentsHandler "github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers/book_appointments"
	createPaymentOrderHandler "github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers/create_payment_order"
	getAvailableSlotsHandler "github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers/get_booked_slots"
	getUserAppointmentsHandler "github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers/get_user_appointments"
	updateStatusHandler "github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers/update_status"
	verifyPaymentHandler "github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers/verify_payment"
	"github.com/haircraft/HairCraft-SchedulingService/internal/api/middleware"
	"github.com/haircraft/HairCraft-SchedulingService/internal/config"
	appointmentRepo "github.com/haircraft/HairCraft-SchedulingService/internal/infra/storage/appointment"
	catalogRepo "github.com/haircraft/HairCraft-SchedulingService/internal/infra/storage/catalog"
	notifierClient "github.com/haircraft/HairCraft-SchedulingService/internal/integrations/notifier"
	paymentsClient "github.com/haircraft/HairCraft-SchedulingService/internal/integrations/payments"
	"github.com/haircraft/HairCraft-SchedulingService/internal/scheduler"
	appointmentsService "github.com/haircraft/HairCraft-SchedulingService/internal/service/appointments"
	bookAppointmentsUC "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/book_appointments"
	getAvailableSlotsUC "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/get_available_slots"
	getBookedSlotsUC "github.com/haircraft/HairCraft-SchedulingService/internal/usecase/get_booked_slots"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/dbmetrics"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/logger"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/metrics"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/simpletxmanager"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/txmanager"
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

	log.Info("Starting HairCraft-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочие часы салона уже провалидированы при загрузке конфигурации
	hours, err := cfg.Schedule.OperatingHours()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Operating hours: %s - %s, granularity %dm",
		hours.OpenTick, hours.CloseTick, hours.SlotGranularityMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		cfg.Payments.KeyID,
		cfg.Payments.KeySecret,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Payments=%s timeout=%ds, Notifier=%s timeout=%ds)",
		cfg.Payments.URL, cfg.Payments.Timeout, cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		apptRepository    *appointmentRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		apptRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		apptRepository = appointmentRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	apptSvc := appointmentsService.NewService(
		apptRepository,
		payments,
		notifier,
		log,
	)

	// Инициализируем use cases
	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(
		apptRepository,
		catalogRepository,
		hours,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		apptRepository,
		catalogRepository,
		hours,
		log,
	)

	bookAppointmentsUseCase := bookAppointmentsUC.NewUseCase(
		apptRepository,
		catalogRepository,
		txMgr,
		hours,
		log,
	)

	// Инициализируем handlers
	getBookedSlots := getBookedSlotsHandler.NewHandler(getBookedSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookAppointments := bookAppointmentsHandler.NewHandler(bookAppointmentsUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(apptSvc, log)
	updateStatus := updateStatusHandler.NewHandler(apptSvc, log)
	createPaymentOrder := createPaymentOrderHandler.NewHandler(apptSvc, log)
	verifyPayment := verifyPaymentHandler.NewHandler(apptSvc, log)

	// Планировщик напоминаний
	var reminder *scheduler.Reminder
	if cfg.Reminder.Enabled {
		reminder = scheduler.NewReminder(apptSvc, cfg.Reminder.Spec, cfg.Reminder.LeadMinutes, log)
		if err := reminder.Start(); err != nil {
			log.Fatal("Failed to start reminder scheduler: %v", err)
		}
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятые слоты на дату
	api.HandleFunc("/appointments/booked-slots", getBookedSlots.Handle).Methods(http.MethodGet)

	// Доступные слоты под выбранный набор услуг
	api.HandleFunc("/appointments/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют JWT)
	// ============================================================

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, log)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)

	// --- Записи ---
	// Бронирование блока услуг
	protected.HandleFunc("/appointments/book", bookAppointments.Handle).Methods(http.MethodPost)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Платежи ---
	protected.HandleFunc("/payments/create-order", createPaymentOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/verify", verifyPayment.Handle).Methods(http.MethodPost)

	// --- Администрирование ---
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// Перевод записи по машине состояний
	admin.HandleFunc("/appointments/{id}/status", updateStatus.Handle).Methods(http.MethodPatch)

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

	// Останавливаем планировщик напоминаний
	if reminder != nil {
		reminder.Stop()
	}

	// Останавливаем сбор метрик connection pool
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
