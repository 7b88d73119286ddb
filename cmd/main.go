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

	cancelReservationHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/create_table"
	deactivateTableHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/deactivate_table"
	getAvailabilityHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/get_user_reservations"
	listReservationsHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/list_reservations"
	listTablesHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/list_tables"
	updateStatusHandler "github.com/m04kA/TableTime-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/TableTime-ReservationService/internal/api/middleware"
	"github.com/m04kA/TableTime-ReservationService/internal/app"
	"github.com/m04kA/TableTime-ReservationService/internal/config"
	reservationRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/table"
	reservationsService "github.com/m04kA/TableTime-ReservationService/internal/service/reservations"
	tablesService "github.com/m04kA/TableTime-ReservationService/internal/service/tables"
	createReservationUC "github.com/m04kA/TableTime-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/TableTime-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/TableTime-ReservationService/pkg/logger"
	"github.com/m04kA/TableTime-ReservationService/pkg/metrics"
	"github.com/m04kA/TableTime-ReservationService/pkg/txmanager"
)

const migrationsDir = "migrations"

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

	log.Info("Starting TableTime-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции
	if cfg.Database.Migrate {
		migrator, err := app.NewMigrator(db, migrationsDir, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Инициализируем репозитории и transaction manager
	reservationRepository := reservationRepo.NewRepository(db)
	tableRepository := tableRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Доменные метрики: заглушки, если сбор выключен
	var (
		createMetrics createReservationUC.Metrics = createReservationUC.NopMetrics{}
		sweepMetrics  reservationsService.Metrics = reservationsService.NopMetrics{}
	)
	if cfg.Metrics.Enabled {
		createMetrics = metricsCollector
		sweepMetrics = metricsCollector
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		tableRepository,
		sweepMetrics,
		log,
	)
	tablesSvc := tablesService.NewService(tableRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		txMgr,
		createMetrics,
		cfg.Booking.RequireApproval,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		tableRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(reservationsSvc, log)
	listTables := listTablesHandler.NewHandler(tablesSvc, log)
	createTable := createTableHandler.NewHandler(tablesSvc, log)
	deactivateTable := deactivateTableHandler.NewHandler(tablesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Идентификация пользователя по заголовку (опциональная)
	r.Use(middleware.Identity)

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{reservationId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	api.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Столы ---
	api.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)
	api.HandleFunc("/tables/{tableId}", deactivateTable.Handle).Methods(http.MethodDelete)

	// Фоновый перевод прошедших бронирований в completed
	var sweeper *app.Sweeper
	if cfg.Sweeper.Enabled {
		sweeper = app.NewSweeper(
			reservationsSvc,
			time.Duration(cfg.Sweeper.IntervalMinutes)*time.Minute,
			log,
		)
		sweeper.Start(context.Background())
	}

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

	if sweeper != nil {
		sweeper.Stop()
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
