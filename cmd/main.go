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

	adminBookingsHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/admin_bookings"
	bookingConfirmationHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/booking_confirmation"
	cancelBookingHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/create_booking"
	createSlotHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/create_slot"
	listOrganizationsHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/list_organizations"
	listSlotsHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/list_slots"
	orgBookingsHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/org_bookings"
	orgDashboardHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/org_dashboard"
	registerOrganizationHandler "github.com/m04kA/PMS-ReservationService/internal/api/handlers/register_organization"
	"github.com/m04kA/PMS-ReservationService/internal/api/middleware"
	"github.com/m04kA/PMS-ReservationService/internal/config"
	"github.com/m04kA/PMS-ReservationService/internal/credentials"
	adminRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/booking"
	orgRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/organization"
	slotRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/slot"
	authService "github.com/m04kA/PMS-ReservationService/internal/service/auth"
	bookingsService "github.com/m04kA/PMS-ReservationService/internal/service/bookings"
	organizationsService "github.com/m04kA/PMS-ReservationService/internal/service/organizations"
	reportingService "github.com/m04kA/PMS-ReservationService/internal/service/reporting"
	slotsService "github.com/m04kA/PMS-ReservationService/internal/service/slots"
	cancelBookingUC "github.com/m04kA/PMS-ReservationService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/PMS-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/PMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/PMS-ReservationService/pkg/logger"
	"github.com/m04kA/PMS-ReservationService/pkg/metrics"
	"github.com/m04kA/PMS-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/PMS-ReservationService/pkg/txmanager"
)

// realClock системное время для сервисов с инжектируемыми часами
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

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

	log.Info("Starting PMS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		orgRepository     *orgRepo.Repository
		adminRepository   *adminRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		orgRepository = orgRepo.NewRepository(wrappedDB)
		adminRepository = adminRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		orgRepository = orgRepo.NewRepository(db)
		adminRepository = adminRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := realClock{}

	// Инициализируем сервисы
	authSvc := authService.NewService(orgRepository, adminRepository, log)
	organizationsSvc := organizationsService.NewService(orgRepository, slotRepository, log)
	slotsSvc := slotsService.NewService(slotRepository, orgRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, clock, log)
	reportingSvc := reportingService.NewService(orgRepository, slotRepository, bookingRepository, clock, log)

	// Инициализируем use cases
	credGenerator := credentials.NewGenerator()
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		credGenerator,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	bookingConfirmation := bookingConfirmationHandler.NewHandler(bookingsSvc, log)
	registerOrganization := registerOrganizationHandler.NewHandler(organizationsSvc, log)
	listOrganizations := listOrganizationsHandler.NewHandler(organizationsSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	orgDashboard := orgDashboardHandler.NewHandler(reportingSvc, log)
	orgBookings := orgBookingsHandler.NewHandler(bookingsSvc, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация организации и публичный каталог
	api.HandleFunc("/organizations", registerOrganization.Handle).Methods(http.MethodPost)
	api.HandleFunc("/organizations", listOrganizations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Бронирование: допуск, подтверждение, отмена по токену и PIN
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/confirmation", bookingConfirmation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ORGANIZATION ROUTES (Basic auth организации)
	// ============================================================

	org := api.PathPrefix("/org").Subrouter()
	org.Use(middleware.OrgAuth(authSvc, log))

	org.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	org.HandleFunc("/dashboard", orgDashboard.Handle).Methods(http.MethodGet)
	org.HandleFunc("/bookings", orgBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Basic auth администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/bookings", adminBookings.Handle).Methods(http.MethodGet)

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
