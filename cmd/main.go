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

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminSalonsHandler "github.com/salonplein/booking-platform/internal/api/handlers/admin_salons"
	adminStatsHandler "github.com/salonplein/booking-platform/internal/api/handlers/admin_stats"
	adminUsersHandler "github.com/salonplein/booking-platform/internal/api/handlers/admin_users"
	cancelBookingHandler "github.com/salonplein/booking-platform/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/salonplein/booking-platform/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/salonplein/booking-platform/internal/api/handlers/get_availability"
	getBookingHandler "github.com/salonplein/booking-platform/internal/api/handlers/get_booking"
	getOwnerSalonsHandler "github.com/salonplein/booking-platform/internal/api/handlers/get_owner_salons"
	getSalonHandler "github.com/salonplein/booking-platform/internal/api/handlers/get_salon"
	getSalonBookingsHandler "github.com/salonplein/booking-platform/internal/api/handlers/get_salon_bookings"
	getUserBookingsHandler "github.com/salonplein/booking-platform/internal/api/handlers/get_user_bookings"
	listDealsHandler "github.com/salonplein/booking-platform/internal/api/handlers/list_deals"
	manageBlocksHandler "github.com/salonplein/booking-platform/internal/api/handlers/manage_blocks"
	manageDealsHandler "github.com/salonplein/booking-platform/internal/api/handlers/manage_deals"
	manageHoursHandler "github.com/salonplein/booking-platform/internal/api/handlers/manage_hours"
	manageServicesHandler "github.com/salonplein/booking-platform/internal/api/handlers/manage_services"
	manageStaffHandler "github.com/salonplein/booking-platform/internal/api/handlers/manage_staff"
	registerSalonHandler "github.com/salonplein/booking-platform/internal/api/handlers/register_salon"
	searchSalonsHandler "github.com/salonplein/booking-platform/internal/api/handlers/search_salons"
	"github.com/salonplein/booking-platform/internal/api/middleware"
	"github.com/salonplein/booking-platform/internal/config"
	bookingRepo "github.com/salonplein/booking-platform/internal/infra/storage/booking"
	catalogRepo "github.com/salonplein/booking-platform/internal/infra/storage/catalog"
	dealRepo "github.com/salonplein/booking-platform/internal/infra/storage/deal"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
	scheduleRepo "github.com/salonplein/booking-platform/internal/infra/storage/schedule"
	staffRepo "github.com/salonplein/booking-platform/internal/infra/storage/staff"
	userRepo "github.com/salonplein/booking-platform/internal/infra/storage/user"
	bookingsService "github.com/salonplein/booking-platform/internal/service/bookings"
	catalogService "github.com/salonplein/booking-platform/internal/service/catalog"
	dealsService "github.com/salonplein/booking-platform/internal/service/deals"
	salonsService "github.com/salonplein/booking-platform/internal/service/salons"
	scheduleService "github.com/salonplein/booking-platform/internal/service/schedule"
	staffService "github.com/salonplein/booking-platform/internal/service/staff"
	statsService "github.com/salonplein/booking-platform/internal/service/stats"
	createBookingUC "github.com/salonplein/booking-platform/internal/usecase/create_booking"
	getAvailabilityUC "github.com/salonplein/booking-platform/internal/usecase/get_availability"
	"github.com/salonplein/booking-platform/pkg/dbmetrics"
	"github.com/salonplein/booking-platform/pkg/logger"
	"github.com/salonplein/booking-platform/pkg/metrics"
	"github.com/salonplein/booking-platform/pkg/simpletxmanager"
	"github.com/salonplein/booking-platform/pkg/txmanager"
)

func main() {
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

	log.Info("Starting salon booking platform...")
	log.Info("Configuration loaded from config.toml")

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

	// The repositories accept any executor, so both branches reuse the same
	// constructors; only the transaction manager differs.
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		salonRepository    *salonRepo.Repository
		staffRepository    *staffRepo.Repository
		catalogRepository  *catalogRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		bookingRepository  *bookingRepo.Repository
		dealRepository     *dealRepo.Repository
		userRepository     *userRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		salonRepository = salonRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		dealRepository = dealRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		salonRepository = salonRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		dealRepository = dealRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	salonsSvc := salonsService.NewService(salonRepository, userRepository, txMgr, log)
	staffSvc := staffService.NewService(staffRepository, salonRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, salonRepository, staffRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, staffRepository, salonRepository, txMgr, log)
	dealsSvc := dealsService.NewService(dealRepository, catalogRepository, staffRepository, salonRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, catalogRepository, salonRepository, log)
	statsSvc := statsService.NewService(bookingRepository, salonRepository, userRepository, log)

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		salonRepository,
		catalogRepository,
		staffRepository,
		scheduleRepository,
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		salonRepository,
		catalogRepository,
		staffRepository,
		bookingRepository,
		dealRepository,
		userRepository,
		txMgr,
		log,
	)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingsSvc, log)
	searchSalons := searchSalonsHandler.NewHandler(salonsSvc, log)
	getSalon := getSalonHandler.NewHandler(salonsSvc, catalogSvc, staffSvc, log)
	registerSalon := registerSalonHandler.NewHandler(salonsSvc, log)
	getOwnerSalons := getOwnerSalonsHandler.NewHandler(salonsSvc, log)
	manageStaff := manageStaffHandler.NewHandler(staffSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	manageHours := manageHoursHandler.NewHandler(scheduleSvc, log)
	manageBlocks := manageBlocksHandler.NewHandler(scheduleSvc, log)
	listDeals := listDealsHandler.NewHandler(dealsSvc, log)
	manageDeals := manageDealsHandler.NewHandler(dealsSvc, log)
	adminSalons := adminSalonsHandler.NewHandler(salonsSvc, log)
	adminStats := adminStatsHandler.NewHandler(statsSvc, log)
	adminUsers := adminUsersHandler.NewHandler(statsSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/salons", searchSalons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}", getSalon.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/deals", listDeals.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID header required)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Bookings
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Salon registration and ownership
	protected.HandleFunc("/salons", registerSalon.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/salons", getOwnerSalons.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// Staff roster
	protected.HandleFunc("/salons/{salonId}/staff", manageStaff.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/staff", manageStaff.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}", manageStaff.HandleUpdate).Methods(http.MethodPatch)

	// Service catalog
	protected.HandleFunc("/salons/{salonId}/services", manageServices.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/services", manageServices.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}", manageServices.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/services/{serviceId}/staff", manageServices.HandleListStaff).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}/staff/{staffId}", manageServices.HandleLinkStaff).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}/staff/{staffId}", manageServices.HandleUnlinkStaff).Methods(http.MethodDelete)

	// Opening hours and blocked times
	protected.HandleFunc("/staff/{staffId}/hours", manageHours.HandleSet).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}/hours", manageHours.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/blocks", manageBlocks.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{staffId}/blocks", manageBlocks.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/blocks/{blockId}", manageBlocks.HandleDelete).Methods(http.MethodDelete)

	// Deals
	protected.HandleFunc("/salons/{salonId}/deals", manageDeals.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/deals", manageDeals.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/deals/{dealId}/deactivate", manageDeals.HandleDeactivate).Methods(http.MethodPatch)
	protected.HandleFunc("/deals/{dealId}", manageDeals.HandleDelete).Methods(http.MethodDelete)

	// Administration
	protected.HandleFunc("/admin/salons", adminSalons.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/admin/salons/{salonId}", adminSalons.HandleModerate).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/salons/{salonId}", adminSalons.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/admin/stats", adminStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/users", adminUsers.Handle).Methods(http.MethodGet)

	// The API is consumed by browser frontends on other origins.
	corsHandler := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
		}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "X-User-ID"}),
	)(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	log.Info("Server exited")
}
