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

	cancelBookingHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/create_booking"
	createFieldHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/create_field"
	deactivateFieldHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/deactivate_field"
	getAvailableSlotsHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/get_booking"
	getFieldHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/get_field"
	getFieldBookingsHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/get_field_bookings"
	getUserBookingsHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/get_user_bookings"
	listFieldsHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/list_fields"
	updateAvailabilityHandler "github.com/Long0701/PitchSpot-BookingService/internal/api/handlers/update_availability"
	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	"github.com/Long0701/PitchSpot-BookingService/internal/config"
	bookingRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/booking"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	bookingsService "github.com/Long0701/PitchSpot-BookingService/internal/service/bookings"
	fieldsService "github.com/Long0701/PitchSpot-BookingService/internal/service/fields"
	cancelBookingUC "github.com/Long0701/PitchSpot-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/Long0701/PitchSpot-BookingService/internal/usecase/create_booking"
	createFieldUC "github.com/Long0701/PitchSpot-BookingService/internal/usecase/create_field"
	getAvailableSlotsUC "github.com/Long0701/PitchSpot-BookingService/internal/usecase/get_available_slots"
	updateAvailabilityUC "github.com/Long0701/PitchSpot-BookingService/internal/usecase/update_availability"
	"github.com/Long0701/PitchSpot-BookingService/pkg/dbmetrics"
	"github.com/Long0701/PitchSpot-BookingService/pkg/logger"
	"github.com/Long0701/PitchSpot-BookingService/pkg/metrics"
	"github.com/Long0701/PitchSpot-BookingService/pkg/txmanager"
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

	log.Info("Starting PitchSpot-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
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
	// are enabled
	var (
		fieldRepository   *fieldRepo.Repository
		bookingRepository *bookingRepo.Repository
		txMgr             *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		fieldRepository = fieldRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		fieldRepository = fieldRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewFromSQLDB(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, fieldRepository, log)
	fieldSvc := fieldsService.NewService(fieldRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(fieldRepository, bookingRepository, txMgr, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, fieldRepository, txMgr, log)
	createFieldUseCase := createFieldUC.NewUseCase(fieldRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(fieldRepository, log)
	updateAvailabilityUseCase := updateAvailabilityUC.NewUseCase(fieldRepository, bookingRepository, txMgr, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createField := createFieldHandler.NewHandler(createFieldUseCase, log)
	getField := getFieldHandler.NewHandler(fieldSvc, log)
	listFields := listFieldsHandler.NewHandler(fieldSvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(updateAvailabilityUseCase, log)
	deactivateField := deactivateFieldHandler.NewHandler(fieldSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the field catalogue and slot schedules
	api.HandleFunc("/fields", listFields.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{id}", getField.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{id}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes: require the gateway identity headers
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/fields", createField.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/fields/{id}", deactivateField.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/fields/{id}/slots", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/fields/{id}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)

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
