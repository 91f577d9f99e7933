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

	cancelReservationHandler "github.com/hotelpms/reservation-service/internal/api/handlers/cancel_reservation"
	checkInHandler "github.com/hotelpms/reservation-service/internal/api/handlers/check_in"
	checkOutHandler "github.com/hotelpms/reservation-service/internal/api/handlers/check_out"
	createGuestHandler "github.com/hotelpms/reservation-service/internal/api/handlers/create_guest"
	createReservationHandler "github.com/hotelpms/reservation-service/internal/api/handlers/create_reservation"
	createRoomHandler "github.com/hotelpms/reservation-service/internal/api/handlers/create_room"
	deleteGuestHandler "github.com/hotelpms/reservation-service/internal/api/handlers/delete_guest"
	deleteRoomHandler "github.com/hotelpms/reservation-service/internal/api/handlers/delete_room"
	findAvailableRoomsHandler "github.com/hotelpms/reservation-service/internal/api/handlers/find_available_rooms"
	getDashboardHandler "github.com/hotelpms/reservation-service/internal/api/handlers/get_dashboard"
	getGuestHandler "github.com/hotelpms/reservation-service/internal/api/handlers/get_guest"
	getGuestHistoryHandler "github.com/hotelpms/reservation-service/internal/api/handlers/get_guest_history"
	getReservationHandler "github.com/hotelpms/reservation-service/internal/api/handlers/get_reservation"
	getRoomHandler "github.com/hotelpms/reservation-service/internal/api/handlers/get_room"
	getStatusBoardHandler "github.com/hotelpms/reservation-service/internal/api/handlers/get_status_board"
	getTodayArrivalsHandler "github.com/hotelpms/reservation-service/internal/api/handlers/get_today_arrivals"
	getTodayDeparturesHandler "github.com/hotelpms/reservation-service/internal/api/handlers/get_today_departures"
	listReservationsHandler "github.com/hotelpms/reservation-service/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/hotelpms/reservation-service/internal/api/handlers/list_rooms"
	searchGuestsHandler "github.com/hotelpms/reservation-service/internal/api/handlers/search_guests"
	updateGuestHandler "github.com/hotelpms/reservation-service/internal/api/handlers/update_guest"
	updateReservationHandler "github.com/hotelpms/reservation-service/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/hotelpms/reservation-service/internal/api/handlers/update_reservation_status"
	updateRoomHandler "github.com/hotelpms/reservation-service/internal/api/handlers/update_room"
	updateRoomStatusHandler "github.com/hotelpms/reservation-service/internal/api/handlers/update_room_status"
	"github.com/hotelpms/reservation-service/internal/api/middleware"
	"github.com/hotelpms/reservation-service/internal/availability"
	"github.com/hotelpms/reservation-service/internal/config"
	guestRepo "github.com/hotelpms/reservation-service/internal/infra/storage/guest"
	reservationRepo "github.com/hotelpms/reservation-service/internal/infra/storage/reservation"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
	dashboardService "github.com/hotelpms/reservation-service/internal/service/dashboard"
	guestsService "github.com/hotelpms/reservation-service/internal/service/guests"
	reservationsService "github.com/hotelpms/reservation-service/internal/service/reservations"
	roomsService "github.com/hotelpms/reservation-service/internal/service/rooms"
	createReservationUC "github.com/hotelpms/reservation-service/internal/usecase/create_reservation"
	findAvailableRoomsUC "github.com/hotelpms/reservation-service/internal/usecase/find_available_rooms"
	updateReservationUC "github.com/hotelpms/reservation-service/internal/usecase/update_reservation"
	"github.com/hotelpms/reservation-service/pkg/dbmetrics"
	"github.com/hotelpms/reservation-service/pkg/logger"
	"github.com/hotelpms/reservation-service/pkg/metrics"
	"github.com/hotelpms/reservation-service/pkg/simpletxmanager"
	"github.com/hotelpms/reservation-service/pkg/txmanager"
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

	log.Info("Starting reservation-service...")
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

	// Transaction manager interface shared by the booking usecases.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		reservationRepository *reservationRepo.Repository
		roomRepository        *roomRepo.Repository
		guestRepository       *guestRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		guestRepository = guestRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		guestRepository = guestRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingValidator := availability.Validator{AllowPastCheckIn: cfg.Booking.AllowPastCheckIn}
	if cfg.Booking.AllowPastCheckIn {
		log.Warn("Past check-in dates are allowed (booking.allow_past_check_in=true)")
	}

	// Services
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	roomSvc := roomsService.NewService(roomRepository, reservationRepository, log)
	guestSvc := guestsService.NewService(guestRepository, reservationRepository, log)
	dashboardSvc := dashboardService.NewService(roomRepository, reservationRepository, log)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		guestRepository,
		txMgr,
		bookingValidator,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		bookingValidator,
		log,
	)
	findAvailableRoomsUseCase := findAvailableRoomsUC.NewUseCase(
		reservationRepository,
		roomRepository,
		log,
	)

	// Handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	checkIn := checkInHandler.NewHandler(reservationSvc, log)
	checkOut := checkOutHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getTodayArrivals := getTodayArrivalsHandler.NewHandler(reservationSvc, log)
	getTodayDepartures := getTodayDeparturesHandler.NewHandler(reservationSvc, log)

	findAvailableRooms := findAvailableRoomsHandler.NewHandler(findAvailableRoomsUseCase, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	getStatusBoard := getStatusBoardHandler.NewHandler(roomSvc, log)

	createGuest := createGuestHandler.NewHandler(guestSvc, log)
	getGuest := getGuestHandler.NewHandler(guestSvc, log)
	searchGuests := searchGuestsHandler.NewHandler(guestSvc, log)
	updateGuest := updateGuestHandler.NewHandler(guestSvc, log)
	deleteGuest := deleteGuestHandler.NewHandler(guestSvc, log)
	getGuestHistory := getGuestHistoryHandler.NewHandler(guestSvc, log)

	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Room availability search
	api.HandleFunc("/rooms/available", findAvailableRooms.Handle).Methods(http.MethodGet)

	// Room catalog
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/status-board", getStatusBoard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}", getRoom.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header from the gateway)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Reservations ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/arrivals", getTodayArrivals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/departures", getTodayDepartures.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/check-out", checkOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Rooms (management) ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{roomId}/status", updateRoomStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

	// --- Guests ---
	protected.HandleFunc("/guests", createGuest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/guests", searchGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests/{guestId}", getGuest.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests/{guestId}", updateGuest.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/guests/{guestId}", deleteGuest.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/guests/{guestId}/reservations", getGuestHistory.Handle).Methods(http.MethodGet)

	// --- Dashboard ---
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

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
