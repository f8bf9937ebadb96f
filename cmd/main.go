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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingWizardHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/booking_wizard"
	createContactMessageHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/create_contact_message"
	getBookingCalendarHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/get_booking_calendar"
	getCalendarDayHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/get_calendar_day"
	getDashboardHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/get_dashboard"
	getProfileHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/get_profile"
	getSessionHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/get_session"
	getSiteContentHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/get_site_content"
	listBookingsHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/list_services"
	requestPasswordResetHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/request_password_reset"
	signInHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/sign_in"
	signOutHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/sign_out"
	signUpHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/sign_up"
	updateBookingStatusHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/update_booking_status"
	updateProfileHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/update_profile"
	uploadAvatarHandler "github.com/nekositon/NS-StudioService/internal/api/handlers/upload_avatar"
	"github.com/nekositon/NS-StudioService/internal/api/middleware"
	"github.com/nekositon/NS-StudioService/internal/config"
	"github.com/nekositon/NS-StudioService/internal/infra/mediastore"
	"github.com/nekositon/NS-StudioService/internal/infra/sessioncache"
	bookingRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/booking"
	intakeRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/intake"
	servicesRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/services"
	userRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/user"
	authService "github.com/nekositon/NS-StudioService/internal/service/auth"
	bookingsService "github.com/nekositon/NS-StudioService/internal/service/bookings"
	catalogService "github.com/nekositon/NS-StudioService/internal/service/catalog"
	contactService "github.com/nekositon/NS-StudioService/internal/service/contact"
	profileService "github.com/nekositon/NS-StudioService/internal/service/profile"
	bookingWizardUC "github.com/nekositon/NS-StudioService/internal/usecase/booking_wizard"
	getBookingCalendarUC "github.com/nekositon/NS-StudioService/internal/usecase/get_booking_calendar"
	"github.com/nekositon/NS-StudioService/pkg/authtoken"
	"github.com/nekositon/NS-StudioService/pkg/dbmetrics"
	"github.com/nekositon/NS-StudioService/pkg/logger"
	"github.com/nekositon/NS-StudioService/pkg/metrics"
	"github.com/nekositon/NS-StudioService/pkg/simpletxmanager"
	"github.com/nekositon/NS-StudioService/pkg/txmanager"
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

	log.Info("Starting NS-StudioService...")
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

	// Подключаемся к Redis (сессии и состояние мастера бронирования)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	sessionCache := sessioncache.NewCache(redisClient)

	// Инициализируем хранилище медиафайлов
	mediaStore, err := mediastore.New(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		log.Fatal("Failed to initialize media store: %v", err)
	}
	log.Info("Media store initialized (cloud=%s)", cfg.Cloudinary.CloudName)

	// Менеджер токенов
	tokenManager := authtoken.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.SessionTTL)*time.Second,
	)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		servicesRepository *servicesRepo.Repository
		userRepository     *userRepo.Repository
		intakeRepository   *intakeRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		servicesRepository = servicesRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		intakeRepository = intakeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		servicesRepository = servicesRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		intakeRepository = intakeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		intakeRepository,
		sessionCache,
		tokenManager,
		txMgr,
		log,
	)
	profileSvc := profileService.NewService(
		userRepository,
		bookingRepository,
		mediaStore,
		cfg.Cloudinary.AvatarFolder,
		txMgr,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(servicesRepository, log)
	contactSvc := contactService.NewService(intakeRepository, log)

	// Инициализируем use cases
	bookingWizardUseCase := bookingWizardUC.NewUseCase(
		sessionCache,
		servicesRepository,
		bookingRepository,
		mediaStore,
		cfg.Wizard.StagingDir,
		cfg.Cloudinary.ProofFolder,
		time.Duration(cfg.Wizard.SessionTTL)*time.Second,
		log,
	)
	getBookingCalendarUseCase := getBookingCalendarUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	bookingWizard := bookingWizardHandler.NewHandler(bookingWizardUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getSiteContent := getSiteContentHandler.NewHandler(cfg.Studio)
	createContactMessage := createContactMessageHandler.NewHandler(contactSvc, log)
	signUp := signUpHandler.NewHandler(authSvc, log)
	signIn := signInHandler.NewHandler(authSvc, log)
	getSession := getSessionHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	requestPasswordReset := requestPasswordResetHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profileSvc, log)
	uploadAvatar := uploadAvatarHandler.NewHandler(profileSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	getBookingCalendar := getBookingCalendarHandler.NewHandler(getBookingCalendarUseCase, log)
	getCalendarDay := getCalendarDayHandler.NewHandler(getBookingCalendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Каталог услуг и статический контент студии
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/site-content", getSiteContent.Handle).Methods(http.MethodGet)

	// Сообщения с формы обратной связи
	api.HandleFunc("/contact-messages", createContactMessage.Handle).Methods(http.MethodPost)

	// --- Мастер бронирования (сессия живет в Redis, вход не требуется) ---
	api.HandleFunc("/wizard", bookingWizard.HandleStart).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{wizardId}", bookingWizard.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{wizardId}/contact", bookingWizard.HandleContact).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{wizardId}/details", bookingWizard.HandleDetails).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{wizardId}/proof", bookingWizard.HandleAttachProof).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{wizardId}/proof", bookingWizard.HandleRemoveProof).Methods(http.MethodDelete)
	api.HandleFunc("/wizard/{wizardId}/back", bookingWizard.HandleBack).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{wizardId}/submit", bookingWizard.HandleSubmit).Methods(http.MethodPost)

	// Регистрация и вход
	api.HandleFunc("/auth/signup", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", signIn.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен с живой сессией)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, sessionCache, log))

	protected.HandleFunc("/auth/session", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/auth/signout", signOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/password-reset-requests", requestPasswordReset.Handle).Methods(http.MethodPost)

	// --- Профиль ---
	protected.HandleFunc("/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/profile/avatar", uploadAvatar.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(tokenManager, sessionCache, log))
	admin.Use(middleware.RequireAdmin(log))

	// Сводная панель и управление бронированиями
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Календарь бронирований
	admin.HandleFunc("/calendar", getBookingCalendar.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/calendar/{date}/bookings", getCalendarDay.Handle).Methods(http.MethodGet)

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
