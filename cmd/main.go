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

	createHolidayHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_holiday"
	createPriceRuleHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_price_rule"
	deleteHolidayHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/delete_holiday"
	deletePriceRuleHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/delete_price_rule"
	getAvailabilityHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_availability"
	getPriceQuoteHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_price_quote"
	listHolidaysHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_holidays"
	listPriceRulesHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_price_rules"
	updatePriceRuleHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_price_rule"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	clubRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/club"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	holidayRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/holiday"
	priceRuleRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/pricerule"
	holidaysService "github.com/m04kA/SMC-CourtService/internal/service/holidays"
	priceRulesService "github.com/m04kA/SMC-CourtService/internal/service/pricerules"
	createPriceRuleUC "github.com/m04kA/SMC-CourtService/internal/usecase/create_price_rule"
	getAvailabilityUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
	resolvePriceUC "github.com/m04kA/SMC-CourtService/internal/usecase/resolve_price"
	updatePriceRuleUC "github.com/m04kA/SMC-CourtService/internal/usecase/update_price_rule"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtService...")
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
		clubRepository      *clubRepo.Repository
		courtRepository     *courtRepo.Repository
		bookingRepository   *bookingRepo.Repository
		priceRuleRepository *priceRuleRepo.Repository
		holidayRepository   *holidayRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		clubRepository = clubRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		priceRuleRepository = priceRuleRepo.NewRepository(wrappedDB)
		holidayRepository = holidayRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		clubRepository = clubRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		priceRuleRepository = priceRuleRepo.NewRepository(db)
		holidayRepository = holidayRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	priceRulesSvc := priceRulesService.NewService(
		courtRepository,
		priceRuleRepository,
		holidayRepository,
		log,
	)
	holidaysSvc := holidaysService.NewService(
		holidayRepository,
		log,
	)

	// Инициализируем use cases
	resolvePriceUseCase := resolvePriceUC.NewUseCase(
		courtRepository,
		priceRuleRepository,
		holidayRepository,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		clubRepository,
		courtRepository,
		bookingRepository,
		resolvePriceUseCase,
		log,
	)

	createPriceRuleUseCase := createPriceRuleUC.NewUseCase(
		courtRepository,
		priceRuleRepository,
		holidayRepository,
		txMgr,
		log,
	)

	updatePriceRuleUseCase := updatePriceRuleUC.NewUseCase(
		courtRepository,
		priceRuleRepository,
		holidayRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getPriceQuote := getPriceQuoteHandler.NewHandler(resolvePriceUseCase, log)
	listPriceRules := listPriceRulesHandler.NewHandler(priceRulesSvc, log)
	createPriceRule := createPriceRuleHandler.NewHandler(createPriceRuleUseCase, log)
	updatePriceRule := updatePriceRuleHandler.NewHandler(updatePriceRuleUseCase, log)
	deletePriceRule := deletePriceRuleHandler.NewHandler(priceRulesSvc, log)
	listHolidays := listHolidaysHandler.NewHandler(holidaysSvc, log)
	createHoliday := createHolidayHandler.NewHandler(holidaysSvc, log)
	deleteHoliday := deleteHolidayHandler.NewHandler(holidaysSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Доступность кортов клуба на дату и слот
	api.HandleFunc("/clubs/{clubId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Расчёт цены слота для корта
	api.HandleFunc("/courts/{courtId}/price-quote",
		getPriceQuote.Handle).Methods(http.MethodGet)

	// Список тарифных правил корта
	api.HandleFunc("/courts/{courtId}/price-rules",
		listPriceRules.Handle).Methods(http.MethodGet)

	// Справочник праздничных дат
	api.HandleFunc("/holidays",
		listHolidays.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Тарифные правила (для менеджеров клубов) ---
	// Создание тарифного правила
	protected.HandleFunc("/courts/{courtId}/price-rules",
		createPriceRule.Handle).Methods(http.MethodPost)

	// Обновление тарифного правила
	protected.HandleFunc("/courts/{courtId}/price-rules/{ruleId}",
		updatePriceRule.Handle).Methods(http.MethodPut)

	// Удаление тарифного правила
	protected.HandleFunc("/courts/{courtId}/price-rules/{ruleId}",
		deletePriceRule.Handle).Methods(http.MethodDelete)

	// --- Праздничные даты (для администраторов платформы) ---
	// Создание праздничной даты
	protected.HandleFunc("/holidays",
		createHoliday.Handle).Methods(http.MethodPost)

	// Удаление праздничной даты
	protected.HandleFunc("/holidays/{holidayId}",
		deleteHoliday.Handle).Methods(http.MethodDelete)

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
