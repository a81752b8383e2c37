package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sweetstack/sweet-shop-api/internal/database"
	"github.com/sweetstack/sweet-shop-api/internal/handlers"
	"github.com/sweetstack/sweet-shop-api/internal/jwt"
	"github.com/sweetstack/sweet-shop-api/internal/logger"
	"github.com/sweetstack/sweet-shop-api/internal/middlewares"
	"github.com/sweetstack/sweet-shop-api/internal/repositories"
	"github.com/sweetstack/sweet-shop-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Auth endpoints allow this many requests per IP per window when Redis is
// configured.
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// @title sweet-shop API
// @version 1.0.0
// @description REST API for a sweet shop: catalog, purchases, and inventory management
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appEnv, appHost, appPort, dbPath, logLevel,
		jwtSecret, jwtExpHour,
		redisAddr, redisPassword, redisDB,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appEnv, appHost, appPort, dbPath, logLevel,
		jwtSecret, jwtExpHour,
		redisAddr, redisPassword, redisDB,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, JWT, Redis and Kafka configuration.
func parseConfig(path string) (
	appEnv, appHost, appPort, dbPath, logLevel string,
	jwtSecret string, jwtExpHour int,
	redisAddr, redisPassword string, redisDB int,
	kafkaBrokers, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appEnv = getEnv("APP_ENV", "development")
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// SQLite config
	dbPath = getEnv("DB_PATH", "sweet_shop.db")

	// JWT config. run refuses the fallback secret in production.
	jwtSecret = getEnv("JWT_SECRET_KEY", "default-secret")
	if jwtExpHour, err = strconv.Atoi(getEnv("JWT_EXP_HOUR", "24")); err != nil {
		return
	}

	// Redis config (optional, enables auth rate limiting)
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Kafka config (optional, enables purchase event publishing)
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "purchases")

	return
}

// run initializes the logger, database, optional Redis and Kafka clients,
// and the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appEnv, appHost, appPort, dbPath, logLevel string,
	jwtSecret string, jwtExpHour int,
	redisAddr, redisPassword string, redisDB int,
	kafkaBrokers, kafkaTopic string,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// A known default secret must never reach production.
	if appEnv == "production" && jwtSecret == "default-secret" {
		return errors.New("JWT_SECRET_KEY must be set in production")
	}

	// Connect to SQLite and bootstrap the schema
	log.Infof("Opening SQLite database at %s", dbPath)
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		log.Errorw("SQLite connection error", "error", err)
		return err
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	// Connect to Redis when configured
	var rdb *redis.Client
	if redisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
		log.Infof("Redis rate limiting enabled via %s", redisAddr)
	}

	// Connect a Kafka writer when configured
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Kafka purchase events enabled on topic %s", kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecret),
		jwt.WithExpiration(time.Duration(jwtExpHour)*time.Hour),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sweetReadRepo := repositories.NewSweetReadRepository(db, middlewares.GetTxFromContext)
	sweetWriteRepo := repositories.NewSweetWriteRepository(db, middlewares.GetTxFromContext)
	purchaseReadRepo := repositories.NewPurchaseReadRepository(db)
	purchaseWriteRepo := repositories.NewPurchaseWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	sweetService := services.NewSweetService(sweetReadRepo, sweetWriteRepo, purchaseWriteRepo, kafkaWriter)
	purchaseService := services.NewPurchaseService(purchaseReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	authGate := middlewares.AuthMiddleware(tokens)
	adminGate := middlewares.AdminMiddleware()

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(rdb, authRateLimit, authRateWindow))
			r.Post("/auth/register", handlers.NewRegisterHandler(authService))
			r.Post("/auth/login", handlers.NewLoginHandler(authService))
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authGate)

			r.Get("/auth/me", handlers.NewCurrentUserHandler(authService))

			r.Get("/sweets", handlers.NewListSweetsHandler(sweetService))
			r.Get("/sweets/search", handlers.NewSearchSweetsHandler(sweetService))
			r.Get("/sweets/{id}", handlers.NewGetSweetHandler(sweetService))

			r.With(middlewares.TxMiddleware(db)).
				Post("/sweets/{id}/purchase", handlers.NewPurchaseSweetHandler(sweetService))

			r.Get("/purchases", handlers.NewUserPurchasesHandler(purchaseService))

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(adminGate)
				r.Post("/sweets", handlers.NewCreateSweetHandler(sweetService))
				r.Put("/sweets/{id}", handlers.NewUpdateSweetHandler(sweetService))
				r.Delete("/sweets/{id}", handlers.NewDeleteSweetHandler(sweetService))
				r.Post("/sweets/{id}/restock", handlers.NewRestockSweetHandler(sweetService))
				r.Get("/purchases/all", handlers.NewAllPurchasesHandler(purchaseService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
