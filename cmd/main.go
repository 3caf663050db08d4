package main

import (
	"context"
	"encoding/hex"
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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-auth-service/internal/cryptox"
	"github.com/sbilibin2017/gw-auth-service/internal/handlers"
	"github.com/sbilibin2017/gw-auth-service/internal/jwt"
	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/middlewares"
	"github.com/sbilibin2017/gw-auth-service/internal/oidc"
	"github.com/sbilibin2017/gw-auth-service/internal/repositories"
	"github.com/sbilibin2017/gw-auth-service/internal/services"
	"github.com/sbilibin2017/gw-auth-service/internal/sessions"
	"github.com/sbilibin2017/gw-auth-service/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// oidcExchangeTimeout bounds the authorization-code exchange round trip.
const oidcExchangeTimeout = 10 * time.Second

// @title gw-auth-service API
// @version 1.0.0
// @description Authentication service with local credentials and federated OIDC login
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		oidcIssuer, oidcClientID, oidcClientSecret, oidcRedirectURL,
		oidcProvider, logoutReturnTo,
		jwtSecret, sessionTTLSecond,
		encryptionKeyHex,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		oidcIssuer, oidcClientID, oidcClientSecret, oidcRedirectURL,
		oidcProvider, logoutReturnTo,
		jwtSecret, sessionTTLSecond,
		encryptionKeyHex,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, OIDC, session, and encryption
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	oidcIssuer, oidcClientID, oidcClientSecret, oidcRedirectURL string,
	oidcProvider, logoutReturnTo string,
	jwtSecretKey string, sessionTTLSecond int,
	encryptionKeyHex string,
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
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config, broker is optional: without one auth events are not published
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "auth-events")

	// OIDC config
	oidcIssuer = getEnv("OIDC_ISSUER", "")
	oidcClientID = getEnv("OIDC_CLIENT_ID", "")
	oidcClientSecret = getEnv("OIDC_CLIENT_SECRET", "")
	oidcRedirectURL = getEnv("OIDC_REDIRECT_URL", "http://localhost:8080/callback")
	oidcProvider = getEnv("OIDC_PROVIDER", "auth0")
	logoutReturnTo = getEnv("OIDC_LOGOUT_RETURN_TO", "http://localhost:8080/")
	if oidcIssuer == "" || oidcClientID == "" || oidcClientSecret == "" {
		err = fmt.Errorf("OIDC_ISSUER, OIDC_CLIENT_ID and OIDC_CLIENT_SECRET are required")
		return
	}

	// Session config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "3600")); err != nil {
		return
	}

	// Field encryption config, hex-encoded 32-byte key
	encryptionKeyHex = getEnv("FIELD_ENCRYPTION_KEY", "")
	if encryptionKeyHex == "" {
		err = fmt.Errorf("FIELD_ENCRYPTION_KEY is required")
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and OIDC client,
// wires the services and handlers, and serves HTTP until shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	oidcIssuer, oidcClientID, oidcClientSecret, oidcRedirectURL string,
	oidcProvider, logoutReturnTo string,
	jwtSecretKey string, sessionTTLSecond int,
	encryptionKeyHex string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for auth events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing auth events to %s/%s", kafkaBroker, kafkaTopic)
	}

	// Field encryptor
	encryptionKey, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		logger.Log.Errorw("invalid FIELD_ENCRYPTION_KEY", "error", err)
		return err
	}
	encryptor, err := cryptox.New(encryptionKey)
	if err != nil {
		logger.Log.Errorw("failed to initialize field encryption", "error", err)
		return err
	}

	// OIDC client, fetches the provider discovery document
	oidcClient, err := oidc.New(ctx, oidcIssuer, oidcClientID, oidcClientSecret, oidcRedirectURL)
	if err != nil {
		logger.Log.Errorw("OIDC discovery failed", "error", err)
		return err
	}

	// Session manager backed by Redis with a JWT cookie
	sessionTTL := time.Duration(sessionTTLSecond) * time.Second
	tokenSvc := jwt.New(jwtSecretKey, sessionTTL)
	sessionManager := sessions.NewManager(rdb, tokenSvc, jwt.CookieName, sessionTTL)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, encryptor, kafkaWriter)
	federatedService := services.NewFederatedService(oidcClient, userReadRepo, userWriteRepo, encryptor, kafkaWriter, oidcExchangeTimeout)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)

	// Initialize handlers
	indexHandler := handlers.NewIndexHandler(sessionManager)
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, sessionManager)
	federatedLoginHandler := handlers.NewFederatedRedirectHandler(oidcClient)
	federatedSignupHandler := handlers.NewFederatedRedirectHandler(oidcClient, oidc.ScreenHintSignup)
	callbackHandler := handlers.NewCallbackHandler(federatedService, sessionManager, oidcProvider)
	logoutHandler := handlers.NewLogoutHandler(sessionManager, oidcClient, logoutReturnTo)
	completeProfileHandler := handlers.NewCompleteProfileHandler(profileService)
	getProfileHandler := handlers.NewGetProfileHandler(profileService)
	protectedHandler := handlers.NewProtectedHandler(authService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", indexHandler)
	r.Get("/login", federatedLoginHandler)
	r.Post("/login", loginHandler)
	r.Get("/register", federatedSignupHandler)
	r.Post("/register", registerHandler)
	r.Get("/callback", callbackHandler)
	r.Get("/logout", logoutHandler)

	// Protected routes behind the session gate
	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(sessionManager))
		r.Get("/protected", protectedHandler)
		r.Get("/complete_profile", getProfileHandler)
		r.Post("/complete_profile", completeProfileHandler)
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
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
