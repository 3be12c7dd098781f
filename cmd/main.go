package main

import (
	"context"
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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/askedal/trailpack/internal/handlers"
	"github.com/askedal/trailpack/internal/jwt"
	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/middlewares"
	"github.com/askedal/trailpack/internal/repositories"
	"github.com/askedal/trailpack/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings loaded from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string

	kafkaBroker string
	kafkaTopic  string

	jwtSecretKey string
	jwtExpSecond int
}

// @title trailpack API
// @version 1.0.0
// @description Service for managing packing list projects with a public explore gallery
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "trailpack")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "trailpack.shares")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for share events; optional
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("KAFKA_BROKER not set, share events disabled")
	}

	// Initialize JWT service
	tokenExp := time.Duration(cfg.jwtExpSecond) * time.Second
	tokens := jwt.New(cfg.jwtSecretKey, tokenExp)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb, tokenExp)
	projectReadRepo := repositories.NewProjectReadRepository(db)
	projectWriteRepo := repositories.NewProjectWriteRepository(db, middlewares.GetTxFromContext)
	listReadRepo := repositories.NewListReadRepository(db)
	listWriteRepo := repositories.NewListWriteRepository(db, middlewares.GetTxFromContext)
	itemReadRepo := repositories.NewItemReadRepository(db)
	itemWriteRepo := repositories.NewItemWriteRepository(db, middlewares.GetTxFromContext)
	exploreReadRepo := repositories.NewExploreReadRepository(db)
	exploreWriteRepo := repositories.NewExploreWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, sessionRepo)
	projectService := services.NewProjectService(projectReadRepo, projectWriteRepo, listReadRepo, listWriteRepo, itemReadRepo, itemWriteRepo)
	listService := services.NewListService(projectReadRepo, listWriteRepo, itemWriteRepo)
	itemService := services.NewItemService(projectReadRepo, itemWriteRepo)
	publishService := services.NewPublishService(userReadRepo, projectReadRepo, listReadRepo, itemReadRepo, exploreWriteRepo, kafkaWriter)
	exploreService := services.NewExploreService(exploreReadRepo, exploreWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	tx := middlewares.TxMiddleware(db)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Get("/explore", handlers.NewExploreHandler(exploreService))
	r.Get("/explore/{projectID}", handlers.NewExploreDetailHandler(exploreService))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, sessionRepo))

		r.Post("/logout", handlers.NewLogoutHandler(authService, tokens))

		r.Get("/projects", handlers.NewDashboardHandler(projectService, tokens))
		r.Post("/projects", handlers.NewCreateProjectHandler(projectService, tokens))
		r.Get("/projects/{projectID}", handlers.NewProjectDetailHandler(projectService, tokens))
		r.Put("/projects/{projectID}/name", handlers.NewRenameProjectHandler(projectService, tokens))
		r.Put("/projects/{projectID}/description", handlers.NewProjectDescriptionHandler(projectService, tokens))
		r.With(tx).Delete("/projects/{projectID}", handlers.NewDeleteProjectHandler(projectService, tokens))

		r.Post("/projects/{projectID}/lists", handlers.NewCreateListHandler(listService, tokens))
		r.With(tx).Delete("/projects/{projectID}/lists/{listID}", handlers.NewDeleteListHandler(listService, tokens))

		r.Post("/projects/{projectID}/items", handlers.NewCreateItemHandler(itemService, tokens))
		r.Delete("/projects/{projectID}/items", handlers.NewDeleteItemsHandler(itemService, tokens))

		r.With(tx).Post("/projects/{projectID}/share", handlers.NewShareProjectHandler(publishService, tokens))

		r.Put("/explore/{projectID}/name", handlers.NewRenameExploreProjectHandler(exploreService, tokens))
		r.Put("/explore/{projectID}/description", handlers.NewExploreDescriptionHandler(exploreService, tokens))
		r.With(tx).Delete("/explore/{projectID}", handlers.NewDeleteExploreProjectHandler(exploreService, tokens))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
