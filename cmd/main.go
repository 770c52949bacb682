package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/bloglist/docs"
	"github.com/sbilibin2017/bloglist/internal/config"
	"github.com/sbilibin2017/bloglist/internal/handlers"
	"github.com/sbilibin2017/bloglist/internal/logger"
	"github.com/sbilibin2017/bloglist/internal/middlewares"
	"github.com/sbilibin2017/bloglist/internal/migrations"
	"github.com/sbilibin2017/bloglist/internal/repositories"
	"github.com/sbilibin2017/bloglist/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title bloglist API
// @version 1.0.0
// @description Blog list CRUD service with user registration and blog statistics
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// storage bundles the repositories of the configured driver.
type storage struct {
	blogReader services.BlogReader
	blogWriter services.BlogWriter
	userReader services.UserReader
	userWriter services.UserWriter

	// writeMiddleware wraps the mutating routes; nil when the driver has no transactions.
	writeMiddleware func(http.Handler) http.Handler

	close func()
}

// openStorage connects to the configured store and prepares its schema.
func openStorage(ctx context.Context, cfg config.Config) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		logger.Log.Infof("Connecting to MongoDB: %s", cfg.Mongo.URI)

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, fmt.Errorf("MongoDB connection error: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("MongoDB ping failed: %w", err)
		}

		db := client.Database(cfg.Mongo.Database)
		blogRepo := repositories.NewBlogMongoRepository(db)
		userRepo := repositories.NewUserMongoRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("MongoDB index creation failed: %w", err)
		}

		return &storage{
			blogReader: blogRepo,
			blogWriter: blogRepo,
			userReader: userRepo,
			userWriter: userRepo,
			close:      func() { client.Disconnect(context.Background()) },
		}, nil

	case config.DriverPostgres:
		logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)

		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

		if err := migrations.Up(ctx, db.DB); err != nil {
			db.Close()
			return nil, fmt.Errorf("PostgreSQL migrations failed: %w", err)
		}

		blogRepo := repositories.NewBlogPostgresRepository(db, middlewares.GetTxFromContext)
		userRepo := repositories.NewUserPostgresRepository(db, middlewares.GetTxFromContext)

		return &storage{
			blogReader:      blogRepo,
			blogWriter:      blogRepo,
			userReader:      userRepo,
			userWriter:      userRepo,
			writeMiddleware: middlewares.TxMiddleware(db),
			close:           func() { db.Close() },
		}, nil

	case config.DriverMemory:
		logger.Log.Info("Using in-memory storage")

		blogRepo := repositories.NewBlogMemoryRepository()
		userRepo := repositories.NewUserMemoryRepository()

		return &storage{
			blogReader: blogRepo,
			blogWriter: blogRepo,
			userReader: userRepo,
			userWriter: userRepo,
			close:      func() {},
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// newRouter mounts the API routes, the heartbeat and the swagger UI.
func newRouter(
	blogService *services.BlogService,
	userService *services.UserService,
	writeMiddleware func(http.Handler) http.Handler,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Heartbeat("/ping"))
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/blogs", handlers.NewListBlogsHandler(blogService))
		r.Get("/blogs/stats", handlers.NewBlogStatsHandler(blogService))
		r.Get("/users", handlers.NewListUsersHandler(userService))

		r.Group(func(r chi.Router) {
			if writeMiddleware != nil {
				r.Use(writeMiddleware)
			}
			r.Post("/blogs", handlers.NewCreateBlogHandler(blogService))
			r.Delete("/blogs/{id}", handlers.NewDeleteBlogHandler(blogService))
			r.Put("/blogs/{id}", handlers.NewUpdateBlogHandler(blogService))
			r.Post("/users", handlers.NewRegisterHandler(userService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.NotFound(handlers.NewNotFoundHandler())
	r.MethodNotAllowed(handlers.NewNotFoundHandler())

	return r
}

// run initializes the logger, storage, Redis cache, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	var statsCache services.StatsCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		statsCache = repositories.NewStatsCacheRepository(rdb, cfg.StatsTTL())
	}

	var events services.EventWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		events = kw
	}

	blogService := services.NewBlogService(store.blogReader, store.blogWriter, statsCache, events,
		services.WithAfterCommit(middlewares.AfterCommit))
	userService := services.NewUserService(store.userReader, store.userWriter, cfg.Bcrypt.Cost)

	docs.SwaggerInfo.Host = cfg.Addr()
	r := newRouter(blogService, userService, store.writeMiddleware,
		fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr()))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
