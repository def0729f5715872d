package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog_service/config"
	"catalog_service/internal/cache"
	"catalog_service/internal/delivery"
	grpcDelivery "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"
	"catalog_service/internal/events"
	"catalog_service/internal/repository"
	"catalog_service/internal/repository/memory"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

type stores struct {
	categories  domain.CategoryRepository
	products    domain.ProductRepository
	tags        domain.TagRepository
	productTags domain.ProductTagRepository
	ping        func(ctx context.Context) error
	close       func() error
}

func main() {
	logger := setupLogger("info", "json")

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting Catalog Service...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Store ---
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize store: %v", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Errorf("Error closing store: %v", err)
		} else {
			logger.Info("Store closed.")
		}
	}()

	// --- Cache and events ---
	readCache, err := openCache(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize cache: %v", err)
	}
	defer readCache.Close()

	publisher, err := openPublisher(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize event publisher: %v", err)
	}
	defer publisher.Close()

	// --- Dependency Injection ---
	notifier := usecase.NewNotifier(readCache, publisher, logger)
	categoryUseCase := usecase.NewCategoryUseCase(st.categories, st.products, notifier, logger)
	productUseCase := usecase.NewProductUseCase(st.products, st.categories, st.tags, st.productTags, notifier, logger)
	tagUseCase := usecase.NewTagUseCase(st.tags, st.products, st.categories, st.productTags, notifier, logger, cfg.DefaultTagProductCategoryID)
	logger.Info("Use cases initialized.")

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := delivery.NewRouter(logger, delivery.Handlers{
		Category: delivery.NewCategoryHandler(categoryUseCase, logger),
		Product:  delivery.NewProductHandler(productUseCase, logger),
		Tag:      delivery.NewTagHandler(tagUseCase, logger),
		Health:   delivery.NewHealthHandler(st.ping, logger),
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Infof("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	var grpcServer *grpc.Server
	if addr := cfg.GRPCAddr(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			logger.Fatalf("Failed to listen on port %s: %v", addr, err)
		}
		grpcServer = grpcDelivery.NewServer(grpcDelivery.NewCatalogHandler(categoryUseCase, productUseCase, tagUseCase, logger), logger)
		go func() {
			logger.Infof("gRPC server listening on %s", addr)
			if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				logger.Fatalf("Failed to serve gRPC: %v", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Warn("Shutdown signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
		logger.Info("gRPC server gracefully stopped.")
	}
	logger.Info("Catalog Service shut down gracefully.")
}

func setupLogger(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

// openStores connects the configured store and makes sure the schema exists
// before any listener is started.
func openStores(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*stores, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store; data is lost on restart")
		store := memory.NewStore()
		return &stores{
			categories:  store,
			products:    store,
			tags:        store,
			productTags: store,
			ping:        store.Ping,
			close:       func() error { return nil },
		}, nil
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, err
	}
	logger.Info("Database connection established.")

	if err := db.SyncSchema(ctx, database); err != nil {
		_ = database.Close()
		return nil, err
	}
	logger.Info("Database schema synchronized.")

	return &stores{
		categories:  repository.NewPostgresCategoryRepository(database, logger),
		products:    repository.NewPostgresProductRepository(database, logger),
		tags:        repository.NewPostgresTagRepository(database, logger),
		productTags: repository.NewPostgresProductTagRepository(database, logger),
		ping:        database.PingContext,
		close:       database.Close,
	}, nil
}

func openCache(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (cache.Cache, error) {
	switch cfg.CacheDriver {
	case config.CacheDriverMemory:
		logger.Infof("Using in-memory read cache (ttl %s)", cfg.CacheTTL)
		return cache.NewMemory(cfg.CacheTTL, 5*time.Minute), nil
	case config.CacheDriverRedis:
		c, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		logger.Infof("Using redis read cache at %s (ttl %s)", cfg.RedisAddr, cfg.CacheTTL)
		return c, nil
	default:
		return cache.NewNop(), nil
	}
}

func openPublisher(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (events.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS not set; catalog events are not published")
		return events.NewNop(), nil
	}
	producer, err := events.DialKafka(ctx, cfg.KafkaBrokers, 10, 5*time.Second, logger)
	if err != nil {
		return nil, err
	}
	return events.NewKafkaPublisher(producer, cfg.KafkaTopicPrefix, logger), nil
}
