package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/catalog-service/internal/cfg"
	v1Grpc "github.com/DRSN-tech/catalog-service/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/catalog-service/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-service/internal/infrastructure/kafka"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/internal/repository/redis"
	redisConv "github.com/DRSN-tech/catalog-service/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/clients"
	"github.com/DRSN-tech/catalog-service/pkg/closer"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/DRSN-tech/catalog-service/pkg/postgres"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout    = 10 * time.Second
	startupPingTimeout = 5 * time.Second
	ensureTopicTimeout = 10 * time.Second
	sessionMaxAge      = 5 * 60
)

// App держит серверы, воркер outbox и закрываемые ресурсы.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	worker  *kafka.OutboxWorker
	closer  *closer.Closer
}

// NewApp подключается к хранилищам и собирает зависимости. При ошибке уже
// открытые ресурсы закрываются.
func NewApp(cfg *config.Config, logger logger.Logger) (app *App, err error) {
	cl := closer.NewCloser(0)
	defer func() {
		if err != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = cl.Close(ctx)
		}
	}()

	db, err := initPGDB(logger, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("postgres", db.Close)

	redisClient := clients.NewRedisClient(cfg.Redis)
	cl.Add("redis", redisClient.Close)

	redisCtx, redisCancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalogRepo := pgdb.NewCatalogRepo(db.Pool, pgdbConv.CatalogItemConverterImpl{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverterImpl{})
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.CatalogItemConverterImpl{}, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("kafka producer", producer.Close)

	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		// Топик может создаваться отдельно; воркер повторит отправку.
		logger.Warnf("failed to ensure kafka topic %s: %v", cfg.Kafka.Topic, err)
	}

	catalogUC := usecase.NewCatalogUC(
		catalogRepo,
		outboxRepo,
		cacheRepo,
		tr.NewTransactor(db.Pool),
		kafka.NewPayloadEncoder(),
		logger,
	)

	worker := kafka.NewOutboxWorker(
		outboxRepo,
		logger,
		producer,
		db.Dsn,
		pgdb.OutboxChannel,
		cfg.Kafka.OutboxBatchSize,
	)

	store := sessions.NewCookieStore([]byte(cfg.Auth.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.Env == "production",
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger, cfg, store)
	if err := router.Init(catalogUC); err != nil {
		logger.Errorf(err, "failed to initialize http router")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc, logger)
	grpcSrv.RegisterServices()

	return &App{
		cfg:     cfg,
		logger:  logger,
		httpSrv: v1Http.NewServer(r, cfg.Http),
		grpcSrv: grpcSrv,
		worker:  worker,
		closer:  cl,
	}, nil
}

// Run запускает серверы и воркер и блокируется до сигнала остановки или
// падения одного из серверов.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	a.worker.Start(workerCtx)
	a.closer.Add("outbox worker", a.worker.Stop)

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()
	a.closer.Add("http server", a.httpSrv.Stop)

	a.grpcSrv.SetServing(true)

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	a.grpcSrv.SetServing(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("Application shutdown complete")
	_ = a.logger.Sync()

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Pool.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		logger.Errorf(err, "failed to ping database")
		db.Pool.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
