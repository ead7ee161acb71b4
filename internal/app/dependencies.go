package app

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/MOWLI17/luxora-sub001/internal/catalog"
	"github.com/MOWLI17/luxora-sub001/internal/domain"
	healthcheck "github.com/MOWLI17/luxora-sub001/internal/health"
	"github.com/MOWLI17/luxora-sub001/internal/ledger"
	"github.com/MOWLI17/luxora-sub001/internal/messaging/kafka"
	"github.com/MOWLI17/luxora-sub001/internal/metrics"
	"github.com/MOWLI17/luxora-sub001/internal/storage/memory"
	"github.com/MOWLI17/luxora-sub001/internal/storage/postgres"
	"github.com/MOWLI17/luxora-sub001/internal/storage/redis"
	"github.com/MOWLI17/luxora-sub001/internal/version"
)

// Dependencies содержит собранные зависимости приложения.
type Dependencies struct {
	Logger *log.Entry

	BlobStore     domain.BlobStore
	ProductSource domain.ProductSource
	Ledger        *ledger.Ledger
	Engine        *catalog.Engine
	Health        *healthcheck.Handler

	kafkaProducer *kafka.Producer
	redisClient   *goredis.Client
	pgStore       *postgres.Store
}

// NewDependencies подключает бэкенды по конфигурации. Каждый бэкенд
// опционален: при пустом адресе или недоступности компонент деградирует
// до in-memory реализации, о чём пишется warning.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{
		Logger: logger,
		Health: healthcheck.NewHandler(version.GetVersion()),
	}

	deps.initBlobStore(ctx, cfg)
	deps.initProductSource(ctx, cfg)

	var publisher domain.EventPublisher
	producer, err := initKafkaProducer(cfg.Kafka.Brokers, logger)
	if producer != nil && err == nil {
		deps.kafkaProducer = producer
		publisher = producer
	}

	m := metrics.NewLedgerMetrics()
	deps.Ledger = ledger.New(deps.BlobStore, cfg.Ledger.Key, publisher, m, logger.WithField("component", "order-ledger"))
	deps.Engine = catalog.NewEngine(deps.ProductSource, logger.WithField("component", "catalog-engine"))

	return deps
}

// initBlobStore подключает Redis или падает обратно в память.
func (d *Dependencies) initBlobStore(ctx context.Context, cfg Config) {
	if cfg.Redis.Addr == "" {
		d.Logger.Info("redis addr is empty, using in-memory blob store")
		d.BlobStore = memory.NewBlobStore()
		return
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := redis.NewBlobStore(client, cfg.Ledger.TTL)

	if err := store.Ping(ctx); err != nil {
		d.Logger.WithError(err).Warn("redis is unreachable, falling back to in-memory blob store")
		_ = client.Close()
		d.BlobStore = memory.NewBlobStore()
		return
	}

	d.Logger.WithField("addr", cfg.Redis.Addr).Info("redis blob store initialized")
	d.redisClient = client
	d.BlobStore = store
	d.Health.Register("redis", store.Ping)
}

// initProductSource подключает PostgreSQL или поднимает демо-каталог в памяти.
func (d *Dependencies) initProductSource(ctx context.Context, cfg Config) {
	if cfg.Postgres.DSN == "" {
		d.Logger.Info("postgres dsn is empty, using in-memory demo catalog")
		d.ProductSource = memory.NewProductSource(catalog.DemoProducts())
		return
	}

	store, err := postgres.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		d.Logger.WithError(err).Warn("postgres is unreachable, falling back to in-memory demo catalog")
		d.ProductSource = memory.NewProductSource(catalog.DemoProducts())
		return
	}

	d.Logger.Info("postgres product source initialized")
	d.pgStore = store
	d.ProductSource = postgres.NewProductSource(store)
	d.Health.Register("postgres", store.Ping)
}

// Close освобождает подключения в обратном порядке инициализации.
func (d *Dependencies) Close() {
	closeKafka(d.kafkaProducer, d.Logger)

	if d.pgStore != nil {
		if err := d.pgStore.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close postgres store")
		}
	}
	if d.redisClient != nil {
		if err := d.redisClient.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close redis client")
		}
	}
}
