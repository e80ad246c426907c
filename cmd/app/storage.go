package main

import (
	"context"
	"fmt"

	"github.com/BloggingApp/blog-store/internal/config"
	"github.com/BloggingApp/blog-store/internal/repository"
	"github.com/BloggingApp/blog-store/internal/repository/memory"
	"github.com/BloggingApp/blog-store/internal/repository/mongorepo"
	"github.com/BloggingApp/blog-store/internal/repository/postgres"
	"github.com/BloggingApp/blog-store/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// openStorage connects the configured driver. The returned func releases
// its connections. The "none" driver yields a nil Storage, which keeps the
// store on the built-in posts without persisting anything.
func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.Storage, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverMemory, "":
		return memory.New(), noop, nil

	case config.DriverNone:
		logger.Warn("storage disabled, changes to posts will not be persisted")
		return nil, noop, nil

	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			_ = rdb.Close()
			return nil, noop, fmt.Errorf("ping redis: %w", err)
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

		return redisrepo.New(rdb), func() { _ = rdb.Close() }, nil

	case config.DriverPostgres:
		db, err := postgres.DB(ctx, cfg.Postgres)
		if err != nil {
			return nil, noop, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("ping postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("migrate postgres: %w", err)
		}
		logger.Info("Successfully connected to PostgreSQL")

		return postgres.New(db), db.Close, nil

	case config.DriverMongo:
		client, err := mongorepo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, noop, fmt.Errorf("connect to mongodb: %w", err)
		}
		logger.Info("Successfully connected to MongoDB")

		return mongorepo.New(client.Database(cfg.Mongo.Database)), func() {
			_ = client.Disconnect(context.Background())
		}, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
