package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/projects-service/config"
	httpapi "github.com/GoSim-25-26J-441/projects-service/internal/api/http"
	"github.com/GoSim-25-26J-441/projects-service/internal/projects/repository"
)

// Store is an opened project store plus what the process needs to probe and close it.
type Store struct {
	Projects repository.ProjectStore
	Ping     httpapi.Pinger
	Close    func(context.Context) error
}

// OpenStore connects the backend selected by STORE_DRIVER and prepares its
// index or schema.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, err := OpenMongo(ctx, MongoOptions{
			Host:       cfg.Mongo.Host,
			Port:       cfg.Mongo.Port,
			User:       cfg.Mongo.User,
			Password:   cfg.Mongo.Password,
			AuthSource: cfg.Mongo.AuthSource,
		})
		if err != nil {
			return nil, err
		}

		repo := repository.NewMongoRepository(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		logger.Info("mongo store ready",
			zap.String("db", cfg.Mongo.Database),
			zap.String("collection", cfg.Mongo.Collection))

		return &Store{
			Projects: repo,
			Ping:     func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			Close:    client.Disconnect,
		}, nil

	case config.StorePostgres:
		db, err := OpenPostgres(ctx, DBOptions{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, err
		}

		repo := repository.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("postgres store ready")

		return &Store{
			Projects: repo,
			Ping:     db.PingContext,
			Close:    func(context.Context) error { return db.Close() },
		}, nil

	case config.StoreMemory:
		logger.Warn("using in-memory project store; data is lost on restart")
		return &Store{
			Projects: repository.NewMemoryRepository(),
			Close:    func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
