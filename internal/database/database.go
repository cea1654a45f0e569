package database

import (
	"context"
	"fmt"
	"time"

	"hr-dashboard/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// MongodbDB wraps the optional MongoDB dataset source. DB is nil when the
// dashboard reads its dataset from a file.
type MongodbDB struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Enabled reports whether a MongoDB connection was established.
func (m *MongodbDB) Enabled() bool {
	return m != nil && m.DB != nil
}

// NewDatabase connects to MongoDB when the dataset source is "mongo" and
// registers the disconnect hook. For file sources it returns a disabled handle.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*MongodbDB, error) {
	if cfg.DatasetSource != config.DatasetSourceMongo {
		return &MongodbDB{}, nil
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required when DATASET_SOURCE=%s", config.DatasetSourceMongo)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Info("Connected to MongoDB", zap.String("database", cfg.DBName))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("Disconnecting from MongoDB...")
			return client.Disconnect(ctx)
		},
	})

	return &MongodbDB{Client: client, DB: client.Database(cfg.DBName)}, nil
}
