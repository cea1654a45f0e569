package dataset

import (
	"context"

	"hr-dashboard/internal/config"
)

type DatasetService interface {
	// Dataset returns the configured dataset. A load failure yields an empty
	// dataset and the error, never a nil dataset.
	Dataset(ctx context.Context) (*Dataset, error)
}

type DatasetServiceImpl struct {
	Loader *Loader
	Config *config.Config
}

func NewDatasetService(loader *Loader, cfg *config.Config) DatasetService {
	return &DatasetServiceImpl{Loader: loader, Config: cfg}
}

func (s *DatasetServiceImpl) Dataset(ctx context.Context) (*Dataset, error) {
	if s.Config.DatasetSource == config.DatasetSourceMongo {
		return s.Loader.LoadCollection(ctx, s.Config.MongoCollection)
	}
	return s.Loader.Load(ctx, s.Config.DatasetPath)
}
