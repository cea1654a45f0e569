package chart

import (
	"context"
	"fmt"

	"hr-dashboard/internal/features/dataset"
)

// Renderer turns a chart model into embeddable markup.
type Renderer interface {
	Render(model *ChartModel) ([]byte, error)
}

type ChartService interface {
	Types() []ChartType
	Axes(chartType string) (AxisOptions, error)
	// Model validates req against the axis table and builds it over the loaded dataset.
	Model(ctx context.Context, req ChartRequest) (*ChartModel, error)
	Render(ctx context.Context, req ChartRequest) (*RenderedChart, error)
}

type ChartServiceImpl struct {
	DatasetService dataset.DatasetService
	Renderer       Renderer
}

func NewChartService(datasetService dataset.DatasetService, renderer Renderer) ChartService {
	return &ChartServiceImpl{
		DatasetService: datasetService,
		Renderer:       renderer,
	}
}

func (s *ChartServiceImpl) Types() []ChartType {
	return append([]ChartType(nil), ChartTypes...)
}

func (s *ChartServiceImpl) Axes(chartType string) (AxisOptions, error) {
	t, err := ParseChartType(chartType)
	if err != nil {
		return AxisOptions{}, err
	}
	return AllowedAxes(t)
}

func (s *ChartServiceImpl) Model(ctx context.Context, req ChartRequest) (*ChartModel, error) {
	t, err := ParseChartType(string(req.ChartType))
	if err != nil {
		return nil, err
	}
	req.ChartType = t

	req, err = Validate(req)
	if err != nil {
		return nil, err
	}

	ds, err := s.DatasetService.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}

	return Build(ds, req.ChartType, req.XColumn, req.YColumn)
}

func (s *ChartServiceImpl) Render(ctx context.Context, req ChartRequest) (*RenderedChart, error) {
	model, err := s.Model(ctx, req)
	if err != nil {
		return nil, err
	}

	markup, err := s.Renderer.Render(model)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return &RenderedChart{Model: model, Markup: string(markup)}, nil
}
