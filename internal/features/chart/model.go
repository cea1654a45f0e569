package chart

import (
	"errors"
	"fmt"
	"strings"

	"hr-dashboard/internal/features/dataset"
)

var (
	// ErrInvalidColumn is returned when a requested axis is not a column of the dataset.
	ErrInvalidColumn    = errors.New("invalid column")
	ErrUnknownChartType = errors.New("unknown chart type")
	// ErrAxisNotAllowed is returned when an axis is outside the option set of its chart type.
	ErrAxisNotAllowed = errors.New("axis not allowed for chart type")
	// ErrDatasetUnavailable wraps dataset load failures seen while building a chart.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)

type ChartType string

const (
	ChartTypeBar     ChartType = "Bar"
	ChartTypePie     ChartType = "Pie"
	ChartTypeLine    ChartType = "Line"
	ChartTypeScatter ChartType = "Scatter"
	ChartTypeArea    ChartType = "Area"
)

// ChartTypes lists the chart types in the order the sidebar offers them.
var ChartTypes = []ChartType{
	ChartTypeBar,
	ChartTypePie,
	ChartTypeLine,
	ChartTypeScatter,
	ChartTypeArea,
}

// ParseChartType matches s against the known chart types, ignoring case.
func ParseChartType(s string) (ChartType, error) {
	for _, t := range ChartTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChartType, s)
}

// CountColumn is the derived Y axis of a pie chart.
const CountColumn = "Count"

const areaOpacity = 0.5

const pieLabelFormatter = "{b}: {c}"

type ChartRequest struct {
	ChartType ChartType `json:"chart_type"`
	XColumn   string    `json:"x_column"`
	YColumn   string    `json:"y_column,omitempty"`
}

// Kind is the drawing primitive a renderer uses for a model.
type Kind string

const (
	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindPie     Kind = "pie"
)

type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Style struct {
	AreaOpacity    float64 `json:"area_opacity,omitempty"`
	LabelFormatter string  `json:"label_formatter,omitempty"`
}

// ChartModel is the renderer-neutral description of one chart.
// For pie charts Categories holds the distinct labels, Series the matching
// counts and Slices the (label, count) pairs.
type ChartModel struct {
	Kind       Kind            `json:"kind"`
	Title      string          `json:"title"`
	SeriesName string          `json:"series_name"`
	Categories []dataset.Value `json:"categories"`
	Series     []dataset.Value `json:"series"`
	Slices     []Slice         `json:"slices,omitempty"`
	Style      Style           `json:"style"`
}

// RenderedChart pairs a model with its embeddable markup.
type RenderedChart struct {
	Model  *ChartModel `json:"model"`
	Markup string      `json:"markup"`
}
