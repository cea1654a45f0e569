package chart

import (
	"fmt"
	"sort"

	"hr-dashboard/internal/features/dataset"
)

// Build turns the rows of ds into a chart model for one chart type and pair
// of columns. The axis table is not consulted here; see Validate and Normalize.
// A dataset without a schema builds an empty model.
func Build(ds *dataset.Dataset, chartType ChartType, xColumn, yColumn string) (*ChartModel, error) {
	if _, ok := axisTable[chartType]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChartType, chartType)
	}

	if ds != nil && len(ds.Columns) > 0 {
		if !ds.HasColumn(xColumn) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, xColumn)
		}
		if chartType != ChartTypePie && !ds.HasColumn(yColumn) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, yColumn)
		}
	}

	switch chartType {
	case ChartTypePie:
		return buildPie(ds, xColumn), nil
	case ChartTypeBar:
		return buildXY(ds, KindBar, fmt.Sprintf("%s by %s", yColumn, xColumn), xColumn, yColumn), nil
	case ChartTypeScatter:
		return buildXY(ds, KindScatter, fmt.Sprintf("%s by %s", yColumn, xColumn), xColumn, yColumn), nil
	case ChartTypeLine:
		return buildXY(ds, KindLine, fmt.Sprintf("%s by %s Over Time", yColumn, xColumn), xColumn, yColumn), nil
	default:
		model := buildXY(ds, KindLine, fmt.Sprintf("%s by %s Over Time", yColumn, xColumn), xColumn, yColumn)
		model.Style.AreaOpacity = areaOpacity
		return model, nil
	}
}

// buildXY keeps both axes row-aligned: no dedup, no sort, no coercion.
func buildXY(ds *dataset.Dataset, kind Kind, title, xColumn, yColumn string) *ChartModel {
	return &ChartModel{
		Kind:       kind,
		Title:      title,
		SeriesName: yColumn,
		Categories: ds.Column(xColumn),
		Series:     ds.Column(yColumn),
	}
}

// buildPie counts rows per distinct X label. Slices are ordered by count,
// highest first; equal counts keep first-seen order. Null cells are counted
// under the empty label so the counts always add up to the row count.
func buildPie(ds *dataset.Dataset, xColumn string) *ChartModel {
	type group struct {
		value dataset.Value
		count int
	}

	// Values of different kinds that print alike stay apart.
	type key struct {
		kind  dataset.Kind
		label string
	}

	var groups []*group
	byKey := make(map[key]*group)
	for _, v := range ds.Column(xColumn) {
		k := key{kind: v.Kind, label: v.String()}
		g, ok := byKey[k]
		if !ok {
			g = &group{value: v}
			byKey[k] = g
			groups = append(groups, g)
		}
		g.count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	model := &ChartModel{
		Kind:       KindPie,
		Title:      fmt.Sprintf("%s Distribution", xColumn),
		SeriesName: CountColumn,
		Categories: make([]dataset.Value, 0, len(groups)),
		Series:     make([]dataset.Value, 0, len(groups)),
		Slices:     make([]Slice, 0, len(groups)),
		Style:      Style{LabelFormatter: pieLabelFormatter},
	}
	for _, g := range groups {
		model.Categories = append(model.Categories, g.value)
		model.Series = append(model.Series, dataset.Number(float64(g.count)))
		model.Slices = append(model.Slices, Slice{Label: g.value.String(), Count: g.count})
	}
	return model
}
