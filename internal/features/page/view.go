package page

import (
	"html/template"

	"hr-dashboard/internal/features/chart"
	"hr-dashboard/internal/features/dataset"
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// RawTable is the dataset flattened to display strings.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// DashboardVM is the view model of the dashboard page.
type DashboardVM struct {
	Content *StaticContent
	State   PageState

	Request      chart.ChartRequest
	ChartTypes   []Option
	XOptions     []Option
	YOptions     []Option
	PieSelected  bool
	ShowControls bool
	ShowRaw      bool

	Chart      template.HTML
	ChartTitle string
	ChartError string
	LoadError  string
	Notice     string
	Raw        *RawTable
}

func options(values []string, selected string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v, Selected: v == selected}
	}
	return out
}

func chartTypeOptions(selected chart.ChartType) []Option {
	values := make([]string, len(chart.ChartTypes))
	for i, t := range chart.ChartTypes {
		values[i] = string(t)
	}
	return options(values, string(selected))
}

func newRawTable(ds *dataset.Dataset) *RawTable {
	table := &RawTable{Columns: ds.Columns, Rows: make([][]string, 0, ds.Len())}
	for _, row := range ds.Rows {
		cells := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			cells[i] = row[col].String()
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}
