package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"io"

	"hr-dashboard/internal/config"
	"hr-dashboard/internal/features/chart"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

type renderable interface {
	Render(w io.Writer) error
}

// Renderer draws chart models as standalone ECharts documents.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{Width: cfg.ChartWidth, Height: cfg.ChartHeight}
}

// Render returns a full HTML document for the model. An empty model renders
// an empty chart.
func (r *Renderer) Render(model *chart.ChartModel) ([]byte, error) {
	if model == nil {
		return nil, fmt.Errorf("nil chart model")
	}

	var c renderable
	switch model.Kind {
	case chart.KindBar:
		c = r.bar(model)
	case chart.KindLine:
		c = r.line(model)
	case chart.KindScatter:
		c = r.scatter(model)
	case chart.KindPie:
		c = r.pie(model)
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", model.Kind)
	}

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", model.Kind, err)
	}
	return buf.Bytes(), nil
}

// Display embeds a rendered document in a fixed-size frame.
func (r *Renderer) Display(markup []byte) template.HTML {
	return Display(markup, r.Width, r.Height)
}

func Display(markup []byte, width, height int) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<iframe class="chart-frame" srcdoc="%s" width="%d" height="%d" style="border:none" scrolling="no"></iframe>`,
		html.EscapeString(string(markup)), width, height,
	))
}

func (r *Renderer) globals(model *chart.ChartModel) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: model.Title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: model.Title,
			Width:     fmt.Sprintf("%dpx", r.Width),
			Height:    fmt.Sprintf("%dpx", r.Height),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func categories(model *chart.ChartModel) []string {
	out := make([]string, len(model.Categories))
	for i, v := range model.Categories {
		out[i] = v.String()
	}
	return out
}

func (r *Renderer) bar(model *chart.ChartModel) *charts.Bar {
	data := make([]opts.BarData, len(model.Series))
	for i, v := range model.Series {
		data[i] = opts.BarData{Value: v.Interface()}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(r.globals(model)...)
	bar.SetXAxis(categories(model)).AddSeries(model.SeriesName, data)
	return bar
}

func (r *Renderer) line(model *chart.ChartModel) *charts.Line {
	data := make([]opts.LineData, len(model.Series))
	for i, v := range model.Series {
		data[i] = opts.LineData{Value: v.Interface()}
	}

	var series []charts.SeriesOpts
	if model.Style.AreaOpacity > 0 {
		series = append(series, charts.WithAreaStyleOpts(opts.AreaStyle{
			Opacity: opts.Float(float32(model.Style.AreaOpacity)),
		}))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(r.globals(model)...)
	line.SetXAxis(categories(model)).AddSeries(model.SeriesName, data, series...)
	return line
}

func (r *Renderer) scatter(model *chart.ChartModel) *charts.Scatter {
	data := make([]opts.ScatterData, len(model.Series))
	for i, v := range model.Series {
		data[i] = opts.ScatterData{Value: v.Interface()}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(r.globals(model)...)
	scatter.SetXAxis(categories(model)).AddSeries(model.SeriesName, data)
	return scatter
}

func (r *Renderer) pie(model *chart.ChartModel) *charts.Pie {
	data := make([]opts.PieData, len(model.Slices))
	for i, s := range model.Slices {
		data[i] = opts.PieData{Name: s.Label, Value: s.Count}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(r.globals(model)...)
	pie.AddSeries(model.SeriesName, data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: types.FuncStr(model.Style.LabelFormatter),
		}),
	)
	return pie
}
