package page

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-dashboard/internal/config"
	"hr-dashboard/internal/features/dataset"
	"hr-dashboard/internal/features/render"
	"hr-dashboard/internal/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type stubDatasetService struct {
	ds  *dataset.Dataset
	err error
}

func (s *stubDatasetService) Dataset(ctx context.Context) (*dataset.Dataset, error) {
	if s.ds == nil {
		return dataset.Empty(), s.err
	}
	return s.ds, s.err
}

func sampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Columns: []string{"Position", "Department", "Salary", "Absences", "State"},
		Rows: []dataset.Row{
			{"Position": dataset.String("Analyst"), "Department": dataset.String("Sales"), "Salary": dataset.Number(50000), "Absences": dataset.Number(1), "State": dataset.String("MA")},
			{"Position": dataset.String("Engineer"), "Department": dataset.String("IT/IS"), "Salary": dataset.Number(60000), "Absences": dataset.Number(3), "State": dataset.String("CT")},
		},
	}
}

func newTestApp(ds dataset.DatasetService) *fiber.App {
	cfg := &config.Config{
		DashboardTitle: "HR Dashboard",
		AboutName:      "HR Analytics Team",
		ContactEmail:   "hr@example.com",
		ChartWidth:     700,
		ChartHeight:    400,
	}
	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	controller := NewPageController(ds, render.NewRenderer(cfg), NewStaticContent(cfg), zap.NewNop())
	NewPageApi(controller).Setup(app)
	return app
}

func get(t *testing.T, app *fiber.App, target string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test(%s) error = %v", target, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET %s status = %d: %s", target, resp.StatusCode, body)
	}
	return string(body)
}

func TestDashboardDefault(t *testing.T) {
	body := get(t, newTestApp(&stubDatasetService{ds: sampleDataset()}), "/")

	if !strings.Contains(body, "<iframe") {
		t.Error("expected the chart frame")
	}
	if !strings.Contains(body, `data-title="Salary by Position"`) {
		t.Error("expected the default bar chart over Position and Salary")
	}
	if strings.Contains(body, `id="raw-data"`) {
		t.Error("raw data should be hidden by default")
	}
	for _, id := range []string{`id="home"`, `id="about"`, `id="contact"`} {
		if strings.Contains(body, id) {
			t.Errorf("static block %s should not be shown on the graphs page", id)
		}
	}
}

func TestDashboardSelection(t *testing.T) {
	body := get(t, newTestApp(&stubDatasetService{ds: sampleDataset()}), "/?chart=pie&x=Department&raw=1")

	if !strings.Contains(body, `data-title="Department Distribution"`) {
		t.Error("expected the pie chart title")
	}
	if !strings.Contains(body, `id="raw-data"`) || !strings.Contains(body, "IT/IS") {
		t.Error("expected the raw data table")
	}
}

func TestDashboardFallsBackToAllowedAxes(t *testing.T) {
	body := get(t, newTestApp(&stubDatasetService{ds: sampleDataset()}), "/?chart=Bar&x=Salary&y=Position")

	if !strings.Contains(body, `data-title="Salary by Position"`) {
		t.Error("axes outside the option set should fall back to the first options")
	}
}

func TestDashboardInvalidColumn(t *testing.T) {
	body := get(t, newTestApp(&stubDatasetService{ds: sampleDataset()}), "/?chart=Line&x=DateofHire&y=Salary")

	if !strings.Contains(body, "invalid column") {
		t.Error("expected an inline invalid column error")
	}
	if strings.Contains(body, "<iframe") {
		t.Error("no chart should be shown on a build error")
	}
}

func TestDashboardNavigation(t *testing.T) {
	app := newTestApp(&stubDatasetService{ds: sampleDataset()})

	tests := []struct {
		nav  string
		want string
	}{
		{"home", "Welcome to the HR Dashboard"},
		{"about", "HR Analytics Team"},
		{"contact", "hr@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.nav, func(t *testing.T) {
			body := get(t, app, "/?nav="+tt.nav)
			if !strings.Contains(body, tt.want) {
				t.Errorf("page for nav=%s missing %q", tt.nav, tt.want)
			}
			if !strings.Contains(body, "<iframe") {
				t.Error("the chart stays visible while a static block is shown")
			}
		})
	}
}

func TestDashboardMissingDataset(t *testing.T) {
	app := newTestApp(&stubDatasetService{err: dataset.ErrMissingSourceFile})

	body := get(t, app, "/")
	if !strings.Contains(body, "Dataset file not found") {
		t.Error("expected the inline load error")
	}
	if strings.Contains(body, `id="chart"`) {
		t.Error("chart controls should be hidden without a dataset")
	}

	body = get(t, app, "/?nav=contact")
	if !strings.Contains(body, `id="contact"`) {
		t.Error("static pages should keep working without a dataset")
	}
}

func TestDashboardEmptyDataset(t *testing.T) {
	headerOnly := &dataset.Dataset{
		Columns: []string{"Position", "Department", "Salary", "Absences", "State"},
		Rows:    []dataset.Row{},
	}

	body := get(t, newTestApp(&stubDatasetService{ds: headerOnly}), "/")
	if !strings.Contains(body, `id="notice"`) || !strings.Contains(body, "no rows") {
		t.Error("expected the inline no rows note")
	}
	if !strings.Contains(body, `id="chart"`) {
		t.Error("chart controls should stay visible for a dataset without rows")
	}
	if !strings.Contains(body, `data-title="Salary by Position"`) || !strings.Contains(body, "<iframe") {
		t.Error("expected the empty default chart")
	}
}

func TestDashboardSocketErrorKeepsFrame(t *testing.T) {
	body := get(t, newTestApp(&stubDatasetService{ds: sampleDataset()}), "/")

	if !strings.Contains(body, `id="chart-error"`) {
		t.Fatal("expected a separate element for live chart errors")
	}
	if strings.Contains(body, "area.textContent") {
		t.Error("live chart errors must not replace the chart frame")
	}
	if strings.Contains(body, `id="notice"`) {
		t.Error("no rows note should be hidden for a populated dataset")
	}
}
