package dataset

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"hr-dashboard/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	svc := NewDatasetService(newTestLoader(), cfg)
	NewDatasetApi(NewDatasetController(svc, zap.NewNop())).Setup(app)
	return app
}

func TestDatasetControllerGet(t *testing.T) {
	path := writeFile(t, "hr.csv", "Department,Salary\nSales,50000\nIT/IS,60000\n")
	app := newTestApp(&config.Config{DatasetPath: path})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dataset", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body RawDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if body.RowCount != 2 || len(body.Rows) != 2 {
		t.Errorf("row_count = %d, rows = %d, want 2", body.RowCount, len(body.Rows))
	}
	if got := body.Rows[1]["Department"]; !got.Equal(String("IT/IS")) {
		t.Errorf("Department = %#v", got)
	}
}

func TestDatasetControllerGetNonFiniteCells(t *testing.T) {
	path := writeFile(t, "hr.csv", "Position,Salary\nA,50000\nB,NaN\nC,nan\nD,Inf\n")
	app := newTestApp(&config.Config{DatasetPath: path})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dataset", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body RawDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if body.RowCount != 4 {
		t.Fatalf("row_count = %d, want 4", body.RowCount)
	}
	for _, row := range body.Rows[1:] {
		if !row["Salary"].IsNull() {
			t.Errorf("Salary of %s = %#v, want null", row["Position"].String(), row["Salary"])
		}
	}
}

func TestDatasetControllerMissingFile(t *testing.T) {
	app := newTestApp(&config.Config{DatasetPath: filepath.Join(t.TempDir(), "none.csv")})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dataset", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}
