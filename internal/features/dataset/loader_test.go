package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hr-dashboard/internal/config"
	"hr-dashboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestLoader() *Loader {
	return NewLoader(&database.MongodbDB{}, zap.NewNop())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoaderMissingFile(t *testing.T) {
	loader := newTestLoader()

	ds, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrMissingSourceFile) {
		t.Fatalf("Load() error = %v, want ErrMissingSourceFile", err)
	}
	if ds == nil || !ds.IsEmpty() {
		t.Errorf("Load() should return an empty dataset, got %+v", ds)
	}
}

func TestLoaderCachesPerPath(t *testing.T) {
	loader := newTestLoader()
	path := writeFile(t, "hr.csv", "Department\nSales\nIT/IS\n")

	first, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// The source is read once; later changes are not seen until restart.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	second, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if first != second {
		t.Error("Load() should return the cached dataset for the same path")
	}
	if second.Len() != 2 {
		t.Errorf("Len() = %d, want 2", second.Len())
	}
}

func TestLoaderCachesMissingResult(t *testing.T) {
	loader := newTestLoader()
	path := filepath.Join(t.TempDir(), "late.csv")

	if _, err := loader.Load(context.Background(), path); !errors.Is(err, ErrMissingSourceFile) {
		t.Fatalf("Load() error = %v, want ErrMissingSourceFile", err)
	}
	if err := os.WriteFile(path, []byte("Department\nSales\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := loader.Load(context.Background(), path); !errors.Is(err, ErrMissingSourceFile) {
		t.Errorf("Load() after file creation error = %v, want cached ErrMissingSourceFile", err)
	}
}

func TestLoaderCollectionWithoutMongo(t *testing.T) {
	loader := newTestLoader()

	ds, err := loader.LoadCollection(context.Background(), "employees")
	if err == nil {
		t.Fatal("LoadCollection() expected error without a mongo connection")
	}
	if ds == nil || !ds.IsEmpty() {
		t.Errorf("LoadCollection() should return an empty dataset, got %+v", ds)
	}
}

func TestFromDocuments(t *testing.T) {
	hired := time.Date(2011, 7, 5, 0, 0, 0, 0, time.UTC)
	docs := []bson.D{
		{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "Department", Value: "Sales"},
			{Key: "Salary", Value: int32(50000)},
			{Key: "DateofHire", Value: primitive.NewDateTimeFromTime(hired)},
		},
		{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "Department", Value: "IT/IS"},
			{Key: "Absences", Value: int64(3)},
		},
	}

	ds := fromDocuments(docs)

	wantCols := []string{"Department", "Salary", "DateofHire", "Absences"}
	if len(ds.Columns) != len(wantCols) {
		t.Fatalf("Columns = %v, want %v", ds.Columns, wantCols)
	}
	for i, c := range wantCols {
		if ds.Columns[i] != c {
			t.Errorf("Columns[%d] = %q, want %q", i, ds.Columns[i], c)
		}
	}

	if got := ds.Rows[0]["DateofHire"]; got.Kind != KindDate || !got.Time.Equal(hired) {
		t.Errorf("DateofHire = %#v, want date %v", got, hired)
	}
	if got := ds.Rows[0]["Salary"]; !got.Equal(Number(50000)) {
		t.Errorf("Salary = %#v", got)
	}
	if got := ds.Rows[1]["Salary"]; !got.IsNull() {
		t.Errorf("missing key should be null, got %#v", got)
	}
	if got := ds.Rows[0]["Absences"]; !got.IsNull() {
		t.Errorf("late key should be back-filled with null, got %#v", got)
	}
}

func TestDatasetServiceUsesConfiguredPath(t *testing.T) {
	path := writeFile(t, "hr.csv", "Department,Salary\nSales,1\n")
	svc := NewDatasetService(newTestLoader(), &config.Config{
		DatasetSource: config.DatasetSourceFile,
		DatasetPath:   path,
	})

	ds, err := svc.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset() error = %v", err)
	}
	if ds.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ds.Len())
	}
}
