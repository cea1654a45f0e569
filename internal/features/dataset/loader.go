package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"hr-dashboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type loadResult struct {
	ds  *Dataset
	err error
}

// Loader reads datasets and memoizes the result per source for the lifetime
// of the process. A missing source is memoized too; restart to pick up a new file.
type Loader struct {
	mu    sync.Mutex
	cache map[string]loadResult

	mongo *database.MongodbDB
	log   *zap.Logger
}

func NewLoader(mongodb *database.MongodbDB, log *zap.Logger) *Loader {
	return &Loader{
		cache: make(map[string]loadResult),
		mongo: mongodb,
		log:   log,
	}
}

// Load returns the dataset stored at path. On a missing file it returns an
// empty dataset together with an error wrapping ErrMissingSourceFile.
func (l *Loader) Load(ctx context.Context, path string) (*Dataset, error) {
	return l.memo("file:"+path, func() (*Dataset, error) {
		return readFile(path)
	})
}

// LoadCollection returns the dataset stored in a MongoDB collection.
func (l *Loader) LoadCollection(ctx context.Context, name string) (*Dataset, error) {
	return l.memo("mongo:"+name, func() (*Dataset, error) {
		if !l.mongo.Enabled() {
			return Empty(), errors.New("mongo dataset source is not configured")
		}
		return l.readCollection(ctx, name)
	})
}

func (l *Loader) memo(key string, read func() (*Dataset, error)) (*Dataset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if res, ok := l.cache[key]; ok {
		return res.ds, res.err
	}

	start := time.Now()
	ds, err := read()
	if ds == nil {
		ds = Empty()
	}
	l.cache[key] = loadResult{ds: ds, err: err}

	if err != nil {
		l.log.Error("dataset load failed", zap.String("source", key), zap.Error(err))
	} else {
		l.log.Info("dataset loaded",
			zap.String("source", key),
			zap.Int("rows", ds.Len()),
			zap.Int("columns", len(ds.Columns)),
			zap.Duration("took", time.Since(start)),
		)
	}
	return ds, err
}

func readFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), fmt.Errorf("%w: %s", ErrMissingSourceFile, path)
		}
		return Empty(), fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ParseExcel(f)
	default:
		return ParseCSV(f)
	}
}

func (l *Loader) readCollection(ctx context.Context, name string) (*Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := l.mongo.DB.Collection(name).Find(ctx, bson.D{})
	if err != nil {
		return Empty(), fmt.Errorf("failed to query collection %s: %w", name, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return Empty(), fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	if len(docs) == 0 {
		return Empty(), fmt.Errorf("%w: collection %s has no documents", ErrMissingSourceFile, name)
	}
	return fromDocuments(docs), nil
}

// fromDocuments converts documents to rows. Columns follow the key order of
// the first document; keys first seen later are appended. _id is dropped.
func fromDocuments(docs []bson.D) *Dataset {
	ds := &Dataset{Columns: []string{}, Rows: make([]Row, 0, len(docs))}
	seen := make(map[string]bool)

	for _, doc := range docs {
		row := make(Row, len(doc))
		for _, elem := range doc {
			if elem.Key == "_id" {
				continue
			}
			if !seen[elem.Key] {
				seen[elem.Key] = true
				ds.Columns = append(ds.Columns, elem.Key)
			}
			row[elem.Key] = fromBSON(elem.Value)
		}
		ds.Rows = append(ds.Rows, row)
	}

	for _, row := range ds.Rows {
		for _, col := range ds.Columns {
			if _, ok := row[col]; !ok {
				row[col] = Null()
			}
		}
	}
	return ds
}

func fromBSON(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case string:
		return String(x)
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Null()
		}
		return Number(x)
	case primitive.DateTime:
		return Date(x.Time().UTC())
	case time.Time:
		return Date(x)
	default:
		return String(fmt.Sprint(x))
	}
}
