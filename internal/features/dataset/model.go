package dataset

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrMissingSourceFile is reported when the dataset source does not exist.
// The loader substitutes an empty dataset instead of failing the request.
var ErrMissingSourceFile = errors.New("dataset file not found")

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindDate
)

// Value is a single scalar cell.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Time time.Time
}

func Null() Value { return Value{Kind: KindNull} }

func String(s string) Value { return Value{Kind: KindString, Str: s} }

func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

func Date(t time.Time) Value { return Value{Kind: KindDate, Time: t} }

func (v Value) IsNull() bool { return v.Kind == KindNull }

func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindNumber:
		return v.Num == o.Num
	case KindDate:
		return v.Time.Equal(o.Time)
	}
	return true
}

// ParseCell types a raw text cell: empty is null, anything that parses as a
// finite float is a number, the rest stays a string. NaN and Inf spellings
// are missing values.
func ParseCell(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Null()
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Null()
		}
		return Number(n)
	}
	return String(raw)
}

// String formats the value for labels and tables.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindDate:
		return v.Time.Format("2006-01-02")
	}
	return ""
}

// Interface returns the underlying Go value (nil, string, float64 or time.Time).
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindDate:
		return v.Time
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	// JSON has no NaN or Inf.
	if v.Kind == KindNumber && (math.IsNaN(v.Num) || math.IsInf(v.Num, 0)) {
		return []byte("null"), nil
	}
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Null()
	case float64:
		*v = Number(x)
	case string:
		if t, err := time.Parse(time.RFC3339, x); err == nil {
			*v = Date(t)
		} else {
			*v = String(x)
		}
	default:
		*v = String(string(data))
	}
	return nil
}

// Row maps a column name to its cell value.
type Row map[string]Value

// Dataset is an ordered, immutable table. Columns keep header order.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Empty returns a dataset with no schema and no rows.
func Empty() *Dataset {
	return &Dataset{Columns: []string{}, Rows: []Row{}}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// HasColumn reports whether name is part of the dataset schema.
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the values of one column in row order.
func (d *Dataset) Column(name string) []Value {
	values := make([]Value, 0, d.Len())
	if d == nil {
		return values
	}
	for _, row := range d.Rows {
		values = append(values, row[name])
	}
	return values
}
