// pkg/db/row.go
package db

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one harvested row as returned by the driver. Drivers disagree on
// representations (lib/pq hands NUMERIC back as []byte, SQLite may hand
// timestamps back as text), so the accessors below normalise them.
type Row []any

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (r Row) at(i int) any {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}

// Int64 returns column i as an integer. ok is false for NULL or
// non-numeric values.
func (r Row) Int64(i int) (int64, bool) {
	switch v := r.at(i).(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// String returns column i as text; NULL becomes the empty string.
func (r Row) String(i int) string {
	switch v := r.at(i).(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// Time returns column i as a timestamp, or nil for NULL or unparseable text.
func (r Row) Time(i int) *time.Time {
	var text string
	switch v := r.at(i).(type) {
	case time.Time:
		return &v
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	return nil
}

// Decimal returns column i as a nullable decimal.
func (r Row) Decimal(i int) decimal.NullDecimal {
	switch v := r.at(i).(type) {
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(v))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(v))
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	default:
		return decimal.NullDecimal{}
	}
}
