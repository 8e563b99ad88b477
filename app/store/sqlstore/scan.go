package sqlstore

import (
	"database/sql"
	"fmt"
	"time"
)

var textTimeLayouts = []string{
	sqliteTimeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

// timeScanner reads a date column that may arrive as time.Time (Postgres) or text (SQLite).
type timeScanner struct {
	dst *time.Time
}

func timeDest(dst *time.Time) sql.Scanner {
	return timeScanner{dst: dst}
}

func (ts timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.dst = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into time.Time", src)
	}
}

func (ts timeScanner) parse(s string) error {
	for _, layout := range textTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.dst = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("sqlstore: unrecognized time %q", s)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
