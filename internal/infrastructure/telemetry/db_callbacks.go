package telemetry

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

const queryStartTimeKey contextKey = "otel_query_start_time"

type gormRegisterer interface {
	Register(name string, fn func(*gorm.DB)) error
}

// registerAround attaches before and after to every gorm processor.
// prefix keeps callback names unique per plugin.
func registerAround(db *gorm.DB, prefix string, before func(*gorm.DB), after func(db *gorm.DB, operation string)) error {
	cb := db.Callback()
	processors := []struct {
		operation string
		target    string
		before    func(string) gormRegisterer
		after     func(string) gormRegisterer
	}{
		{"create", "gorm:create", func(n string) gormRegisterer { return cb.Create().Before(n) }, func(n string) gormRegisterer { return cb.Create().After(n) }},
		{"query", "gorm:query", func(n string) gormRegisterer { return cb.Query().Before(n) }, func(n string) gormRegisterer { return cb.Query().After(n) }},
		{"update", "gorm:update", func(n string) gormRegisterer { return cb.Update().Before(n) }, func(n string) gormRegisterer { return cb.Update().After(n) }},
		{"delete", "gorm:delete", func(n string) gormRegisterer { return cb.Delete().Before(n) }, func(n string) gormRegisterer { return cb.Delete().After(n) }},
		{"row", "gorm:row", func(n string) gormRegisterer { return cb.Row().Before(n) }, func(n string) gormRegisterer { return cb.Row().After(n) }},
		{"raw", "gorm:raw", func(n string) gormRegisterer { return cb.Raw().Before(n) }, func(n string) gormRegisterer { return cb.Raw().After(n) }},
	}

	for _, p := range processors {
		operation := p.operation
		if before != nil {
			if err := p.before(p.target).Register(prefix+":before_"+operation, before); err != nil {
				return err
			}
		}
		if after != nil {
			if err := p.after(p.target).Register(prefix+":after_"+operation, func(db *gorm.DB) { after(db, operation) }); err != nil {
				return err
			}
		}
	}
	return nil
}

// markQueryStart stores the statement start time in its context
func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartTimeKey, time.Now())
	}
}

// queryElapsed reports the time since markQueryStart ran for the statement
func queryElapsed(db *gorm.DB) (time.Duration, bool) {
	if db.Statement.Context == nil {
		return 0, false
	}
	start, ok := db.Statement.Context.Value(queryStartTimeKey).(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(start), true
}
