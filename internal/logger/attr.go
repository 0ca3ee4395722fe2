package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Key creates an attribute for a cache key.
func Key(key any) slog.Attr {
	if key == nil {
		return slog.Attr{}
	}
	return slog.Any("key", key)
}

// Evicted creates an attribute for the key dropped by an eviction.
func Evicted(key any) slog.Attr {
	if key == nil {
		return slog.Attr{}
	}
	return slog.Any("evicted", key)
}

// Op creates an attribute for the cache operation name.
func Op(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("op", name)
}

// Size creates an attribute for the current entry count.
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Capacity creates an attribute for the cache capacity.
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Line creates an attribute for a 1-based script line number.
func Line(n int) slog.Attr {
	if n <= 0 {
		return slog.Attr{}
	}
	return slog.Int("line", n)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
