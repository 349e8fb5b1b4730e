// Package db defines the narrow store facade the catalog loader reads
// from. The engine itself never touches the database; the snapshot is
// loaded once at startup.
package db

import (
	"context"
	"time"
)

// Store combines the read operations the catalog source needs, plus
// lifecycle management.
type Store interface {
	Pinger
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
