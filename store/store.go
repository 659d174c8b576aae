// Package store persists genome snapshots. Persistence is an external
// concern for the genome core; drivers that want durable runs archive
// snapshots here and rebuild genomes from them later.
package store

import "context"

// Store defines persistence operations for genome snapshots.
type Store interface {
	Init(ctx context.Context) error
	SaveSnapshot(ctx context.Context, snapshot Snapshot) error
	GetSnapshot(ctx context.Context, id string) (Snapshot, bool, error)
	ListRun(ctx context.Context, runID string) ([]Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error
}
