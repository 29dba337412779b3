package storage

import (
	"context"

	"github.com/poiesic/qsearch/core"
)

// Repository provides common storage operations.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// RecordRepository provides operations for managing crawled records.
type RecordRepository interface {
	Repository

	// AddRecords inserts records, skipping any whose content ID already
	// exists. IDs and InsertedAt are populated on insert. Returns only the
	// records that were actually inserted.
	AddRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error)

	// GetRecord retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id core.ID) (*core.Record, error)

	// ListRecords retrieves all records in insertion order. This is the
	// database the search runs over, so ordering must be stable.
	ListRecords(ctx context.Context) ([]*core.Record, error)

	// QueryRecords retrieves records whose title or summary contains the
	// keyword as a substring, in insertion order.
	QueryRecords(ctx context.Context, keyword string) ([]*core.Record, error)

	// CountRecords returns the number of stored records.
	CountRecords(ctx context.Context) (int, error)

	// DeleteAllRecords removes every record and index entry.
	DeleteAllRecords(ctx context.Context) error
}
