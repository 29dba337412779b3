package badger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/qsearch/core"
	"github.com/poiesic/qsearch/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
type RecordRepository struct {
	backend  *Backend
	orderSeq *badger.Sequence
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(backend *Backend) (*RecordRepository, error) {
	orderSeq, err := backend.GetSequence(recordOrderSeq)
	if err != nil {
		return nil, err
	}

	return &RecordRepository{
		backend:  backend,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the order sequence.
func (r *RecordRepository) Close() error {
	return r.orderSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *RecordRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddRecords inserts records, skipping duplicates by content ID.
// Returns only the records that were actually inserted.
func (r *RecordRepository) AddRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error) {
	var inserted []*core.Record

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateRecord(record); err != nil {
				return err
			}

			record.Id = record.ContentID()
			key := makeRecordKey(record.Id)

			// A record with the same (title, url) identity is already
			// stored; inserts are idempotent.
			if _, err := tx.Get(key); err == nil {
				continue
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			if record.InsertedAt.IsZero() {
				record.InsertedAt = time.Now().UTC()
			}

			if err := tx.Set(key, storage.MarshalRecord(record)); err != nil {
				return err
			}

			seq, err := r.orderSeq.Next()
			if err != nil {
				return err
			}
			if err := tx.Set(makeOrderKey(seq), storage.MarshalID(record.Id)); err != nil {
				return err
			}

			inserted = append(inserted, record)
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

// GetRecord retrieves a single record by ID.
func (r *RecordRepository) GetRecord(ctx context.Context, id core.ID) (*core.Record, error) {
	var record *core.Record

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRecordKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListRecords retrieves all records in insertion order.
func (r *RecordRepository) ListRecords(ctx context.Context) ([]*core.Record, error) {
	return r.listWhere(nil)
}

// QueryRecords retrieves records whose title or summary contains the keyword.
func (r *RecordRepository) QueryRecords(ctx context.Context, keyword string) ([]*core.Record, error) {
	return r.listWhere(func(record *core.Record) bool {
		return strings.Contains(record.Title, keyword) ||
			strings.Contains(record.Summary, keyword)
	})
}

// listWhere walks the insertion-order index and resolves each entry to its
// record, keeping those the filter accepts (nil filter keeps everything).
func (r *RecordRepository) listWhere(keep func(*core.Record) bool) ([]*core.Record, error) {
	var records []*core.Record

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordOrderPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			item, err := tx.Get(makeRecordKey(id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				// Order entry without a record: skip rather than fail the
				// whole listing.
				continue
			}
			if err != nil {
				return err
			}

			var record *core.Record
			err = item.Value(func(val []byte) error {
				record, err = storage.UnmarshalRecord(val)
				return err
			})
			if err != nil {
				return err
			}

			if keep == nil || keep(record) {
				records = append(records, record)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// CountRecords returns the number of stored records.
func (r *RecordRepository) CountRecords(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// DeleteAllRecords removes every record and index entry.
func (r *RecordRepository) DeleteAllRecords(ctx context.Context) error {
	return r.backend.DropPrefixes(
		[]byte(recordPrefix+":"),
		[]byte(recordOrderPrefix+":"),
	)
}
