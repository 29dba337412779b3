package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for crawled records.
// It is derived from record content so that re-crawling the same result
// produces the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the identical ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Source identifies the search engine a record was crawled from.
type Source int

const (
	// SourceBing represents results crawled from Bing.
	SourceBing Source = iota + 1
	// SourceBaidu represents results crawled from Baidu.
	SourceBaidu
	// SourceSogou represents results crawled from Sogou.
	SourceSogou
)

// String returns the lowercase engine name for logging and CLI output.
func (s Source) String() string {
	switch s {
	case SourceBing:
		return "bing"
	case SourceBaidu:
		return "baidu"
	case SourceSogou:
		return "sogou"
	default:
		return "unknown"
	}
}

// Record represents a single crawled search result.
// Records are the items the amplitude-amplification search runs over;
// the search core only ever sees the extracted key string (the title).
type Record struct {
	Id         ID
	Source     Source
	Title      string
	Summary    string
	URL        string
	FetchedAt  time.Time // When the result was fetched from the engine
	InsertedAt time.Time // When the record was inserted into the database
}

// DedupeKey returns the identity string used for content-based IDs.
// Two records with the same title and URL are the same record, regardless
// of which engine returned them.
func (r *Record) DedupeKey() string {
	return r.Title + "|" + r.URL
}

// ContentID generates the record's content-based ID from its dedupe key.
func (r *Record) ContentID() ID {
	return IDFromContent(r.DedupeKey())
}
