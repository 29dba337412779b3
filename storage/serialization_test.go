package storage

import (
	"testing"
	"time"

	"github.com/poiesic/qsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("Go|https://go.dev")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name   string
		record *core.Record
	}{
		{
			name: "full record",
			record: &core.Record{
				Id:         core.IDFromContent("Go|https://go.dev"),
				Source:     core.SourceBing,
				Title:      "The Go Programming Language",
				Summary:    "Build simple, secure, scalable systems with Go",
				URL:        "https://go.dev",
				FetchedAt:  now.Add(-time.Minute),
				InsertedAt: now,
			},
		},
		{
			name: "no summary",
			record: &core.Record{
				Id:        core.ID(7),
				Source:    core.SourceSogou,
				Title:     "搜狗搜索",
				URL:       "https://www.sogou.com",
				FetchedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalRecord(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalRecord(data)
			require.NoError(t, err)

			assert.Equal(t, tt.record.Id, decoded.Id)
			assert.Equal(t, tt.record.Source, decoded.Source)
			assert.Equal(t, tt.record.Title, decoded.Title)
			assert.Equal(t, tt.record.Summary, decoded.Summary)
			assert.Equal(t, tt.record.URL, decoded.URL)
			assert.True(t, tt.record.FetchedAt.Equal(decoded.FetchedAt),
				"FetchedAt: want %v, got %v", tt.record.FetchedAt, decoded.FetchedAt)
			assert.True(t, tt.record.InsertedAt.Equal(decoded.InsertedAt),
				"InsertedAt: want %v, got %v", tt.record.InsertedAt, decoded.InsertedAt)
		})
	}
}

func TestUnmarshalRecord_Truncated(t *testing.T) {
	record := &core.Record{
		Id:     core.ID(1),
		Source: core.SourceBing,
		Title:  "truncate me",
		URL:    "https://example.com",
	}
	data := MarshalRecord(record)

	_, err := UnmarshalRecord(data[:len(data)/2])
	assert.Error(t, err)
}
