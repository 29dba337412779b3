package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the domain types. These were hand-written rather than
// generated: Record is the only persisted struct, and its layout is flat.
// Field order is part of the storage format and must not change.
var (
	IDMUS     = idMUS{}
	SourceMUS = sourceMUS{}
	RecordMUS = recordMUS{}
)

var (
	_ mus.Serializer[ID]     = IDMUS
	_ mus.Serializer[Source] = SourceMUS
	_ mus.Serializer[Record] = RecordMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type sourceMUS struct{}

func (sourceMUS) Marshal(s Source, bs []byte) int {
	return varint.Int.Marshal(int(s), bs)
}

func (sourceMUS) Unmarshal(bs []byte) (Source, int, error) {
	v, n, err := varint.Int.Unmarshal(bs)
	return Source(v), n, err
}

func (sourceMUS) Size(s Source) int {
	return varint.Int.Size(int(s))
}

func (sourceMUS) Skip(bs []byte) (int, error) {
	return varint.Int.Skip(bs)
}

// Timestamps are persisted as unix microseconds.
type timeMUS struct{}

func (timeMUS) Marshal(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func (timeMUS) Unmarshal(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v), n, nil
}

func (timeMUS) Size(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func (timeMUS) Skip(bs []byte) (int, error) {
	return varint.Int64.Skip(bs)
}

type recordMUS struct{}

func (recordMUS) Marshal(r Record, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += SourceMUS.Marshal(r.Source, bs[n:])
	n += ord.String.Marshal(r.Title, bs[n:])
	n += ord.String.Marshal(r.Summary, bs[n:])
	n += ord.String.Marshal(r.URL, bs[n:])
	n += timeMUS{}.Marshal(r.FetchedAt, bs[n:])
	n += timeMUS{}.Marshal(r.InsertedAt, bs[n:])
	return n
}

func (recordMUS) Unmarshal(bs []byte) (r Record, n int, err error) {
	var n1 int
	if r.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return r, n, err
	}
	if r.Source, n1, err = SourceMUS.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Summary, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.URL, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.FetchedAt, n1, err = (timeMUS{}).Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.InsertedAt, n1, err = (timeMUS{}).Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	return r, n, nil
}

func (recordMUS) Size(r Record) (size int) {
	size = IDMUS.Size(r.Id)
	size += SourceMUS.Size(r.Source)
	size += ord.String.Size(r.Title)
	size += ord.String.Size(r.Summary)
	size += ord.String.Size(r.URL)
	size += timeMUS{}.Size(r.FetchedAt)
	size += timeMUS{}.Size(r.InsertedAt)
	return size
}

func (recordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return n, err
	}
	if n1, err = SourceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	for range 3 {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	for range 2 {
		if n1, err = (timeMUS{}).Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}
