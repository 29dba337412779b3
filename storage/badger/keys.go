package badger

import (
	"encoding/binary"

	"github.com/poiesic/qsearch/core"
)

// Key prefixes for different data types
const (
	recordPrefix      = "webrec"
	recordOrderPrefix = "webreco"
	recordOrderSeq    = "webrecseq"
)

// makeRecordKey generates the primary key for a record by its content ID.
func makeRecordKey(id core.ID) []byte {
	prefix := recordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeOrderKey generates a key in the insertion-order index.
// Format: prefix:seq, BigEndian so lexicographic iteration is insertion order.
func makeOrderKey(seq uint64) []byte {
	prefix := recordOrderPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}
