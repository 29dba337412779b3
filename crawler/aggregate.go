package crawler

import "github.com/poiesic/qsearch/core"

// Deduplicate drops records sharing a (title, url) identity with an earlier
// record, preserving first-seen order.
func Deduplicate(records []*core.Record) []*core.Record {
	seen := make(map[core.ID]struct{}, len(records))
	unique := make([]*core.Record, 0, len(records))
	for _, record := range records {
		id := record.ContentID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, record)
	}
	return unique
}
