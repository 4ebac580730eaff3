package axfr

import "github.com/poyrazK/zonesync/internal/core/domain"

// Index is the collection of all live records discovered in one pass. It is
// built once from the per-zone parse results and consulted read-only by the
// planner; a new pass replaces it wholesale.
type Index struct {
	records []domain.Record
	byName  map[string][]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byName: make(map[string][]int)}
}

// Add appends records in order. A records are merged per zone by the parser
// before they reach the index; Add itself never merges across zones.
func (ix *Index) Add(records ...domain.Record) {
	for _, rec := range records {
		ix.byName[rec.Name] = append(ix.byName[rec.Name], len(ix.records))
		ix.records = append(ix.records, rec)
	}
}

// Match returns the first live record discovered under name, in transcript
// order, or nil if the name is not live. Matching is by name alone: a record
// whose type changed since the last pass must still be found so its old type
// can drive the delete operations.
func (ix *Index) Match(name string) *domain.Record {
	idxs, ok := ix.byName[name]
	if !ok || len(idxs) == 0 {
		return nil
	}
	return &ix.records[idxs[0]]
}

// Len reports the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.records)
}
