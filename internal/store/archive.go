package store

import (
	"sort"
	"sync"

	"github.com/channingko-madden/weather-data/internal/weather"
)

// Archive is an in-memory store of weather records ordered by timestamp.
// Each record is keyed by its day-truncated Unix timestamp, and the keys
// are kept sorted so contiguous date ranges can be scanned in order.
//
// Writes happen while loading (or reloading) input data; queries are
// read-only. The mutex lets the serve mode's reload job swap data while
// handlers are reading.
type Archive struct {
	mu      sync.RWMutex
	records map[int64]weather.Record
	keys    []int64 // sorted ascending, mirrors the map keys
}

// NewArchive creates an empty archive.
func NewArchive() *Archive {
	return &Archive{
		records: make(map[int64]weather.Record),
	}
}

// AddData inserts a record keyed by its timestamp. A record without a
// timestamp cannot enter the archive and is ignored. Inserting at an
// existing timestamp replaces the stored record in full; fields are
// never merged across inserts.
func (a *Archive) AddData(rec weather.Record) {
	if rec.Time == nil {
		return
	}
	ts := *rec.Time

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.records[ts]; !exists {
		i := sort.Search(len(a.keys), func(i int) bool { return a.keys[i] >= ts })
		a.keys = append(a.keys, 0)
		copy(a.keys[i+1:], a.keys[i:])
		a.keys[i] = ts
	}
	a.records[ts] = rec
}

// Retrieve returns the record stored at exactly the given timestamp.
func (a *Archive) Retrieve(ts int64) (weather.Record, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rec, ok := a.records[ts]
	return rec, ok
}

// RetrieveRange returns the records with timestamps in [begin, end], in
// ascending order. Days missing from the archive are skipped, not
// filled. The result is empty when begin > end, when the archive is
// empty, or when no record exists exactly at begin: the start of the
// range must itself be present for anything to be returned.
func (a *Archive) RetrieveRange(begin, end int64) []weather.Record {
	if begin > end {
		return nil
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	i := sort.Search(len(a.keys), func(i int) bool { return a.keys[i] >= begin })
	// At least the beginning of the range needs to be present.
	if i == len(a.keys) || a.keys[i] != begin {
		return nil
	}

	var out []weather.Record
	for ; i < len(a.keys) && a.keys[i] <= end; i++ {
		out = append(out, a.records[a.keys[i]])
	}
	return out
}

// Replace atomically swaps the archive contents for the given records.
// Records without a timestamp are dropped, and later records win on
// duplicate timestamps, exactly as with repeated AddData calls.
func (a *Archive) Replace(records []weather.Record) {
	recs := make(map[int64]weather.Record, len(records))
	for _, rec := range records {
		if rec.Time == nil {
			continue
		}
		recs[*rec.Time] = rec
	}

	keys := make([]int64, 0, len(recs))
	for ts := range recs {
		keys = append(keys, ts)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	a.mu.Lock()
	a.records = recs
	a.keys = keys
	a.mu.Unlock()
}

// Len returns the number of stored records.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.keys)
}
