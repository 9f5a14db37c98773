package weather

import (
	"math/rand"
	"time"
)

// daySeconds is one calendar day of Unix time. Day-truncated UTC
// timestamps advance by exactly this amount per day.
const daySeconds int64 = 24 * 60 * 60

// Sampler reconstructs a date range by substituting each day with the
// same calendar day from a randomly chosen donor year. It is safe for
// concurrent use: shuffles draw from the top-level auto-seeded rand
// source, so serve-mode handlers can sample in parallel. Draws are not
// reproducible across runs.
type Sampler struct {
	store Store
}

// NewSampler creates a sampler over the given store.
func NewSampler(store Store) *Sampler {
	return &Sampler{store: store}
}

// Sample walks every day in the target date range. For each day it
// shuffles the candidate years and takes the first one that has a record
// for the same month and day, so each available donor year is equally
// likely while data in any candidate year guarantees output for that
// day. The chosen record is re-stamped with the target day's timestamp.
// Days with no donor data in any candidate year are omitted.
//
// A candidate day that does not exist in a given year, like February
// 29th outside leap years, counts as a miss and the walk continues.
func (s *Sampler) Sample(dates DateRange, years YearRange) []Record {
	candidates := years.Years()

	var out []Record
	for ts := dates.Begin; ts <= dates.End; ts += daySeconds {
		day := time.Unix(ts, 0).UTC()

		// Fresh shuffle per target day: the draw is independent for
		// each day, not one draw applied across the whole range.
		rand.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		for _, year := range candidates {
			donorTs, ok := UnixForDay(year, day.Month(), day.Day())
			if !ok {
				continue
			}
			rec, ok := s.store.Retrieve(donorTs)
			if !ok {
				continue
			}

			// The output always carries the requested date, never the
			// donor year's date.
			sampled := rec.Clone()
			target := ts
			sampled.Time = &target
			out = append(out, sampled)
			break
		}
	}

	return out
}
