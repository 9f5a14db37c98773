package weather

import (
	"fmt"
	"log/slog"
	"os"
)

// Store is the contract the in-memory archive (and any future ordered
// store) must satisfy.
type Store interface {
	AddData(rec Record)
	Retrieve(ts int64) (Record, bool)
	RetrieveRange(begin, end int64) []Record
	Replace(records []Record)
	Len() int
}

// Service wires the archive to the query operations: point lookup,
// range retrieval, variable means, and historical sampling.
type Service struct {
	store   Store
	sampler *Sampler
	log     *slog.Logger
}

// NewService creates a new Service over the given store.
func NewService(store Store, log *slog.Logger) *Service {
	return &Service{
		store:   store,
		sampler: NewSampler(store),
		log:     log,
	}
}

// LoadFile reads a JSON weather data file and adds every keyed record to
// the store. Records without a date are dropped silently, matching the
// store's insert contract.
func (s *Service) LoadFile(path string) error {
	records, err := readRecords(path)
	if err != nil {
		return err
	}

	for _, rec := range records {
		s.store.AddData(rec)
	}
	s.log.Info("weather data loaded", "file", path, "parsed", len(records), "stored", s.store.Len())
	return nil
}

// ReloadFile re-reads the data file and atomically replaces the store
// contents. On error the previous contents are kept.
func (s *Service) ReloadFile(path string) error {
	records, err := readRecords(path)
	if err != nil {
		return err
	}

	s.store.Replace(records)
	s.log.Info("weather data reloaded", "file", path, "stored", s.store.Len())
	return nil
}

// readRecords reads and parses a JSON weather data file.
func readRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weather data file: %w", err)
	}
	return ParsePayload(data)
}

// Lookup returns the record for a single day, if present.
func (s *Service) Lookup(ts int64) (Record, bool) {
	return s.store.Retrieve(ts)
}

// Range returns the records within the date range, delegating the
// ordering and anchoring rules to the store.
func (s *Service) Range(dates DateRange) []Record {
	return s.store.RetrieveRange(dates.Begin, dates.End)
}

// Mean computes the mean of a measurement variable over the date range.
// It returns NaN when nothing in the range carries the variable or the
// variable is unrecognized.
func (s *Service) Mean(dates DateRange, variable string) float64 {
	return Mean(s.Range(dates), variable, s.log)
}

// SampleHistory samples each day of the date range from a random donor
// year within the year range.
func (s *Service) SampleHistory(dates DateRange, years YearRange) []Record {
	return s.sampler.Sample(dates, years)
}
