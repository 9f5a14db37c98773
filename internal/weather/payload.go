package weather

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// recordPayload is the wire schema of a single weather observation.
// Measurement fields reuse the canonical variable names.
type recordPayload struct {
	Date     *string  `json:"date,omitempty"`
	MaxTemp  *float64 `json:"tmax,omitempty"`
	MinTemp  *float64 `json:"tmin,omitempty"`
	MeanTemp *float64 `json:"tmean,omitempty"`
	GasPPT   *float64 `json:"ppt,omitempty"`
}

// MarshalJSON encodes the record with its timestamp rendered as a
// YYYY-MM-DD date string. Absent fields are omitted.
func (r Record) MarshalJSON() ([]byte, error) {
	p := recordPayload{
		MaxTemp:  r.MaxTemp,
		MinTemp:  r.MinTemp,
		MeanTemp: r.MeanTemp,
		GasPPT:   r.GasPPT,
	}
	if r.Time != nil {
		d := UnixToDate(*r.Time)
		p.Date = &d
	}
	return json.Marshal(p)
}

// UnmarshalJSON decodes a weather observation object. A missing or
// non-conforming date value leaves the record without a timestamp; the
// archive drops such records on insert.
func (r *Record) UnmarshalJSON(data []byte) error {
	var p recordPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*r = Record{
		MaxTemp:  p.MaxTemp,
		MinTemp:  p.MinTemp,
		MeanTemp: p.MeanTemp,
		GasPPT:   p.GasPPT,
	}
	if p.Date != nil {
		if ts, ok := DateToUnix(*p.Date); ok {
			r.Time = &ts
		}
	}
	return nil
}

// ParsePayload decodes a weather data payload, which is either a single
// observation object or an array of them.
func ParsePayload(data []byte) ([]Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("parse weather payload: empty input")
	}

	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parse weather payload: %w", err)
		}
		return records, nil
	}

	var rec Record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return nil, fmt.Errorf("parse weather payload: %w", err)
	}
	return []Record{rec}, nil
}

// EncodePayload renders records as an indented JSON array, the format
// the CLI prints to stdout.
func EncodePayload(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}
