package weather

import (
	"log/slog"
	"math"
)

// Mean computes the arithmetic mean of one measurement variable across
// the given records. Records missing the variable are logged and skipped
// rather than aborting the computation. The result is NaN when the
// variable name is unrecognized or when no record contributes a value.
func Mean(records []Record, variable string, log *slog.Logger) float64 {
	if !KnownVariable(variable) {
		return math.NaN()
	}

	var sum float64
	var count int
	for _, rec := range records {
		v, ok := rec.Variable(variable)
		if !ok {
			if rec.Time != nil {
				log.Warn("record missing variable, ignored for mean",
					"date", UnixToDate(*rec.Time),
					"variable", variable)
			}
			continue
		}
		sum += v
		count++
	}

	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}
