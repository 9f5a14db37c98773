package weather

// Variable names accepted by the mean query. They double as the JSON
// field names of a weather payload.
const (
	VarMaxTemp  = "tmax"
	VarMinTemp  = "tmin"
	VarMeanTemp = "tmean"
	VarGasPPT   = "ppt"
)

// Variables lists every recognized measurement variable.
var Variables = []string{VarMaxTemp, VarMinTemp, VarMeanTemp, VarGasPPT}

// KnownVariable reports whether name is one of the recognized
// measurement variables.
func KnownVariable(name string) bool {
	for _, v := range Variables {
		if v == name {
			return true
		}
	}
	return false
}

// Record is a single daily weather observation. Every field is optional:
// a nil pointer means the measurement (or the timestamp) was absent from
// the input, which is distinct from a measured zero.
type Record struct {
	// Time is the observation day as Unix seconds, truncated to
	// 00:00:00 UTC of that day. A record without a Time cannot be
	// stored in an archive.
	Time *int64

	// MaxTemp is the maximum daily temperature in Celsius.
	MaxTemp *float64

	// MinTemp is the minimum daily temperature in Celsius.
	MinTemp *float64

	// MeanTemp is the mean daily temperature in Celsius.
	MeanTemp *float64

	// GasPPT is the atmospheric gas concentration in parts per trillion.
	GasPPT *float64
}

// Equal reports structural equality: each field must be present in both
// records with the same value, or absent in both.
func (r Record) Equal(other Record) bool {
	return eqInt64(r.Time, other.Time) &&
		eqFloat64(r.MaxTemp, other.MaxTemp) &&
		eqFloat64(r.MinTemp, other.MinTemp) &&
		eqFloat64(r.MeanTemp, other.MeanTemp) &&
		eqFloat64(r.GasPPT, other.GasPPT)
}

// Clone returns a deep copy of the record. Pointer targets are copied so
// mutating the clone never aliases the original.
func (r Record) Clone() Record {
	var c Record
	if r.Time != nil {
		t := *r.Time
		c.Time = &t
	}
	c.MaxTemp = cloneFloat64(r.MaxTemp)
	c.MinTemp = cloneFloat64(r.MinTemp)
	c.MeanTemp = cloneFloat64(r.MeanTemp)
	c.GasPPT = cloneFloat64(r.GasPPT)
	return c
}

// Variable returns the value of the named measurement variable and
// whether it is present. Unknown names report absent.
func (r Record) Variable(name string) (float64, bool) {
	var p *float64
	switch name {
	case VarMaxTemp:
		p = r.MaxTemp
	case VarMinTemp:
		p = r.MinTemp
	case VarMeanTemp:
		p = r.MeanTemp
	case VarGasPPT:
		p = r.GasPPT
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

func eqInt64(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqFloat64(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneFloat64(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
