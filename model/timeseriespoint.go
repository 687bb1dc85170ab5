package model

// TimeSeriesPoint is one sample of a getData response after
// normalization: one timestamp with one value per declared datapoint.
// A nil value pointer represents a null sample reported by the service.
type TimeSeriesPoint struct {
	Epoch     int64
	Timestamp string
	Values    map[string]*float64
}
