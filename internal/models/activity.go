package models

// Activity is one audit log entry sent to the activity logger. Object carries
// a compact snapshot of the affected record, Filter the indexed search fields.
type Activity struct {
	Message string
	Object  any
	Filter  map[string]string
}

type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
