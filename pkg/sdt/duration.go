package sdt

import (
	"fmt"
	"time"
)

// Duration is a single-unit window length for quick downtime windows.
// Exactly one field must be non-zero.
type Duration struct {
	Minutes int
	Hours   int
	Days    int
	Weeks   int
}

func (d Duration) resolve() (time.Duration, error) {
	var span time.Duration
	set := 0
	if d.Minutes != 0 {
		set++
		span = time.Duration(d.Minutes) * time.Minute
	}
	if d.Hours != 0 {
		set++
		span = time.Duration(d.Hours) * time.Hour
	}
	if d.Days != 0 {
		set++
		span = time.Duration(d.Days) * 24 * time.Hour
	}
	if d.Weeks != 0 {
		set++
		span = time.Duration(d.Weeks) * 7 * 24 * time.Hour
	}
	if set != 1 {
		return 0, fmt.Errorf("sdt: exactly one duration unit must be set, got %d", set)
	}
	return span, nil
}

// PlanStartingNow plans a one-time window opening now (UTC) and closing
// one Duration later.
func PlanStartingNow(kind EntityKind, id string, d Duration, comment string) (*Planned, error) {
	span, err := d.resolve()
	if err != nil {
		return nil, err
	}
	start := time.Now().UTC()
	return Plan(kind, id, start, start.Add(span), comment)
}
