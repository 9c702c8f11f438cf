package domain

// LineStats is the normalized dispatch view of one order line. Dispatched is
// always within [0, Ordered] and Pending is Ordered-Dispatched. When the raw
// stored value was missing or out of range, Clamped is set and Raw keeps the
// original value so callers can surface the data anomaly instead of losing it.
type LineStats struct {
	Ordered    int64
	Dispatched int64
	Pending    int64
	Clamped    bool
	Raw        int64
}

// ComputeLineStats normalizes a line's raw stored dispatched quantity.
// It is total: a nil value counts as 0, negatives clamp to 0 and values above
// the ordered quantity clamp down to it.
func ComputeLineStats(ordered int64, rawDispatched *int64) LineStats {
	if ordered < 0 {
		ordered = 0
	}
	stats := LineStats{Ordered: ordered}
	if rawDispatched == nil {
		stats.Pending = ordered
		return stats
	}

	raw := *rawDispatched
	dispatched := raw
	switch {
	case dispatched < 0:
		dispatched = 0
	case dispatched > ordered:
		dispatched = ordered
	}
	if dispatched != raw {
		stats.Clamped = true
		stats.Raw = raw
	}

	stats.Dispatched = dispatched
	stats.Pending = ordered - dispatched
	return stats
}

// Progress converts the stats into the transition-rule input.
func (s LineStats) Progress() LineProgress {
	return LineProgress{Ordered: s.Ordered, Dispatched: s.Dispatched}
}
