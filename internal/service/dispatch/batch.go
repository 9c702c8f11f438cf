package dispatch

import (
	"sort"
	"time"

	"toyworks-orders/internal/domain"
)

// GroupNotSet labels the batch of fully-dispatched lines that have no
// recorded dispatch event. It always sorts last.
const GroupNotSet = "Not set"

const dateLabelLayout = "2006-01-02"

// BatchLine is one fully-dispatched line inside a shipment batch.
type BatchLine struct {
	LineID     int64
	ItemName   string
	Dispatched int64
}

// Batch groups fully-dispatched lines sharing the same last-dispatch
// calendar date, used for shipment reporting and printing.
type Batch struct {
	DateLabel   string
	Lines       []BatchLine
	TotalPieces int64
}

// GroupBatches buckets the fully-dispatched lines of an order by the calendar
// day of each line's latest dispatch event. Groups are sorted newest first;
// lines without any event land in the GroupNotSet bucket at the end.
// Read-only: the grouping never mutates anything.
func GroupBatches(lines []domain.LineDetail, events []domain.DispatchEvent) []Batch {
	latest := make(map[int64]time.Time, len(lines))
	for _, e := range events {
		if e.DispatchedAt.After(latest[e.OrderLineID]) {
			latest[e.OrderLineID] = e.DispatchedAt
		}
	}

	groups := make(map[string][]BatchLine)
	for _, ld := range lines {
		stats := domain.ComputeLineStats(ld.Line.Qty, ld.Line.DispatchedQty)
		if stats.Ordered <= 0 || stats.Pending != 0 {
			continue
		}
		label := GroupNotSet
		if ts, ok := latest[ld.Line.ID]; ok {
			label = ts.Format(dateLabelLayout)
		}
		groups[label] = append(groups[label], BatchLine{
			LineID:     ld.Line.ID,
			ItemName:   ld.Item.Name,
			Dispatched: stats.Dispatched,
		})
	}

	labels := make([]string, 0, len(groups))
	for l := range groups {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i] == GroupNotSet {
			return false
		}
		if labels[j] == GroupNotSet {
			return true
		}
		return labels[i] > labels[j]
	})

	out := make([]Batch, 0, len(labels))
	for _, l := range labels {
		b := Batch{DateLabel: l, Lines: groups[l]}
		for _, ln := range b.Lines {
			b.TotalPieces += ln.Dispatched
		}
		out = append(out, b)
	}
	return out
}
