package domain

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

// List of possible order statuses
const (
	StatusDraft               OrderStatus = "draft"
	StatusSubmitted           OrderStatus = "submitted"
	StatusPending             OrderStatus = "pending"
	StatusInProduction        OrderStatus = "in_production"
	StatusPacked              OrderStatus = "packed"
	StatusPartiallyDispatched OrderStatus = "partially_dispatched"
	StatusDispatched          OrderStatus = "dispatched"
	StatusCancelled           OrderStatus = "cancelled"
)

// List of allowed statuses
var allowedStatuses = [...]OrderStatus{
	StatusDraft, StatusSubmitted, StatusPending, StatusInProduction,
	StatusPacked, StatusPartiallyDispatched, StatusDispatched, StatusCancelled,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// LineProgress is the per-line input to the status transition rule: ordered
// quantity and the new cumulative dispatched total after a save.
type LineProgress struct {
	Ordered    int64
	Dispatched int64
}

// DispatchAggregate summarizes dispatch state across all lines of an order.
type DispatchAggregate struct {
	TotalOrdered    int64
	TotalDispatched int64
	AnyDispatched   bool
	AllFull         bool
}

// AggregateDispatch folds per-line progress into a DispatchAggregate.
// AllFull requires every line's total to equal its ordered quantity and the
// order to have a positive total ordered quantity.
func AggregateDispatch(lines []LineProgress) DispatchAggregate {
	agg := DispatchAggregate{AllFull: len(lines) > 0}
	for _, l := range lines {
		agg.TotalOrdered += l.Ordered
		agg.TotalDispatched += l.Dispatched
		if l.Dispatched > 0 {
			agg.AnyDispatched = true
		}
		if l.Dispatched != l.Ordered {
			agg.AllFull = false
		}
	}
	if agg.TotalOrdered <= 0 {
		agg.AllFull = false
	}
	return agg
}

// NextStatus derives the order status after a dispatch save. The progression
// is one-way: the rule never moves dispatched/partially_dispatched back to an
// earlier stage. Manual overrides bypass this rule entirely.
func NextStatus(prev OrderStatus, agg DispatchAggregate) OrderStatus {
	switch {
	case agg.AllFull:
		return StatusDispatched
	case agg.AnyDispatched &&
		(prev == StatusPending || prev == StatusInProduction || prev == StatusPacked):
		return StatusPartiallyDispatched
	default:
		return prev
	}
}

// FulfilmentPercent returns dispatched/ordered as a percentage, 0 when the
// order has no ordered quantity.
func FulfilmentPercent(totalOrdered, totalDispatched int64) float64 {
	if totalOrdered <= 0 {
		return 0
	}
	return float64(totalDispatched) / float64(totalOrdered) * 100
}
