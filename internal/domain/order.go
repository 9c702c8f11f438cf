package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a dealer order with denormalized totals.
type Order struct {
	ID               int64
	Code             string
	PartyID          int64
	OrderDate        time.Time
	ExpectedDispatch *time.Time
	Status           OrderStatus
	Remarks          string
	TotalQty         int64
	TotalValue       decimal.Decimal
}

// OrderLine is one item-quantity entry within an order. Rate is the unit
// price snapshotted at order time, independent of later item-rate changes.
// DispatchedQty is the raw stored value: upstream data may leave it NULL or
// out of range, which is why readers go through LineStats.
type OrderLine struct {
	ID            int64
	OrderID       int64
	ItemID        int64
	Qty           int64
	DispatchedQty *int64
	Rate          decimal.Decimal
	Remarks       *string
}

// DispatchEvent is an immutable record of one dispatch action against a line.
// SubmissionID identifies the save operation that produced the event; a
// retried save cannot insert the same (submission, line) pair twice.
type DispatchEvent struct {
	ID           int64
	OrderLineID  int64
	SubmissionID uuid.UUID
	Qty          int64
	DispatchedAt time.Time
}

// OrderLog is an append-only audit entry for an order.
type OrderLog struct {
	ID        int64
	OrderID   int64
	Message   string
	CreatedAt time.Time
}

// LineDetail joins an order line with its item.
type LineDetail struct {
	Line OrderLine
	Item Item
}

// OrderDetail is the full read model for one order: the order, its party and
// its lines joined to their items.
type OrderDetail struct {
	Order Order
	Party Party
	Lines []LineDetail
}

// OrderFilter narrows order listings. Nil fields mean “no filter”; nil
// limit/offset return the full list.
type OrderFilter struct {
	Status  *OrderStatus
	PartyID *int64
	Limit   *int
	Offset  *int
}

// PartialOrderUpdate carries optional fields to update an order.
// A nil field means “do not change” that attribute.
type PartialOrderUpdate struct {
	ID               int64
	Status           *OrderStatus
	Remarks          *string
	ExpectedDispatch *time.Time
}
