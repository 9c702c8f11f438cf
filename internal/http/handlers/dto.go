package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"toyworks-orders/internal/domain"
)

type orderDTO struct {
	ID               int64              `json:"id"`
	Code             string             `json:"code"`
	PartyID          int64              `json:"party_id"`
	OrderDate        time.Time          `json:"order_date"`
	ExpectedDispatch *time.Time         `json:"expected_dispatch_date,omitempty"`
	Status           domain.OrderStatus `json:"status"`
	Remarks          string             `json:"remarks,omitempty"`
	TotalQty         int64              `json:"total_qty"`
	TotalValue       decimal.Decimal    `json:"total_value"`
}

type lineDTO struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Qty        int64           `json:"qty"`
	Dispatched int64           `json:"dispatched"`
	Pending    int64           `json:"pending"`
	Clamped    bool            `json:"clamped,omitempty"`
	Rate       decimal.Decimal `json:"rate"`
	Note       *string         `json:"note,omitempty"`
}

type partyDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Phone       string `json:"phone,omitempty"`
	CreditTerms string `json:"credit_terms,omitempty"`
	Active      bool   `json:"active"`
}

type itemDTO struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Category   domain.ItemCategory `json:"category"`
	Unit       string              `json:"unit"`
	DealerRate decimal.Decimal     `json:"dealer_rate"`
	Active     bool                `json:"active"`
}

type orderDetailDTO struct {
	orderDTO
	Party partyDTO  `json:"party"`
	Lines []lineDTO `json:"lines"`
}

type logDTO struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type eventDTO struct {
	ID           int64     `json:"id"`
	LineID       int64     `json:"line_id"`
	SubmissionID uuid.UUID `json:"submission_id"`
	Qty          int64     `json:"qty"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

type batchLineDTO struct {
	LineID     int64  `json:"line_id"`
	ItemName   string `json:"item_name"`
	Dispatched int64  `json:"dispatched"`
}

type batchDTO struct {
	Date        string         `json:"date"`
	Lines       []batchLineDTO `json:"lines"`
	TotalPieces int64          `json:"total_pieces"`
}

type summaryDTO struct {
	OrderID           int64              `json:"order_id"`
	Status            domain.OrderStatus `json:"status"`
	TotalOrdered      int64              `json:"total_ordered"`
	TotalDispatched   int64              `json:"total_dispatched"`
	FulfilmentPercent float64            `json:"fulfilment_percent"`
	Batches           []batchDTO         `json:"batches"`
}

type punchLineRequest struct {
	ItemID int64            `json:"item_id"`
	Qty    int64            `json:"qty"`
	Rate   *decimal.Decimal `json:"rate,omitempty"`
	Note   *string          `json:"note,omitempty"`
}

type punchOrderRequest struct {
	PartyID          int64              `json:"party_id"`
	Code             string             `json:"code,omitempty"`
	OrderDate        *time.Time         `json:"order_date,omitempty"`
	ExpectedDispatch *time.Time         `json:"expected_dispatch_date,omitempty"`
	Remarks          string             `json:"remarks,omitempty"`
	Lines            []punchLineRequest `json:"lines"`
}

type updateOrderRequest struct {
	Status           *domain.OrderStatus `json:"status,omitempty"`
	Remarks          *string             `json:"remarks,omitempty"`
	ExpectedDispatch *time.Time          `json:"expected_dispatch_date,omitempty"`
}

type dispatchLineRequest struct {
	LineID int64   `json:"line_id"`
	Qty    string  `json:"qty"`
	Note   *string `json:"note,omitempty"`
}

type dispatchRequest struct {
	SubmissionID uuid.UUID             `json:"submission_id"`
	DispatchDate string                `json:"dispatch_date"`
	Lines        []dispatchLineRequest `json:"lines"`
}

type reconcileResponse struct {
	Status         domain.OrderStatus `json:"status"`
	StatusChanged  bool               `json:"status_changed"`
	EventsRecorded int                `json:"events_recorded"`
	LinesUpdated   int                `json:"lines_updated"`
	Order          orderDetailDTO     `json:"order"`
}

type createPartyRequest struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Phone       string `json:"phone,omitempty"`
	CreditTerms string `json:"credit_terms,omitempty"`
}

type updatePartyRequest struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name,omitempty"`
	City        *string `json:"city,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CreditTerms *string `json:"credit_terms,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type createItemRequest struct {
	Name       string              `json:"name"`
	Category   domain.ItemCategory `json:"category"`
	Unit       string              `json:"unit,omitempty"`
	DealerRate decimal.Decimal     `json:"dealer_rate"`
}

type updateItemRequest struct {
	ID         int64                `json:"id"`
	Name       *string              `json:"name,omitempty"`
	Category   *domain.ItemCategory `json:"category,omitempty"`
	Unit       *string              `json:"unit,omitempty"`
	DealerRate *decimal.Decimal     `json:"dealer_rate,omitempty"`
	Active     *bool                `json:"active,omitempty"`
}
