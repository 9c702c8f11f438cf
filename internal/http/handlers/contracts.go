package handlers

import (
	"context"

	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/service/dispatch"
	"toyworks-orders/internal/service/item"
	"toyworks-orders/internal/service/orders"
	"toyworks-orders/internal/service/party"
)

type orderUsecase interface {
	Punch(ctx context.Context, req orders.PunchRequest) (*domain.OrderDetail, error)
	Get(ctx context.Context, id int64) (*domain.OrderDetail, error)
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error)
	AddLine(ctx context.Context, orderID int64, in orders.PunchLine) (*domain.OrderDetail, error)
	RemoveLine(ctx context.Context, orderID, lineID int64) (*domain.OrderDetail, error)
	Logs(ctx context.Context, orderID int64, limit int) ([]domain.OrderLog, error)
	Events(ctx context.Context, orderID int64) ([]domain.DispatchEvent, error)
}

// NewOrderUsecase wires an order Service into an orderUsecase.
func NewOrderUsecase(svc *orders.Service) orderUsecase {
	return svc
}

type dispatchUsecase interface {
	Reconcile(ctx context.Context, req dispatch.ReconcileRequest) (*dispatch.ReconcileResult, error)
	Summary(ctx context.Context, orderID int64) (*dispatch.Summary, error)
}

// NewDispatchUsecase wires a dispatch Service into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}

type partyUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Party, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Party, error)
	Create(ctx context.Context, p *domain.Party) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialPartyUpdate) (bool, error)
}

// NewPartyUsecase wires a party Service into a partyUsecase.
func NewPartyUsecase(svc *party.Service) partyUsecase {
	return svc
}

type itemUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Item, error)
	Create(ctx context.Context, it *domain.Item) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialItemUpdate) (bool, error)
}

// NewItemUsecase wires an item Service into an itemUsecase.
func NewItemUsecase(svc *item.Service) itemUsecase {
	return svc
}
