package handlers

import (
	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/service/dispatch"
	"toyworks-orders/internal/service/orders"
)

func (req punchOrderRequest) toModel() orders.PunchRequest {
	out := orders.PunchRequest{
		PartyID:          req.PartyID,
		Code:             req.Code,
		ExpectedDispatch: req.ExpectedDispatch,
		Remarks:          req.Remarks,
	}
	if req.OrderDate != nil {
		out.OrderDate = *req.OrderDate
	}
	out.Lines = make([]orders.PunchLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		out.Lines = append(out.Lines, orders.PunchLine{
			ItemID: l.ItemID,
			Qty:    l.Qty,
			Rate:   l.Rate,
			Note:   l.Note,
		})
	}
	return out
}

func orderToResponse(o domain.Order) orderDTO {
	return orderDTO{
		ID:               o.ID,
		Code:             o.Code,
		PartyID:          o.PartyID,
		OrderDate:        o.OrderDate,
		ExpectedDispatch: o.ExpectedDispatch,
		Status:           o.Status,
		Remarks:          o.Remarks,
		TotalQty:         o.TotalQty,
		TotalValue:       o.TotalValue,
	}
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}

func lineToResponse(ld domain.LineDetail) lineDTO {
	stats := domain.ComputeLineStats(ld.Line.Qty, ld.Line.DispatchedQty)
	return lineDTO{
		ID:         ld.Line.ID,
		ItemID:     ld.Item.ID,
		ItemName:   ld.Item.Name,
		Qty:        stats.Ordered,
		Dispatched: stats.Dispatched,
		Pending:    stats.Pending,
		Clamped:    stats.Clamped,
		Rate:       ld.Line.Rate,
		Note:       ld.Line.Remarks,
	}
}

func partyToResponse(p domain.Party) partyDTO {
	return partyDTO{
		ID:          p.ID,
		Name:        p.Name,
		City:        p.City,
		Phone:       p.Phone,
		CreditTerms: p.CreditTerms,
		Active:      p.Active,
	}
}

func partiesToResponse(list []domain.Party) []partyDTO {
	out := make([]partyDTO, 0, len(list))
	for _, p := range list {
		out = append(out, partyToResponse(p))
	}
	return out
}

func itemToResponse(it domain.Item) itemDTO {
	return itemDTO{
		ID:         it.ID,
		Name:       it.Name,
		Category:   it.Category,
		Unit:       it.Unit,
		DealerRate: it.DealerRate,
		Active:     it.Active,
	}
}

func itemsToResponse(list []domain.Item) []itemDTO {
	out := make([]itemDTO, 0, len(list))
	for _, it := range list {
		out = append(out, itemToResponse(it))
	}
	return out
}

func detailToResponse(d *domain.OrderDetail) orderDetailDTO {
	out := orderDetailDTO{
		orderDTO: orderToResponse(d.Order),
		Party:    partyToResponse(d.Party),
		Lines:    make([]lineDTO, 0, len(d.Lines)),
	}
	for _, ld := range d.Lines {
		out.Lines = append(out.Lines, lineToResponse(ld))
	}
	return out
}

func logsToResponse(list []domain.OrderLog) []logDTO {
	out := make([]logDTO, 0, len(list))
	for _, l := range list {
		out = append(out, logDTO{ID: l.ID, Message: l.Message, CreatedAt: l.CreatedAt})
	}
	return out
}

func eventsToResponse(list []domain.DispatchEvent) []eventDTO {
	out := make([]eventDTO, 0, len(list))
	for _, e := range list {
		out = append(out, eventDTO{
			ID:           e.ID,
			LineID:       e.OrderLineID,
			SubmissionID: e.SubmissionID,
			Qty:          e.Qty,
			DispatchedAt: e.DispatchedAt,
		})
	}
	return out
}

func summaryToResponse(s *dispatch.Summary) summaryDTO {
	out := summaryDTO{
		OrderID:           s.OrderID,
		Status:            s.Status,
		TotalOrdered:      s.TotalOrdered,
		TotalDispatched:   s.TotalDispatched,
		FulfilmentPercent: s.FulfilmentPercent,
		Batches:           make([]batchDTO, 0, len(s.Batches)),
	}
	for _, b := range s.Batches {
		dto := batchDTO{Date: b.DateLabel, TotalPieces: b.TotalPieces, Lines: make([]batchLineDTO, 0, len(b.Lines))}
		for _, l := range b.Lines {
			dto.Lines = append(dto.Lines, batchLineDTO{LineID: l.LineID, ItemName: l.ItemName, Dispatched: l.Dispatched})
		}
		out.Batches = append(out.Batches, dto)
	}
	return out
}

func (req createPartyRequest) toModel() *domain.Party {
	return &domain.Party{
		Name:        req.Name,
		City:        req.City,
		Phone:       req.Phone,
		CreditTerms: req.CreditTerms,
		Active:      true,
	}
}

func (req updatePartyRequest) toModel() domain.PartialPartyUpdate {
	return domain.PartialPartyUpdate{
		ID:          req.ID,
		Name:        req.Name,
		City:        req.City,
		Phone:       req.Phone,
		CreditTerms: req.CreditTerms,
		Active:      req.Active,
	}
}

func (req createItemRequest) toModel() *domain.Item {
	return &domain.Item{
		Name:       req.Name,
		Category:   req.Category,
		Unit:       req.Unit,
		DealerRate: req.DealerRate,
		Active:     true,
	}
}

func (req updateItemRequest) toModel() domain.PartialItemUpdate {
	return domain.PartialItemUpdate{
		ID:         req.ID,
		Name:       req.Name,
		Category:   req.Category,
		Unit:       req.Unit,
		DealerRate: req.DealerRate,
		Active:     req.Active,
	}
}
