package kafka

import (
	"strings"
	"time"

	"toyworks-orders/internal/service/intake"
)

// EventDTO is a data transfer object for intake.Event
type EventDTO struct {
	OrderCode  string    `json:"order_code"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts EventDTO to intake.Event
func ToDomain(dto EventDTO) intake.Event {
	return intake.Event{
		OrderCode:  strings.TrimSpace(dto.OrderCode),
		Status:     strings.TrimSpace(dto.Status),
		OccurredAt: dto.OccurredAt,
	}
}
