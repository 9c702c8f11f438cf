package intake

import (
	"time"
)

// Event is a single upstream order event
type Event struct {
	OrderCode  string    `json:"order_code"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
