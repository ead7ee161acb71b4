package kafka

import "time"

// EventType определяет тип публикуемого события.
type EventType string

const (
	// EventTypeOrderCreated — заказ оформлен и записан в реестр.
	EventTypeOrderCreated EventType = "order.created"
	// EventTypeOrderStatusChanged — статус заказа переразмечен.
	EventTypeOrderStatusChanged EventType = "order.status_changed"
	// EventTypeOrderDeleted — заказ удалён из реестра.
	EventTypeOrderDeleted EventType = "order.deleted"
	// EventTypeLedgerCleared — реестр очищен целиком.
	EventTypeLedgerCleared EventType = "order.ledger_cleared"
)

// Topics для Kafka
const (
	TopicOrderEvents = "luxora.order.events"
)

// OrderEvent представляет событие жизненного цикла заказа.
type OrderEvent struct {
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Total     float64   `json:"total,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа.
func NewOrderEvent(eventType EventType, orderID, status string, total float64) *OrderEvent {
	return &OrderEvent{
		EventType: eventType,
		OrderID:   orderID,
		Status:    status,
		Total:     total,
		Timestamp: time.Now().UTC(),
	}
}
