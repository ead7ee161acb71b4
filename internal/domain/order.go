package domain

import (
	"math"
	"time"
)

// OrderStatus описывает этап исполнения заказа в витрине.
type OrderStatus string

const (
	// OrderStatusProcessing — заказ принят и готовится к отправке.
	OrderStatusProcessing OrderStatus = "Processing"
	// OrderStatusConfirmed — заказ подтверждён магазином.
	OrderStatusConfirmed OrderStatus = "Confirmed"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusInTransit — заказ в пути.
	OrderStatusInTransit OrderStatus = "In Transit"
	// OrderStatusOutForDelivery — заказ у курьера.
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	// OrderStatusDelivered — заказ доставлен покупателю.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCancelled — заказ отменён до доставки.
	OrderStatusCancelled OrderStatus = "Cancelled"
	// OrderStatusRefunded — деньги за заказ возвращены.
	OrderStatusRefunded OrderStatus = "Refunded"
)

// DefaultStatusColor — нейтральный цвет для нераспознанных статусов.
// Неизвестное значение не считается ошибкой: витрина должна переживать
// появление новых статусов без редеплоя.
const DefaultStatusColor = "#9e9e9e"

// Color возвращает презентационный цвет статуса из фиксированной таблицы.
func (s OrderStatus) Color() string {
	switch s {
	case OrderStatusProcessing:
		return "#ff9800"
	case OrderStatusConfirmed:
		return "#2196f3"
	case OrderStatusShipped:
		return "#3f51b5"
	case OrderStatusInTransit:
		return "#00bcd4"
	case OrderStatusOutForDelivery:
		return "#009688"
	case OrderStatusDelivered:
		return "#4caf50"
	case OrderStatusCancelled:
		return "#f44336"
	case OrderStatusRefunded:
		return "#795548"
	default:
		return DefaultStatusColor
	}
}

// IsKnown сообщает, входит ли статус в закрытое перечисление.
func (s OrderStatus) IsKnown() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusInTransit, OrderStatusOutForDelivery, OrderStatusDelivered,
		OrderStatusCancelled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// OrderItem — нормализованная позиция заказа, скопированная из корзины
// в момент оформления.
type OrderItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Order агрегирует позиции заказа и производные финансовые величины.
type Order struct {
	ID string `json:"id"`
	// Date — дата оформления в формате MM/DD/YYYY для прямого показа в UI.
	Date            string      `json:"date"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	StatusColor     string      `json:"statusColor"`
	ShippingAddress string      `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// SetStatus меняет статус и пересчитывает цвет. Цвет — чистая функция
// статуса и никогда не живёт отдельно от него.
func (o *Order) SetStatus(status OrderStatus) {
	o.Status = status
	o.StatusColor = status.Color()
}

// NormalizeStatusColor восстанавливает согласованность цвета со статусом,
// например после десериализации блоба из внешнего хранилища.
func (o *Order) NormalizeStatusColor() {
	o.StatusColor = o.Status.Color()
}

// Round2 округляет денежную величину до двух знаков после запятой.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
