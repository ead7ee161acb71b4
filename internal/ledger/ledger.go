package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
	"github.com/MOWLI17/luxora-sub001/internal/messaging/kafka"
	"github.com/MOWLI17/luxora-sub001/internal/metrics"
)

const (
	// DefaultKey — логическое имя блоба с коллекцией заказов.
	DefaultKey = "luxora:orders"

	// Стоимость доставки по умолчанию.
	defaultShipping = 15.00
	// Ставка налога от подытога.
	taxRate = 0.08
	// Сентинел для заказов без адреса доставки.
	noAddressProvided = "no address provided"

	// Формат даты оформления: MM/DD/YYYY с ведущими нулями.
	orderDateLayout = "01/02/2006"
)

// OrderDetails — необязательные переопределения при оформлении заказа.
// Нулевой указатель означает "использовать значение по умолчанию".
type OrderDetails struct {
	Shipping        *float64
	Tax             *float64
	Status          domain.OrderStatus
	ShippingAddress string
}

// Ledger владеет коллекцией заказов одного клиентского контекста поверх
// внедрённой поверхности хранения. Внутренний мьютекс сериализует
// read-modify-write в пределах процесса; писатели из других процессов,
// разделяющие ту же поверхность, не координируются (single-writer допущение).
type Ledger struct {
	store     domain.BlobStore
	key       string
	publisher domain.EventPublisher
	metrics   *metrics.LedgerMetrics
	logger    *log.Entry

	// Подменяются в тестах для детерминизма.
	now   func() time.Time
	newID func() string

	mu sync.Mutex
}

// New конструирует реестр. publisher и m могут быть nil — тогда события
// и метрики просто не записываются.
func New(store domain.BlobStore, key string, publisher domain.EventPublisher, m *metrics.LedgerMetrics, logger *log.Entry) *Ledger {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.WithField("component", "order-ledger")
	}
	return &Ledger{
		store:     store,
		key:       key,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Create оформляет заказ из снимка корзины: считает подытог, налог,
// доставку и итог, присваивает идентификатор и дату, добавляет заказ
// в голову коллекции и записывает её обратно целиком.
//
// При отказе записи вычисленный Order всё равно возвращается вместе с
// ошибкой: вызывающий обязан считать такой заказ не зафиксированным.
func (l *Ledger) Create(ctx context.Context, items []domain.CartItem, details *OrderDetails) (domain.Order, error) {
	started := l.now()

	if errs := domain.ValidateCart(items); len(errs) > 0 {
		return domain.Order{}, errs[0]
	}

	order := l.buildOrder(items, details)

	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.load(ctx)
	orders = append([]domain.Order{order}, orders...)

	if err := l.save(ctx, orders); err != nil {
		return order, err
	}

	if l.metrics != nil {
		l.metrics.RecordOrderCreated()
		l.metrics.SetLedgerSize(len(orders))
		l.metrics.RecordOpDuration("create", l.now().Sub(started))
	}
	l.publish(kafka.EventTypeOrderCreated, order.ID, string(order.Status), order.Total)

	return order, nil
}

// List возвращает коллекцию заказов от новых к старым. Чтение не падает:
// отсутствующий или нечитаемый блоб деградирует до пустой коллекции.
func (l *Ledger) List(ctx context.Context) []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// UpdateStatus переразмечает статус заказа и пересчитывает цвет; изменения
// пишутся одной записью. Отсутствие заказа — мягкий no-op с неизменённой
// коллекцией, не ошибка.
func (l *Ledger) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) ([]domain.Order, error) {
	started := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.load(ctx)
	changed := false
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].SetStatus(status)
			changed = true
		}
	}
	if !changed {
		return orders, nil
	}

	if err := l.save(ctx, orders); err != nil {
		return orders, err
	}

	if l.metrics != nil {
		l.metrics.RecordStatusUpdate()
		l.metrics.RecordOpDuration("update_status", l.now().Sub(started))
	}
	l.publish(kafka.EventTypeOrderStatusChanged, orderID, string(status), 0)

	return orders, nil
}

// Delete удаляет заказ по идентификатору; no-op, если заказа нет.
func (l *Ledger) Delete(ctx context.Context, orderID string) ([]domain.Order, error) {
	started := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.load(ctx)
	remaining := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.ID != orderID {
			remaining = append(remaining, order)
		}
	}
	if len(remaining) == len(orders) {
		return orders, nil
	}

	if err := l.save(ctx, remaining); err != nil {
		return orders, err
	}

	if l.metrics != nil {
		l.metrics.RecordOrderDeleted()
		l.metrics.SetLedgerSize(len(remaining))
		l.metrics.RecordOpDuration("delete", l.now().Sub(started))
	}
	l.publish(kafka.EventTypeOrderDeleted, orderID, "", 0)

	return remaining, nil
}

// Clear удаляет коллекцию заказов целиком.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Delete(ctx, l.key); err != nil {
		if l.metrics != nil {
			l.metrics.RecordPersistFailure()
		}
		l.logger.WithError(err).Error("failed to clear order ledger")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if l.metrics != nil {
		l.metrics.RecordLedgerCleared()
		l.metrics.SetLedgerSize(0)
	}
	l.publish(kafka.EventTypeLedgerCleared, "", "", 0)

	return nil
}

// GetByID возвращает заказ и признак его наличия.
func (l *Ledger) GetByID(ctx context.Context, orderID string) (domain.Order, bool) {
	for _, order := range l.List(ctx) {
		if order.ID == orderID {
			return order, true
		}
	}
	return domain.Order{}, false
}

// GetByStatus возвращает заказы с указанным статусом, сохраняя порядок реестра.
func (l *Ledger) GetByStatus(ctx context.Context, status domain.OrderStatus) []domain.Order {
	orders := l.List(ctx)
	matched := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == status {
			matched = append(matched, order)
		}
	}
	return matched
}

// buildOrder собирает новый Order из снимка корзины и переопределений.
func (l *Ledger) buildOrder(items []domain.CartItem, details *OrderDetails) domain.Order {
	// Защитная копия: реестр не должен алиасить структуры вызывающего.
	orderItems := make([]domain.OrderItem, 0, len(items))
	var subtotal float64
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Image:       item.Image,
			Description: item.Description,
		})
		subtotal += item.Price * float64(item.Quantity)
	}
	subtotal = domain.Round2(subtotal)

	shipping := defaultShipping
	tax := domain.Round2(subtotal * taxRate)
	status := domain.OrderStatusProcessing
	address := noAddressProvided

	if details != nil {
		if details.Shipping != nil {
			shipping = *details.Shipping
		}
		if details.Tax != nil {
			tax = *details.Tax
		}
		if details.Status != "" {
			status = details.Status
		}
		if details.ShippingAddress != "" {
			address = details.ShippingAddress
		}
	}

	now := l.now()
	order := domain.Order{
		ID:              l.newID(),
		Date:            now.Format(orderDateLayout),
		Items:           orderItems,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           domain.Round2(subtotal + shipping + tax),
		ShippingAddress: address,
		CreatedAt:       now.UTC(),
	}
	order.SetStatus(status)
	return order
}

// load читает и десериализует коллекцию. Любая аномалия чтения деградирует
// до пустой коллекции (fail-soft политика реестра).
func (l *Ledger) load(ctx context.Context) []domain.Order {
	blob, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		l.logger.WithError(err).Warn("failed to read order ledger, degrading to empty")
		return []domain.Order{}
	}
	if !ok {
		return []domain.Order{}
	}

	var orders []domain.Order
	if err := json.Unmarshal(blob, &orders); err != nil {
		if l.metrics != nil {
			l.metrics.RecordCorruptedRead()
		}
		l.logger.WithError(err).Warn("order ledger blob is corrupted, degrading to empty")
		return []domain.Order{}
	}

	// Цвет — производная статуса; блоб мог быть записан до смены палитры.
	for i := range orders {
		orders[i].NormalizeStatusColor()
	}
	return orders
}

// save сериализует и записывает коллекцию целиком.
func (l *Ledger) save(ctx context.Context, orders []domain.Order) error {
	blob, err := json.Marshal(orders)
	if err != nil {
		if l.metrics != nil {
			l.metrics.RecordPersistFailure()
		}
		return fmt.Errorf("%w: marshal orders: %v", domain.ErrPersistence, err)
	}

	if err := l.store.Set(ctx, l.key, blob); err != nil {
		if l.metrics != nil {
			l.metrics.RecordPersistFailure()
		}
		l.logger.WithError(err).Error("failed to write order ledger")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// publish отправляет событие жизненного цикла, если издатель настроен.
// Отказ публикации не влияет на результат операции.
func (l *Ledger) publish(eventType kafka.EventType, orderID, status string, total float64) {
	if l.publisher == nil {
		return
	}
	event := kafka.NewOrderEvent(eventType, orderID, status, total)
	if err := l.publisher.PublishEvent(kafka.TopicOrderEvents, orderID, event); err != nil {
		l.logger.WithError(err).WithFields(log.Fields{
			"event":    eventType,
			"order_id": orderID,
		}).Warn("failed to publish order event")
	}
}
