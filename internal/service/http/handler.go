package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/MOWLI17/luxora-sub001/internal/catalog"
	"github.com/MOWLI17/luxora-sub001/internal/domain"
	"github.com/MOWLI17/luxora-sub001/internal/ledger"
)

// Handler реализует JSON API поверх движка каталога и реестра заказов.
// Два компонента ядра не знают друг о друге; их композиция происходит
// только здесь.
type Handler struct {
	engine *catalog.Engine
	ledger *ledger.Ledger
	logger *log.Entry
}

// NewHandler конструирует обработчик с зависимостями.
func NewHandler(engine *catalog.Engine, led *ledger.Ledger, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}
	return &Handler{engine: engine, ledger: led, logger: logger}
}

// QueryProducts обрабатывает GET /v1/products с параметрами фильтра.
func (h *Handler) QueryProducts(c *gin.Context) {
	filter := catalog.ParseFilter(
		c.Query("minPrice"),
		c.Query("maxPrice"),
		c.Query("minRating"),
		c.Query("search"),
	)

	result, err := h.engine.Query(c.Request.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("catalog query failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type createOrderReq struct {
	Items []struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
		Image       string  `json:"image"`
		Description string  `json:"description"`
	} `json:"items"`
	Shipping        *float64 `json:"shipping"`
	Tax             *float64 `json:"tax"`
	Status          string   `json:"status"`
	ShippingAddress string   `json:"shippingAddress"`
}

// CreateOrder обрабатывает POST /v1/orders.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.CartItem{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Image:       item.Image,
			Description: item.Description,
		})
	}

	details := &ledger.OrderDetails{
		Shipping:        req.Shipping,
		Tax:             req.Tax,
		Status:          domain.OrderStatus(req.Status),
		ShippingAddress: req.ShippingAddress,
	}

	order, err := h.ledger.Create(c.Request.Context(), items, details)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart),
			errors.Is(err, domain.ErrItemQtyInvalid),
			errors.Is(err, domain.ErrItemPriceInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case domain.IsPersistence(err):
			// Заказ вычислен, но не зафиксирован: вызывающий не должен
			// считать его записанным.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "order was not durably recorded"})
		default:
			h.logger.WithError(err).Error("failed to create order")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders обрабатывает GET /v1/orders.
func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.List(c.Request.Context()))
}

// GetOrderByID обрабатывает GET /v1/orders/:id.
func (h *Handler) GetOrderByID(c *gin.Context) {
	order, ok := h.ledger.GetByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrOrderNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrdersByStatus обрабатывает GET /v1/orders/status/:status.
func (h *Handler) GetOrdersByStatus(c *gin.Context) {
	status := domain.OrderStatus(c.Param("status"))
	c.JSON(http.StatusOK, h.ledger.GetByStatus(c.Request.Context(), status))
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus обрабатывает PATCH /v1/orders/:id/status.
// Отсутствующий заказ — мягкий no-op: коллекция возвращается неизменной.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	orders, err := h.ledger.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "status change was not durably recorded"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// DeleteOrder обрабатывает DELETE /v1/orders/:id.
func (h *Handler) DeleteOrder(c *gin.Context) {
	orders, err := h.ledger.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "deletion was not durably recorded"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ClearOrders обрабатывает DELETE /v1/orders.
func (h *Handler) ClearOrders(c *gin.Context) {
	if err := h.ledger.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ledger was not cleared"})
		return
	}
	c.Status(http.StatusNoContent)
}
