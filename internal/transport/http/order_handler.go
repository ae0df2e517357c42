package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
	"github.com/mkargin/shop-registry/pkg/httpx"
)

// OrderHandler — HTTP-обработчики order-сервиса.
type OrderHandler struct {
	service ports.OrderService
	log     ports.Logger
}

// NewOrderHandler — конструктор OrderHandler.
func NewOrderHandler(service ports.OrderService, log ports.Logger) *OrderHandler {
	return &OrderHandler{service: service, log: log}
}

// NewOrderRouter — роутер order-сервиса; та же схема маршрутов, что и у users.
func NewOrderRouter(h *OrderHandler, otelServiceName string) *gin.Engine {
	r := newEngine(h.log, otelServiceName)

	g := r.Group("/orders")
	g.GET("", h.health)
	g.GET("/all", h.listOrders)
	g.POST("", h.createOrder)
	g.GET("/:id", h.getOrder)
	g.PUT("/:id", h.updateOrder)
	g.DELETE("/:id", h.deleteOrder)

	return r
}

func (h *OrderHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "order service is up"})
}

func (h *OrderHandler) listOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) createOrder(c *gin.Context) {
	var in domain.NewOrder
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) getOrder(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) updateOrder(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var patch domain.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.UpdateOrder(c.Request.Context(), id, &patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) deleteOrder(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
