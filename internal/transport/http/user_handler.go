package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
	"github.com/mkargin/shop-registry/pkg/httpx"
)

// UserHandler — HTTP-обработчики user-сервиса.
type UserHandler struct {
	service ports.UserService
	log     ports.Logger
}

// NewUserHandler — конструктор UserHandler.
func NewUserHandler(service ports.UserService, log ports.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// NewUserRouter — роутер user-сервиса. Маршрут /users/all объявлен до
// /users/:id — статический сегмент имеет приоритет над параметром.
func NewUserRouter(h *UserHandler, otelServiceName string) *gin.Engine {
	r := newEngine(h.log, otelServiceName)

	g := r.Group("/users")
	g.GET("", h.health)
	g.GET("/all", h.listUsers)
	g.POST("", h.createUser)
	g.GET("/:id", h.getUser)
	g.PUT("/:id", h.updateUser)
	g.DELETE("/:id", h.deleteUser)

	return r
}

func (h *UserHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "user service is up"})
}

func (h *UserHandler) listUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) createUser(c *gin.Context) {
	var in domain.NewUser
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) getUser(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) updateUser(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, &patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) deleteUser(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
