package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/service/order"
)

type OrderHandler struct {
	service order.OrderUseCase
	tokens  TokenValidator
}

func NewOrderHandler(service order.OrderUseCase, tokens TokenValidator) *OrderHandler {
	return &OrderHandler{service: service, tokens: tokens}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.POST("/orders", h.create)
	router.GET("/order/:orderNumber", AuthRequired(h.tokens), h.get)
}

func (h *OrderHandler) create(c *gin.Context) {
	var req order.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request data")
		return
	}

	result, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			errorJSON(c, http.StatusBadRequest, "missing or malformed order fields")
			return
		}
		abortError(c, err)
		return
	}

	// an unpaid outcome is still a successful response; the order exists
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"number": result.Number,
		"payment": gin.H{
			"status":  int(result.Status),
			"message": result.Message,
		},
	}})
}

func (h *OrderHandler) get(c *gin.Context) {
	ord, err := h.service.GetOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"number": ord.Number,
		"price":  ord.Price,
		"trip": domain.Trip{
			Attraction: ord.Attraction,
			Date:       ord.Date,
			Time:       ord.Time,
		},
		"contact": domain.Contact{
			Name:  ord.ContactName,
			Email: ord.ContactEmail,
			Phone: ord.ContactPhone,
		},
		"status": int(ord.Status),
	}})
}
