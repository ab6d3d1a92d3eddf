package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
	tokens  TokenValidator
}

func NewBookingHandler(service booking.BookingUseCase, tokens TokenValidator) *BookingHandler {
	return &BookingHandler{service: service, tokens: tokens}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	authed := router.Group("/booking", AuthRequired(h.tokens))
	authed.POST("", h.set)
	authed.GET("", h.get)
	authed.DELETE("", h.clear)
}

func (h *BookingHandler) set(c *gin.Context) {
	var req booking.SetBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request data")
		return
	}

	claims := memberClaims(c)
	if err := h.service.SetBooking(c.Request.Context(), claims.MemberID, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusBadRequest, "invalid attraction id")
			return
		}
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *BookingHandler) get(c *gin.Context) {
	claims := memberClaims(c)

	detail, err := h.service.GetBooking(c.Request.Context(), claims.MemberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "No booking found")
			return
		}
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

func (h *BookingHandler) clear(c *gin.Context) {
	claims := memberClaims(c)

	if err := h.service.ClearBooking(c.Request.Context(), claims.MemberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "No booking found")
			return
		}
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
