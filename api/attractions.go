package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/service/trip"
)

type AttractionHandler struct {
	service trip.TripUseCase
}

func NewAttractionHandler(service trip.TripUseCase) *AttractionHandler {
	return &AttractionHandler{service: service}
}

func (h *AttractionHandler) Register(router *gin.RouterGroup) {
	router.GET("/attractions", h.list)
	router.GET("/attraction/:attractionId", h.get)
	router.GET("/mrts", h.mrts)
}

func (h *AttractionHandler) list(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		errorJSON(c, http.StatusBadRequest, "page must be 0 or greater")
		return
	}

	result, err := h.service.ListAttractions(c.Request.Context(), page, c.Query("keyword"))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AttractionHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("attractionId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid attraction id")
		return
	}

	attraction, err := h.service.GetAttraction(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// unknown ids answer 400, part of the frontend contract
			errorJSON(c, http.StatusBadRequest, "invalid attraction id")
			return
		}
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": attraction})
}

func (h *AttractionHandler) mrts(c *gin.Context) {
	mrts, err := h.service.ListMRTs(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": mrts})
}
