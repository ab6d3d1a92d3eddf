package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/service/member"
)

type UserHandler struct {
	service member.MemberUseCase
	tokens  TokenValidator
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewUserHandler(service member.MemberUseCase, tokens TokenValidator) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.POST("/user", h.register)
	router.PUT("/user/auth", h.login)
	router.GET("/user/auth", AuthRequired(h.tokens), h.whoAmI)
}

func (h *UserHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request data")
		return
	}

	if err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request data")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// whoAmI re-reads the member row so a member removed after token issuance
// answers 404 rather than 401.
func (h *UserHandler) whoAmI(c *gin.Context) {
	claims := memberClaims(c)

	profile, err := h.service.GetProfile(c.Request.Context(), claims.MemberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Member not found")
			return
		}
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}
