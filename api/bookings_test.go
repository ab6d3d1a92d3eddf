package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shawn910604/taipei-day-trip/internal/auth"
	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/service/booking"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) SetBooking(ctx context.Context, memberID int64, input booking.SetBookingInput) error {
	args := m.Called(ctx, memberID, input)
	return args.Error(0)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, memberID int64) (*domain.BookingDetail, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}

func (m *MockBookingUseCase) ClearBooking(ctx context.Context, memberID int64) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func newBookingRouter(service *MockBookingUseCase, tokens *MockTokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingHandler(service, tokens).Register(router.Group("/api"))
	return router
}

func authedClaims(tokens *MockTokenValidator, memberID int64) {
	tokens.On("Validate", "good-token").Return(&auth.Claims{MemberID: memberID}, nil)
}

func TestBookingHandler_Set(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockTokens := &MockTokenValidator{}
	router := newBookingRouter(mockService, mockTokens)

	authedClaims(mockTokens, 7)

	input := booking.SetBookingInput{AttractionID: 1, Date: "2024-01-01", Time: "morning", Price: 2000}
	mockService.On("SetBooking", mock.Anything, int64(7), input).Return(nil).Once()

	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestBookingHandler_Set_Unauthorized(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockTokens := &MockTokenValidator{}
	router := newBookingRouter(mockService, mockTokens)

	mockTokens.On("Validate", "bad-token").Return(nil, domain.ErrInvalidToken)

	body, _ := json.Marshal(booking.SetBookingInput{AttractionID: 1, Date: "2024-01-01", Time: "morning", Price: 2000})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer bad-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "SetBooking")
}

func TestBookingHandler_Get(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockTokens := &MockTokenValidator{}
	router := newBookingRouter(mockService, mockTokens)

	authedClaims(mockTokens, 7)

	detail := &domain.BookingDetail{
		Attraction: domain.AttractionSnapshot{ID: 1, Name: "A", Address: "X", Image: "url"},
		Date:       "2024-01-01",
		Time:       "morning",
		Price:      2000,
	}
	mockService.On("GetBooking", mock.Anything, int64(7)).Return(detail, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/booking", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": {
		"attraction": {"id": 1, "name": "A", "address": "X", "image": "url"},
		"date": "2024-01-01", "time": "morning", "price": 2000
	}}`, w.Body.String())
}

func TestBookingHandler_Get_Empty(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockTokens := &MockTokenValidator{}
	router := newBookingRouter(mockService, mockTokens)

	authedClaims(mockTokens, 7)

	mockService.On("GetBooking", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/booking", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_Clear(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockTokens := &MockTokenValidator{}
	router := newBookingRouter(mockService, mockTokens)

	authedClaims(mockTokens, 7)

	mockService.On("ClearBooking", mock.Anything, int64(7)).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/booking", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestBookingHandler_Clear_NothingBooked(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockTokens := &MockTokenValidator{}
	router := newBookingRouter(mockService, mockTokens)

	authedClaims(mockTokens, 7)

	mockService.On("ClearBooking", mock.Anything, int64(7)).Return(domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/booking", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No booking found")
}
