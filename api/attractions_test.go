package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/service/trip"
)

type MockTripUseCase struct {
	mock.Mock
}

func (m *MockTripUseCase) ListAttractions(ctx context.Context, page int, keyword string) (*trip.AttractionPage, error) {
	args := m.Called(ctx, page, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.AttractionPage), args.Error(1)
}

func (m *MockTripUseCase) GetAttraction(ctx context.Context, id int64) (*domain.Attraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockTripUseCase) ListMRTs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func newTripRouter(service *MockTripUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAttractionHandler(service).Register(router.Group("/api"))
	return router
}

func TestAttractionHandler_List(t *testing.T) {
	mockService := &MockTripUseCase{}
	router := newTripRouter(mockService)

	next := 1
	page := &trip.AttractionPage{
		NextPage: &next,
		Data:     []domain.Attraction{{ID: 1, Name: "A", Images: []string{"url"}}},
	}
	mockService.On("ListAttractions", mock.Anything, 0, "").Return(page, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/attractions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nextPage":1`)
}

func TestAttractionHandler_List_NegativePage(t *testing.T) {
	mockService := &MockTripUseCase{}
	router := newTripRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/attractions?page=-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListAttractions")
}

func TestAttractionHandler_List_KeywordPassedThrough(t *testing.T) {
	mockService := &MockTripUseCase{}
	router := newTripRouter(mockService)

	page := &trip.AttractionPage{Data: []domain.Attraction{}}
	mockService.On("ListAttractions", mock.Anything, 2, "夜市").Return(page, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/attractions?page=2&keyword=%E5%A4%9C%E5%B8%82", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nextPage":null`)
	mockService.AssertExpectations(t)
}

func TestAttractionHandler_Get(t *testing.T) {
	mockService := &MockTripUseCase{}
	router := newTripRouter(mockService)

	attraction := &domain.Attraction{ID: 5, Name: "象山", Images: []string{"https://img/1.jpg"}}
	mockService.On("GetAttraction", mock.Anything, int64(5)).Return(attraction, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/attraction/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "象山")
}

func TestAttractionHandler_Get_UnknownID(t *testing.T) {
	mockService := &MockTripUseCase{}
	router := newTripRouter(mockService)

	mockService.On("GetAttraction", mock.Anything, int64(999)).Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/attraction/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttractionHandler_Get_NonNumericID(t *testing.T) {
	mockService := &MockTripUseCase{}
	router := newTripRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/attraction/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetAttraction")
}

func TestAttractionHandler_MRTs(t *testing.T) {
	mockService := &MockTripUseCase{}
	router := newTripRouter(mockService)

	mockService.On("ListMRTs", mock.Anything).Return([]string{"劍潭", "西門"}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/mrts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": ["劍潭", "西門"]}`, w.Body.String())
}
