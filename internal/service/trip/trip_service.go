package trip

import (
	"context"
	"log"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/repository"
)

// PageSize is the fixed attraction listing page size.
const PageSize = 12

type TripUseCase interface {
	ListAttractions(ctx context.Context, page int, keyword string) (*AttractionPage, error)
	GetAttraction(ctx context.Context, id int64) (*domain.Attraction, error)
	ListMRTs(ctx context.Context) ([]string, error)
}

// Cache keeps hot read-only listing data. A nil cache disables caching.
type Cache interface {
	GetAttractionPage(ctx context.Context, page int, keyword string) ([]domain.Attraction, error)
	SetAttractionPage(ctx context.Context, page int, keyword string, attractions []domain.Attraction) error
	GetMRTs(ctx context.Context) ([]string, error)
	SetMRTs(ctx context.Context, mrts []string) error
}

// AttractionPage is one listing page. NextPage is nil on the last page.
type AttractionPage struct {
	NextPage *int                `json:"nextPage"`
	Data     []domain.Attraction `json:"data"`
}

type TripService struct {
	repo  repository.AttractionRepository
	cache Cache
}

func NewTripService(repo repository.AttractionRepository, cache Cache) *TripService {
	return &TripService{repo: repo, cache: cache}
}

func (s *TripService) ListAttractions(ctx context.Context, page int, keyword string) (*AttractionPage, error) {
	if page < 0 {
		return nil, domain.ErrInvalidInput
	}

	attractions, err := s.loadPage(ctx, page, keyword)
	if err != nil {
		return nil, err
	}

	result := &AttractionPage{Data: attractions}
	if len(attractions) == PageSize {
		next := page + 1
		result.NextPage = &next
	}
	return result, nil
}

func (s *TripService) loadPage(ctx context.Context, page int, keyword string) ([]domain.Attraction, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAttractionPage(ctx, page, keyword); err == nil && cached != nil {
			return cached, nil
		}
	}

	attractions, err := s.repo.List(ctx, PageSize, page*PageSize, keyword)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetAttractionPage(ctx, page, keyword, attractions); err != nil {
			log.Printf("cache attractions page %d: %v", page, err)
		}
	}
	return attractions, nil
}

func (s *TripService) GetAttraction(ctx context.Context, id int64) (*domain.Attraction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TripService) ListMRTs(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetMRTs(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	mrts, err := s.repo.ListMRTs(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetMRTs(ctx, mrts); err != nil {
			log.Printf("cache mrts: %v", err)
		}
	}
	return mrts, nil
}

var _ TripUseCase = (*TripService)(nil)
