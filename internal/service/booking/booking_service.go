package booking

import (
	"context"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/repository"
)

type BookingUseCase interface {
	SetBooking(ctx context.Context, memberID int64, input SetBookingInput) error
	GetBooking(ctx context.Context, memberID int64) (*domain.BookingDetail, error)
	ClearBooking(ctx context.Context, memberID int64) error
}

type SetBookingInput struct {
	AttractionID int64  `json:"attractionId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Price        int64  `json:"price"`
}

type BookingService struct {
	bookings    repository.BookingRepository
	attractions repository.AttractionRepository
}

func NewBookingService(bookings repository.BookingRepository, attractions repository.AttractionRepository) *BookingService {
	return &BookingService{bookings: bookings, attractions: attractions}
}

// SetBooking replaces the member's cart slot. A member holds at most one
// pending booking, so setting twice keeps only the second call's values.
func (s *BookingService) SetBooking(ctx context.Context, memberID int64, input SetBookingInput) error {
	if input.AttractionID <= 0 || input.Date == "" || input.Time == "" || input.Price <= 0 {
		return domain.ErrInvalidInput
	}

	// reject bookings for attractions that don't exist
	if _, err := s.attractions.GetSnapshot(ctx, input.AttractionID); err != nil {
		return err
	}

	return s.bookings.Replace(ctx, &domain.Booking{
		AttractionID: input.AttractionID,
		Date:         input.Date,
		Time:         input.Time,
		Price:        input.Price,
		MemberID:     memberID,
	})
}

func (s *BookingService) GetBooking(ctx context.Context, memberID int64) (*domain.BookingDetail, error) {
	return s.bookings.GetByMember(ctx, memberID)
}

func (s *BookingService) ClearBooking(ctx context.Context, memberID int64) error {
	return s.bookings.DeleteByMember(ctx, memberID)
}

var _ BookingUseCase = (*BookingService)(nil)
