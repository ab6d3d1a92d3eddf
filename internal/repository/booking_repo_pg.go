package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
)

type BookingRepository interface {
	Replace(ctx context.Context, booking *domain.Booking) error
	GetByMember(ctx context.Context, memberID int64) (*domain.BookingDetail, error)
	DeleteByMember(ctx context.Context, memberID int64) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Replace swaps the member's cart slot for the given booking. Delete and
// insert run in one transaction so the member ends up with exactly one row.
func (r *PGBookingRepository) Replace(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM booking WHERE member_id=$1`, booking.MemberID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO booking (attraction_id, date, time, price, member_id) VALUES ($1, $2, $3, $4, $5)`,
		booking.AttractionID, booking.Date, booking.Time, booking.Price, booking.MemberID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByMember returns the member's pending booking joined with the
// attraction snapshot, or domain.ErrNotFound when the cart is empty.
func (r *PGBookingRepository) GetByMember(ctx context.Context, memberID int64) (*domain.BookingDetail, error) {
	row := r.db.QueryRow(ctx, `SELECT a.id, a.name, a.address, a.images, b.date, b.time, b.price
		FROM booking b JOIN attractions a ON a.id = b.attraction_id
		WHERE b.member_id=$1`, memberID)

	var (
		d      domain.BookingDetail
		images string
	)
	if err := row.Scan(&d.Attraction.ID, &d.Attraction.Name, &d.Attraction.Address, &images, &d.Date, &d.Time, &d.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	d.Attraction.Image = domain.FirstImageURL(images)
	return &d, nil
}

// DeleteByMember clears the cart slot. Deleting an empty cart reports
// domain.ErrNotFound so the handler can answer 404 instead of ok.
func (r *PGBookingRepository) DeleteByMember(ctx context.Context, memberID int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM booking WHERE member_id=$1`, memberID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
