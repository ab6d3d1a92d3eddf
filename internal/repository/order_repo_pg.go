package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, number string, status domain.OrderStatus) error
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := r.db.QueryRow(ctx, `INSERT INTO orders
		(order_number, prime, price, attraction_id, attraction_name, attraction_address, attraction_image,
		 date, time, contact_name, contact_email, contact_phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`,
		order.Number, order.Prime, order.Price,
		order.Attraction.ID, order.Attraction.Name, order.Attraction.Address, order.Attraction.Image,
		order.Date, order.Time, order.ContactName, order.ContactEmail, order.ContactPhone, order.Status).
		Scan(&order.CreatedAt)
	return err
}

// UpdateStatus sets the status of exactly one order, addressed by number.
func (r *PGOrderRepository) UpdateStatus(ctx context.Context, number string, status domain.OrderStatus) error {
	cmd, err := r.db.Exec(ctx, `UPDATE orders SET status=$1 WHERE order_number=$2`, status, number)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGOrderRepository) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT order_number, prime, price, attraction_id, attraction_name,
		attraction_address, attraction_image, date, time, contact_name, contact_email, contact_phone,
		status, created_at FROM orders WHERE order_number=$1`, number)

	var o domain.Order
	if err := row.Scan(&o.Number, &o.Prime, &o.Price, &o.Attraction.ID, &o.Attraction.Name,
		&o.Attraction.Address, &o.Attraction.Image, &o.Date, &o.Time, &o.ContactName,
		&o.ContactEmail, &o.ContactPhone, &o.Status, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

var _ OrderRepository = (*PGOrderRepository)(nil)
