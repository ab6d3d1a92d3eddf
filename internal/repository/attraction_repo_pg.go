package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
)

type AttractionRepository interface {
	List(ctx context.Context, limit, offset int, keyword string) ([]domain.Attraction, error)
	GetByID(ctx context.Context, id int64) (*domain.Attraction, error)
	ListMRTs(ctx context.Context) ([]string, error)
	GetSnapshot(ctx context.Context, id int64) (*domain.AttractionSnapshot, error)
}

type PGAttractionRepository struct {
	db *pgxpool.Pool
}

func NewAttractionRepository(db *pgxpool.Pool) AttractionRepository {
	return &PGAttractionRepository{db: db}
}

const attractionColumns = `id, name, category, description, address, transport, mrt, lat, lng, images`

// List returns one page of attractions. A keyword matches either a name
// substring or an exact MRT station name.
func (r *PGAttractionRepository) List(ctx context.Context, limit, offset int, keyword string) ([]domain.Attraction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if keyword != "" {
		rows, err = r.db.Query(ctx, `SELECT `+attractionColumns+` FROM attractions WHERE name LIKE $1 OR mrt = $2 ORDER BY id LIMIT $3 OFFSET $4`,
			"%"+keyword+"%", keyword, limit, offset)
	} else {
		rows, err = r.db.Query(ctx, `SELECT `+attractionColumns+` FROM attractions ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attractions := make([]domain.Attraction, 0, limit)
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			return nil, err
		}
		attractions = append(attractions, *a)
	}
	return attractions, rows.Err()
}

func (r *PGAttractionRepository) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+attractionColumns+` FROM attractions WHERE id=$1`, id)
	a, err := scanAttraction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListMRTs returns station names ordered by how many attractions sit near
// each, most first. Attractions without a station are skipped.
func (r *PGAttractionRepository) ListMRTs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT mrt FROM attractions WHERE mrt IS NOT NULL GROUP BY mrt ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mrts []string
	for rows.Next() {
		var mrt string
		if err := rows.Scan(&mrt); err != nil {
			return nil, err
		}
		mrts = append(mrts, mrt)
	}
	return mrts, rows.Err()
}

// GetSnapshot fetches the denormalized fields carried into bookings.
func (r *PGAttractionRepository) GetSnapshot(ctx context.Context, id int64) (*domain.AttractionSnapshot, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, address, images FROM attractions WHERE id=$1`, id)
	var (
		s      domain.AttractionSnapshot
		images string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Address, &images); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.Image = domain.FirstImageURL(images)
	return &s, nil
}

func scanAttraction(row pgx.Row) (*domain.Attraction, error) {
	var (
		a      domain.Attraction
		images string
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Category, &a.Description, &a.Address, &a.Transport, &a.MRT, &a.Lat, &a.Lng, &images); err != nil {
		return nil, err
	}
	a.Images = domain.ExtractImageURLs(images)
	return &a, nil
}

var _ AttractionRepository = (*PGAttractionRepository)(nil)
