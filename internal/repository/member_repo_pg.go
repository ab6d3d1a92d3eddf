package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
}

type PGMemberRepository struct {
	db *pgxpool.Pool
}

func NewMemberRepository(db *pgxpool.Pool) MemberRepository {
	return &PGMemberRepository{db: db}
}

const uniqueViolation = "23505"

// Create inserts the member. The unique constraint on member.email is the
// only duplicate guard, so concurrent registrations cannot both commit.
func (r *PGMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	err := r.db.QueryRow(ctx, `INSERT INTO member (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`,
		member.Name, member.Email, member.PasswordHash).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *PGMemberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password, created_at FROM member WHERE email=$1`, email)
	var m domain.Member
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGMemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password, created_at FROM member WHERE id=$1`, id)
	var m domain.Member
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

var _ MemberRepository = (*PGMemberRepository)(nil)
