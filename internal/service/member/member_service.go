package member

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/repository"
)

type MemberUseCase interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, memberID int64) (*domain.Profile, error)
}

// TokenIssuer signs bearer tokens for authenticated members.
type TokenIssuer interface {
	Issue(member *domain.Member) (string, error)
}

type MemberService struct {
	members repository.MemberRepository
	tokens  TokenIssuer
}

func NewMemberService(members repository.MemberRepository, tokens TokenIssuer) *MemberService {
	return &MemberService{members: members, tokens: tokens}
}

// Register stores a new member with a bcrypt password hash. Duplicate emails
// surface as domain.ErrDuplicateEmail from the store's unique constraint, so
// concurrent registrations cannot both succeed.
func (s *MemberService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.members.Create(ctx, &domain.Member{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login matches credentials and issues a token. An unknown email and a wrong
// password both come back as domain.ErrInvalidCredentials.
func (s *MemberService) Login(ctx context.Context, email, password string) (string, error) {
	m, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.tokens.Issue(m)
}

// GetProfile re-reads the member row so a member deleted after token
// issuance is reported as not found rather than unauthorized.
func (s *MemberService) GetProfile(ctx context.Context, memberID int64) (*domain.Profile, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	p := m.Profile()
	return &p, nil
}

var _ MemberUseCase = (*MemberService)(nil)
