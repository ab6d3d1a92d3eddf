package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
)

const tokenTTL = 7 * 24 * time.Hour

// Claims is the signed claim set carried by a member's bearer token.
type Claims struct {
	MemberID int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless member tokens. The signing
// secret and algorithm are process-wide configuration.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for the member, valid for seven days. There is no
// refresh mechanism.
func (s *TokenService) Issue(member *domain.Member) (string, error) {
	claims := Claims{
		MemberID: member.ID,
		Name:     member.Name,
		Email:    member.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry. Any failure, whether a malformed
// token, a bad signature, or expiry, comes back as domain.ErrInvalidToken so
// callers map it uniformly to an authentication failure.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &claims, nil
}
