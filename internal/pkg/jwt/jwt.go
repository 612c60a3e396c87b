package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	audienceOwner = "owner"
	audienceState = "oauth-state"
)

// Claims identifies the business an owner token was issued for.
type Claims struct {
	BusinessSlug string `json:"business_slug"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
	stateDuration time.Duration
	now           func() time.Time
}

func NewService(secretKey, issuer string, tokenDuration, stateDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
		stateDuration: stateDuration,
		now:           time.Now,
	}
}

func (s *Service) GenerateToken(slug string) (string, error) {
	return s.sign(slug, audienceOwner, s.tokenDuration)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.parse(tokenString, audienceOwner)
}

// SignState issues the short-lived OAuth state carrying slug.
func (s *Service) SignState(slug string) (string, error) {
	return s.sign(slug, audienceState, s.stateDuration)
}

func (s *Service) VerifyState(state string) (string, error) {
	claims, err := s.parse(state, audienceState)
	if err != nil {
		return "", err
	}
	return claims.BusinessSlug, nil
}

func (s *Service) sign(slug, audience string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		BusinessSlug: slug,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   slug,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) parse(tokenString, audience string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithAudience(audience),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.BusinessSlug == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
