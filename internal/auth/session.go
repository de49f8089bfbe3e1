// Package auth resolves the session user from a bearer token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type tokenKey struct{}

// WithToken stores the raw bearer token of the request in ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTSession verifies HS256 tokens signed with a shared secret.
type JWTSession struct {
	secret []byte
	now    func() time.Time
}

var _ port.Session = (*JWTSession)(nil)

func NewJWTSession(secret string) *JWTSession {
	return &JWTSession{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (s *JWTSession) CurrentUser(ctx context.Context) (domain.User, error) {
	raw, ok := TokenFrom(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthenticated
	}

	claims, err := s.parse(raw)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	return domain.User{
		ID:    claims.Subject,
		Email: claims.Email,
	}, nil
}

// Issue signs a token for user valid for ttl.
func (s *JWTSession) Issue(user domain.User, ttl time.Duration) (string, error) {
	if user.Email == "" {
		return "", fmt.Errorf("email is empty")
	}

	now := s.now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

func (s *JWTSession) parse(raw string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("jwt.ParseWithClaims: %w", err)
	}

	if claims.Email == "" {
		return nil, errors.New("token has no email claim")
	}

	return claims, nil
}
