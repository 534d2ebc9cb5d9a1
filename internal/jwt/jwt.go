package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrNoSubject    = errors.New("subject not found in token")
)

// Claims are the registered claims carried by an access token. Subject holds
// the account phone number.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT issues and validates HS256 access tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

type Opt func(*JWT)

// WithSecretKey sets the HMAC signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a new JWT instance. The default lifetime is 30 days.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: 30 * 24 * time.Hour,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token whose subject is phone.
func (j *JWT) Generate(ctx context.Context, phone string) (string, error) {
	now := j.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   phone,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims parses and validates tokenString. Only HMAC-signed tokens with a
// future expiry are accepted.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
	)
	if err != nil {
		return nil, errors.Join(ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Validate reports whether tokenString is a valid token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetPhone returns the subject of a valid token.
func (j *JWT) GetPhone(ctx context.Context, tokenString string) (string, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrNoSubject
	}
	return claims.Subject, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
