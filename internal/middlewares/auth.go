package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/models"
	"github.com/dashmachine/dashmachine-api/internal/services"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a token to the account it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Account, error)
}

// AuthErrorResponse is the error body written by the auth middleware.
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// example: Could not validate credentials
	Error string `json:"error"`
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// authenticated account in the request context.
func AuthMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				WriteUnauthorized(w)
				return
			}

			account, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrTokenInvalid) || errors.Is(err, services.ErrAccountNotFound) {
					logger.Log.Infow("authorization failed", "err", err)
					WriteUnauthorized(w)
					return
				}
				logger.Log.Errorw("authentication error", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AuthErrorResponse{Error: "Internal server error"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(ctx, account)))
		})
	}
}

// WriteUnauthorized writes the 401 response shared by every credential
// failure.
func WriteUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(AuthErrorResponse{Error: "Could not validate credentials"})
}

type accountKey struct{}

// WithAccount returns a copy of ctx carrying account.
func WithAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// AccountFromContext returns the authenticated account, or nil outside
// AuthMiddleware.
func AccountFromContext(ctx context.Context) *models.Account {
	account, _ := ctx.Value(accountKey{}).(*models.Account)
	return account
}
