package handlers

//go:generate mockgen -source=token.go -destination=token_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/dashmachine/dashmachine-api/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, phone, password string) (string, error)
}

// TokenRequest carries login credentials. Form posts use the OAuth2 password
// grant field names, where username holds the phone.
// swagger:model TokenRequest
type TokenRequest struct {
	// Phone number
	// required: true
	// default: +15551234567
	Phone string `json:"phone" validate:"required"`

	// Password
	// required: true
	// default: abc123
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents a successful login response
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// default: bearer
	TokenType string `json:"token_type"`
}

// NewTokenHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Exchanges phone and password for a bearer token
// @Tags users
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string false "Phone number"
// @Param password formData string false "Password"
// @Success 200 {object} handlers.TokenResponse "Access token"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Missing credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/token [post]
func NewTokenHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTokenRequest(r)
		if !ok {
			writeBadRequest(w)
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Phone, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

func decodeTokenRequest(r *http.Request) (TokenRequest, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
			return TokenRequest{}, false
		}
		return TokenRequest{
			Phone:    r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, true
	default:
		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return TokenRequest{}, false
		}
		return req, true
	}
}
