package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashmachine/dashmachine-api/internal/models"
	"github.com/dashmachine/dashmachine-api/internal/services"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := &models.Account{ID: 1, Phone: "+15551234567"}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, auth *MockAuthenticator)
		expectedStatus   int
		expectNextCalled bool
		expectChallenge  bool
		expectedError    string
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
			expectedError:   "Could not validate credentials",
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").Return(nil, services.ErrTokenInvalid)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
			expectedError:   "Could not validate credentials",
		},
		{
			name: "UnknownSubject",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("orphan", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "orphan").Return(nil, services.ErrAccountNotFound)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
			expectedError:   "Could not validate credentials",
		},
		{
			name: "StoreFailure",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").Return(account, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockTokener, mockAuth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, account, AccountFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectChallenge {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
			}

			if tt.expectedError != "" {
				var body AuthErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Error)
			}
		})
	}
}

func TestAccountFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, AccountFromContext(req.Context()))
}
