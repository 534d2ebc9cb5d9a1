package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPhoneHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPhoneChecker(ctrl)

	tests := []struct {
		name         string
		phone        string
		mockSetup    func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:  "registered phone",
			phone: "+15551234567",
			mockSetup: func() {
				mockSvc.EXPECT().CheckPhone(gomock.Any(), "+15551234567").Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "login",
		},
		{
			name:  "unknown phone",
			phone: "+15557654321",
			mockSetup: func() {
				mockSvc.EXPECT().CheckPhone(gomock.Any(), "+15557654321").Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "register",
		},
		{
			name:         "missing phone",
			phone:        "",
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "malformed phone",
			phone:        "5551234",
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:  "store failure",
			phone: "+15551234567",
			mockSetup: func() {
				mockSvc.EXPECT().CheckPhone(gomock.Any(), "+15551234567").Return(false, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/check_phone?phone="+url.QueryEscape(tt.phone), nil)
			w := httptest.NewRecorder()

			NewCheckPhoneHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp MessageResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}
