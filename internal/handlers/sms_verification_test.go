package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashmachine/dashmachine-api/internal/services"
)

func marshalBody(v interface{}) []byte {
	if s, ok := v.(string); ok {
		return []byte(s)
	}
	b, _ := json.Marshal(v)
	return b
}

func TestCreateSMSVerificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVerificationCreator(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody ErrorResponse
	}{
		{
			name:      "code sent",
			inputBody: CreateSMSVerificationRequest{Phone: "+15551234567"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "+15551234567").Return("123456", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: ErrorResponse{Error: "invalid request body"},
		},
		{
			name:         "invalid phone",
			inputBody:    CreateSMSVerificationRequest{Phone: "abc"},
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: ErrorResponse{Error: "validation failed"},
		},
		{
			name:      "cooldown active",
			inputBody: CreateSMSVerificationRequest{Phone: "+15551234567"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "+15551234567").Return("", services.ErrTooManyRequests)
			},
			expectedCode: http.StatusTooManyRequests,
			expectedBody: ErrorResponse{Error: "Too many requests"},
		},
		{
			name:      "publish failure",
			inputBody: CreateSMSVerificationRequest{Phone: "+15551234567"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "+15551234567").Return("", errors.New("kafka down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/create_sms_verification", bytes.NewReader(marshalBody(tt.inputBody)))
			w := httptest.NewRecorder()

			NewCreateSMSVerificationHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp MessageResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "sent", resp.Message)
				assert.NotContains(t, w.Body.String(), "123456")
				return
			}
			if tt.expectedCode == http.StatusUnprocessableEntity {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody.Error, resp.Error)
				assert.Contains(t, resp.Fields, "phone")
				return
			}
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestVerifySMSVerificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVerificationChecker(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:      "matching code",
			inputBody: VerifySMSVerificationRequest{Phone: "+15551234567", Code: "123456"},
			mockSetup: func() {
				mockSvc.EXPECT().Verify(gomock.Any(), "+15551234567", "123456").Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "success",
		},
		{
			name:      "wrong code",
			inputBody: VerifySMSVerificationRequest{Phone: "+15551234567", Code: "654321"},
			mockSetup: func() {
				mockSvc.EXPECT().Verify(gomock.Any(), "+15551234567", "654321").Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "failure",
		},
		{
			name:         "short code",
			inputBody:    VerifySMSVerificationRequest{Phone: "+15551234567", Code: "123"},
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "non numeric code",
			inputBody:    VerifySMSVerificationRequest{Phone: "+15551234567", Code: "12a456"},
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "store failure",
			inputBody: VerifySMSVerificationRequest{Phone: "+15551234567", Code: "123456"},
			mockSetup: func() {
				mockSvc.EXPECT().Verify(gomock.Any(), "+15551234567", "123456").Return(false, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/verify_sms_verification", bytes.NewReader(marshalBody(tt.inputBody)))
			w := httptest.NewRecorder()

			NewVerifySMSVerificationHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMsg != "" {
				var resp MessageResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}
