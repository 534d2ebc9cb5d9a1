package handlers

//go:generate mockgen -source=sms_verification.go -destination=sms_verification_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dashmachine/dashmachine-api/internal/validation"
)

// VerificationCreator issues verification codes.
type VerificationCreator interface {
	Create(ctx context.Context, phone string) (string, error)
}

// VerificationChecker checks verification codes.
type VerificationChecker interface {
	Verify(ctx context.Context, phone, code string) (bool, error)
}

// CreateSMSVerificationRequest asks for a code to be sent to a phone.
// swagger:model CreateSMSVerificationRequest
type CreateSMSVerificationRequest struct {
	// Phone number
	// required: true
	// default: +15551234567
	Phone string `json:"phone" validate:"required,e164"`
}

// VerifySMSVerificationRequest checks a code received by SMS.
// swagger:model VerifySMSVerificationRequest
type VerifySMSVerificationRequest struct {
	// Phone number
	// required: true
	// default: +15551234567
	Phone string `json:"phone" validate:"required,e164"`

	// Six digit code
	// required: true
	// default: 123456
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// NewCreateSMSVerificationHandler returns an HTTP handler that issues a code.
// @Summary Send verification code
// @Description Issues a six digit code and dispatches it by SMS
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateSMSVerificationRequest true "Phone"
// @Success 200 {object} handlers.MessageResponse "sent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} handlers.ErrorResponse "Invalid phone"
// @Failure 429 {object} handlers.ErrorResponse "Code requested too recently"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/create_sms_verification [post]
func NewCreateSMSVerificationHandler(svc VerificationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSMSVerificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, err)
			return
		}

		if _, err := svc.Create(r.Context(), req.Phone); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "sent"})
	}
}

// NewVerifySMSVerificationHandler returns an HTTP handler that checks a code.
// @Summary Verify code
// @Description Reports whether the code was issued for the phone and is still valid
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.VerifySMSVerificationRequest true "Phone and code"
// @Success 200 {object} handlers.MessageResponse "success or failure"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} handlers.ErrorResponse "Invalid phone or code"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/verify_sms_verification [post]
func NewVerifySMSVerificationHandler(svc VerificationChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifySMSVerificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, err)
			return
		}

		ok, err := svc.Verify(r.Context(), req.Phone, req.Code)
		if err != nil {
			writeError(w, err)
			return
		}

		msg := "failure"
		if ok {
			msg = "success"
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
	}
}
