package handlers

//go:generate mockgen -source=check_phone.go -destination=check_phone_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/dashmachine/dashmachine-api/internal/validation"
)

// PhoneChecker defines the interface that the auth service must implement.
type PhoneChecker interface {
	CheckPhone(ctx context.Context, phone string) (bool, error)
}

type checkPhoneQuery struct {
	Phone string `json:"phone" validate:"required,e164"`
}

// NewCheckPhoneHandler returns an HTTP handler telling the client whether to
// log in or register.
// @Summary Check phone
// @Description Returns "login" when the phone is registered, "register" otherwise
// @Tags users
// @Produce json
// @Param phone query string true "Phone number in E.164 format"
// @Success 200 {object} handlers.MessageResponse "login or register"
// @Failure 422 {object} handlers.ErrorResponse "Invalid phone"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/check_phone [get]
func NewCheckPhoneHandler(svc PhoneChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := checkPhoneQuery{Phone: r.URL.Query().Get("phone")}
		if err := validation.Struct(q); err != nil {
			writeError(w, err)
			return
		}

		exists, err := svc.CheckPhone(r.Context(), q.Phone)
		if err != nil {
			writeError(w, err)
			return
		}

		msg := "register"
		if exists {
			msg = "login"
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
	}
}
