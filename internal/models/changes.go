package models

import "time"

// Assignment is a single column = value pair of an account update.
type Assignment struct {
	Column string
	Value  any
}

// SMSVerificationEvent asks the SMS sender to deliver a verification code.
type SMSVerificationEvent struct {
	EventID  string    `json:"event_id"`
	Phone    string    `json:"phone"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}
