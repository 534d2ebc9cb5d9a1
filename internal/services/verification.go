package services

//go:generate mockgen -source=verification.go -destination=verification_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/models"
)

var ErrTooManyRequests = errors.New("verification code requested too recently")

const codeDigits = 6

// VerificationCodeStore persists issued codes keyed by (phone, code).
type VerificationCodeStore interface {
	Save(ctx context.Context, phone, code string, issuedAt time.Time) error
	Consume(ctx context.Context, phone, code string) (bool, error)
	Exists(ctx context.Context, phone, code string) (bool, error)
}

// CooldownLimiter gates how often an action may happen per key.
type CooldownLimiter interface {
	Acquire(ctx context.Context, key string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// VerificationService issues and checks SMS verification codes.
type VerificationService struct {
	codes       VerificationCodeStore
	cooldown    CooldownLimiter
	kafkaWriter KafkaWriter
	singleUse   bool
	now         func() time.Time
}

// NewVerificationService creates a new VerificationService. kafkaWriter may be
// nil, in which case codes are stored but not dispatched.
func NewVerificationService(
	codes VerificationCodeStore,
	cooldown CooldownLimiter,
	kafkaWriter KafkaWriter,
	singleUse bool,
) *VerificationService {
	return &VerificationService{
		codes:       codes,
		cooldown:    cooldown,
		kafkaWriter: kafkaWriter,
		singleUse:   singleUse,
		now:         time.Now,
	}
}

// Create issues a new code for phone and hands it to the SMS sender.
func (s *VerificationService) Create(ctx context.Context, phone string) (string, error) {
	allowed, err := s.cooldown.Acquire(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to check verification cooldown", "phone", phone, "error", err)
		return "", err
	}
	if !allowed {
		return "", ErrTooManyRequests
	}

	code, err := generateCode()
	if err != nil {
		logger.Log.Errorw("failed to generate verification code", "error", err)
		return "", err
	}

	issuedAt := s.now()
	if err := s.codes.Save(ctx, phone, code, issuedAt); err != nil {
		logger.Log.Errorw("failed to save verification code", "phone", phone, "error", err)
		return "", err
	}

	s.publishSMS(ctx, models.SMSVerificationEvent{
		EventID:  uuid.NewString(),
		Phone:    phone,
		Code:     code,
		IssuedAt: issuedAt,
	})

	return code, nil
}

// Verify reports whether code was issued for phone and has not expired. With
// single use enabled a successful check consumes the code.
func (s *VerificationService) Verify(ctx context.Context, phone, code string) (bool, error) {
	var (
		ok  bool
		err error
	)
	if s.singleUse {
		ok, err = s.codes.Consume(ctx, phone, code)
	} else {
		ok, err = s.codes.Exists(ctx, phone, code)
	}
	if err != nil {
		logger.Log.Errorw("failed to verify code", "phone", phone, "error", err)
		return false, err
	}

	logger.Log.Infow("verification checked", "phone", phone, "success", ok)
	return ok, nil
}

// publishSMS publishes a dispatch event to Kafka.
func (s *VerificationService) publishSMS(ctx context.Context, event models.SMSVerificationEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping SMS dispatch", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal SMS event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Phone),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish SMS event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("SMS event published to Kafka", "event_id", event.EventID, "phone", event.Phone)
	}
}

func generateCode() (string, error) {
	upper := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}
