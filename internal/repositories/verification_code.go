package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dashmachine/dashmachine-api/internal/logger"
)

// VerificationCodeRepository stores issued verification codes in Redis.
type VerificationCodeRepository struct {
	client *redis.Client
	exp    time.Duration // lifetime of an issued code
}

func NewVerificationCodeRepository(client *redis.Client, expiration time.Duration) *VerificationCodeRepository {
	return &VerificationCodeRepository{
		client: client,
		exp:    expiration,
	}
}

func verificationCodeKey(phone, code string) string {
	return fmt.Sprintf("verification_code:%s:%s", phone, code)
}

// Save stores the (phone, code) pair with its issuance time.
func (r *VerificationCodeRepository) Save(ctx context.Context, phone, code string, issuedAt time.Time) error {
	key := verificationCodeKey(phone, "*")
	err := r.client.Set(ctx, verificationCodeKey(phone, code), issuedAt.Unix(), r.exp).Err()

	// The code itself is left out of the log
	logger.Log.Infow(
		"redis verification code",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Consume atomically looks up and deletes the pair. It reports false when no
// unexpired pair exists.
func (r *VerificationCodeRepository) Consume(ctx context.Context, phone, code string) (bool, error) {
	return r.lookup(ctx, phone, r.client.GetDel(ctx, verificationCodeKey(phone, code)))
}

// Exists reports whether an unexpired pair exists without consuming it.
func (r *VerificationCodeRepository) Exists(ctx context.Context, phone, code string) (bool, error) {
	return r.lookup(ctx, phone, r.client.Get(ctx, verificationCodeKey(phone, code)))
}

func (r *VerificationCodeRepository) lookup(ctx context.Context, phone string, cmd *redis.StringCmd) (bool, error) {
	val, err := cmd.Result()

	logger.Log.Infow(
		"redis verification code",
		"key", verificationCodeKey(phone, "*"),
		"command", cmd.Name(),
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := strconv.ParseInt(val, 10, 64); err != nil {
		return false, fmt.Errorf("malformed verification code entry: %w", err)
	}
	return true, nil
}
