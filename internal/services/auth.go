package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/models"
	"github.com/dashmachine/dashmachine-api/internal/repositories"
)

// Error variables
var (
	ErrAccountExists      = errors.New("account with this phone already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByPhone(ctx context.Context, phone string) (*models.Account, error)
}

// AccountWriter defines account writes used during registration and login.
type AccountWriter interface {
	Create(ctx context.Context, phone, passwordHash string, birthday *models.Date) error
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
	NeedsRehash(digest string) bool
}

// TokenManager issues access tokens and resolves them back to a phone.
type TokenManager interface {
	Generate(ctx context.Context, phone string) (string, error)
	GetPhone(ctx context.Context, token string) (string, error)
}

// AuthService handles registration, login and token validation.
type AuthService struct {
	reader AccountReader
	writer AccountWriter
	hasher PasswordHasher
	tokens TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AccountReader, writer AccountWriter, hasher PasswordHasher, tokens TokenManager) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		tokens: tokens,
	}
}

// CheckPhone reports whether an account is registered for phone.
func (svc *AuthService) CheckPhone(ctx context.Context, phone string) (bool, error) {
	account, err := svc.reader.GetByPhone(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to look up phone", "err", err)
		return false, err
	}
	return account != nil, nil
}

// Register creates an account for phone. The raw password is never stored.
func (svc *AuthService) Register(ctx context.Context, phone, password string, birthday *models.Date) error {
	digest, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	err = svc.writer.Create(ctx, phone, digest, birthday)
	if errors.Is(err, repositories.ErrDuplicate) {
		logger.Log.Infow("account already exists", "phone", phone)
		return ErrAccountExists
	}
	if err != nil {
		logger.Log.Errorw("failed to create account", "err", err)
		return err
	}

	logger.Log.Infow("account registered", "phone", phone)
	return nil
}

// Login verifies the credentials and returns an access token.
func (svc *AuthService) Login(ctx context.Context, phone, password string) (string, error) {
	account, err := svc.reader.GetByPhone(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", err
	}
	if account == nil {
		logger.Log.Infow("login for unknown phone", "phone", phone)
		return "", ErrInvalidCredentials
	}

	if !svc.hasher.Verify(password, account.PasswordHash) {
		logger.Log.Infow("invalid credentials", "phone", phone)
		return "", ErrInvalidCredentials
	}

	if svc.hasher.NeedsRehash(account.PasswordHash) {
		svc.rehash(ctx, account.ID, password)
	}

	token, err := svc.tokens.Generate(ctx, account.Phone)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// rehash upgrades a digest produced with an outdated cost. Failures are
// logged only.
func (svc *AuthService) rehash(ctx context.Context, id int64, password string) {
	digest, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Warnw("failed to rehash password", "account_id", id, "err", err)
		return
	}
	if err := svc.writer.UpdatePasswordHash(ctx, id, digest); err != nil {
		logger.Log.Warnw("failed to store rehashed password", "account_id", id, "err", err)
		return
	}
	logger.Log.Infow("password rehashed", "account_id", id)
}

// Authenticate resolves a bearer token to its account.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.Account, error) {
	phone, err := svc.tokens.GetPhone(ctx, token)
	if err != nil {
		logger.Log.Infow("token rejected", "err", err)
		return nil, ErrTokenInvalid
	}

	account, err := svc.reader.GetByPhone(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to get account for token", "err", err)
		return nil, err
	}
	if account == nil {
		logger.Log.Infow("token subject has no account", "phone", phone)
		return nil, ErrAccountNotFound
	}

	return account, nil
}
