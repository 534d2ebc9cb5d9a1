package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/models"
)

var (
	ErrDuplicate     = errors.New("duplicate key")
	ErrUnknownColumn = errors.New("unknown account column")
)

const uniqueViolation = "23505"

const accountColumns = `id, phone, password_hash, name, first_name, last_name, username, birthday, bio,
	gender, relationship_status, sexuality, ethnicity, job_title,
	gender_hidden, relationship_status_hidden, sexuality_hidden, ethnicity_hidden, job_title_hidden, pronouns_hidden,
	age_min, age_max, auto_detect_location, lat, lng, city, state, radius,
	schedule_notes, schedule_mon, schedule_tues, schedule_wed, schedule_thurs, schedule_fri, schedule_sat, schedule_sun,
	created, updated`

// updatableColumns lists the account columns UpdateFields may assign.
var updatableColumns = map[string]struct{}{
	"password_hash": {}, "name": {}, "first_name": {}, "last_name": {}, "username": {}, "birthday": {}, "bio": {},
	"gender": {}, "relationship_status": {}, "sexuality": {}, "ethnicity": {}, "job_title": {},
	"gender_hidden": {}, "relationship_status_hidden": {}, "sexuality_hidden": {}, "ethnicity_hidden": {},
	"job_title_hidden": {}, "pronouns_hidden": {},
	"age_min": {}, "age_max": {}, "auto_detect_location": {}, "lat": {}, "lng": {}, "city": {}, "state": {}, "radius": {},
	"schedule_notes": {}, "schedule_mon": {}, "schedule_tues": {}, "schedule_wed": {}, "schedule_thurs": {},
	"schedule_fri": {}, "schedule_sat": {}, "schedule_sun": {},
}

type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByPhone returns the account with its pronouns, or nil when no account
// has that phone.
func (r *AccountReadRepository) GetByPhone(ctx context.Context, phone string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM account WHERE phone = $1`
	return r.get(ctx, query, phone)
}

// GetByIDForUpdate loads the account and locks its row until the surrounding
// transaction ends.
func (r *AccountReadRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM account WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *AccountReadRepository) get(ctx context.Context, query string, arg any) (*models.Account, error) {
	var account models.Account
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &account, query, arg)

	// Log with query in single line
	logger.Log.Infow(
		"postgres query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"result", account.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	pronouns, err := r.pronouns(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	account.Pronouns = pronouns

	return &account, nil
}

func (r *AccountReadRepository) pronouns(ctx context.Context, accountID int64) ([]models.PronounName, error) {
	const query = `SELECT name FROM pronoun WHERE account_id = $1 ORDER BY id`

	pronouns := []models.PronounName{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &pronouns, query, accountID)

	logger.Log.Infow(
		"postgres query",
		"query", query,
		"args", []any{accountID},
		"result", pronouns,
		"error", err,
	)

	return pronouns, err
}

// ListByBirthdayRange returns accounts other than excludeID born within
// [bornAfter, bornBefore], newest first. Pronouns are not loaded.
func (r *AccountReadRepository) ListByBirthdayRange(ctx context.Context, excludeID int64, bornAfter, bornBefore time.Time, limit int) ([]models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM account
		WHERE id <> $1
		  AND birthday IS NOT NULL
		  AND birthday BETWEEN $2 AND $3
		ORDER BY created DESC, id DESC
		LIMIT $4
	`
	args := []any{excludeID, bornAfter, bornBefore, limit}

	accounts := []models.Account{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &accounts, query, args...)

	logger.Log.Infow(
		"postgres query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(accounts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}

type AccountWriteRepository struct {
	db *sqlx.DB
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Create inserts a new account with default preferences. ErrDuplicate is
// returned when the phone is already registered.
func (r *AccountWriteRepository) Create(ctx context.Context, phone, passwordHash string, birthday *models.Date) error {
	const query = `
		INSERT INTO account (phone, password_hash, birthday, age_min, age_max, radius, created, updated)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{phone, passwordHash, birthday, models.DefaultAgeMin, models.DefaultAgeMax, models.DefaultRadius}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// The digest is left out of the log
	logger.Log.Infow(
		"postgres query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{phone, birthday},
		"result", rowsAffected,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// UpdatePasswordHash replaces the stored digest.
func (r *AccountWriteRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE account SET password_hash = $1, updated = NOW() WHERE id = $2`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, passwordHash, id)

	logger.Log.Infow(
		"postgres query",
		"query", query,
		"args", []any{id},
		"error", err,
	)

	return err
}

// UpdateFields applies set to the account row and refreshes updated.
func (r *AccountWriteRepository) UpdateFields(ctx context.Context, id int64, set []models.Assignment) error {
	clauses := make([]string, 0, len(set)+1)
	args := make([]any, 0, len(set)+1)
	logged := make([]any, 0, len(set)+1)

	for _, a := range set {
		if _, ok := updatableColumns[a.Column]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownColumn, a.Column)
		}
		args = append(args, a.Value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", a.Column, len(args)))
		if a.Column == "password_hash" {
			logged = append(logged, "***")
		} else {
			logged = append(logged, a.Value)
		}
	}
	clauses = append(clauses, "updated = NOW()")
	args = append(args, id)
	logged = append(logged, id)

	query := fmt.Sprintf("UPDATE account SET %s WHERE id = $%d", strings.Join(clauses, ", "), len(args))

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"postgres query",
		"query", query,
		"args", logged,
		"result", rowsAffected,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// ReplacePronouns deletes every pronoun row of the account and inserts one row
// per entry, preserving order.
func (r *AccountWriteRepository) ReplacePronouns(ctx context.Context, accountID int64, pronouns []models.PronounName) error {
	const deleteQuery = `DELETE FROM pronoun WHERE account_id = $1`
	const insertQuery = `INSERT INTO pronoun (account_id, name) VALUES ($1, $2)`

	exec := executor(ctx, r.db)

	res, err := exec.ExecContext(ctx, deleteQuery, accountID)
	var deleted int64
	if res != nil {
		deleted, _ = res.RowsAffected()
	}
	logger.Log.Infow(
		"postgres query",
		"query", deleteQuery,
		"args", []any{accountID},
		"result", deleted,
		"error", err,
	)
	if err != nil {
		return err
	}

	for _, p := range pronouns {
		_, err := exec.ExecContext(ctx, insertQuery, accountID, p)
		logger.Log.Infow(
			"postgres query",
			"query", insertQuery,
			"args", []any{accountID, p},
			"error", err,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
