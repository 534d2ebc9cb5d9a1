package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dashmachine/dashmachine-api/internal/models"
)

func TestAccountReadRepository_GetByPhone_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT .* FROM account WHERE phone = \$1`).
		WithArgs("+15550000000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	account, err := NewAccountReadRepository(db).GetByPhone(context.Background(), "+15550000000")

	assert.NoError(t, err)
	assert.Nil(t, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO account`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := NewAccountWriteRepository(db).Create(context.Background(), "+15551234567", "digest", nil)

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_UpdateFields(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE account SET first_name = $1, name = $2, updated = NOW() WHERE id = $3`)).
		WithArgs("Sam", "Sam Lee", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewAccountWriteRepository(db).UpdateFields(context.Background(), 7, []models.Assignment{
		{Column: "first_name", Value: "Sam"},
		{Column: "name", Value: "Sam Lee"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_UpdateFields_OnlyTimestamp(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE account SET updated = NOW() WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewAccountWriteRepository(db).UpdateFields(context.Background(), 7, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_UpdateFields_UnknownColumn(t *testing.T) {
	db, mock := newMockDB(t)

	err := NewAccountWriteRepository(db).UpdateFields(context.Background(), 7, []models.Assignment{
		{Column: "phone", Value: "+15559999999"},
	})

	assert.ErrorIs(t, err, ErrUnknownColumn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_ReplacePronouns(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM pronoun WHERE account_id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO pronoun`).
		WithArgs(int64(3), models.PronounThey).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO pronoun`).
		WithArgs(int64(3), models.PronounThem).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	repo := NewAccountWriteRepository(db)
	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.ReplacePronouns(ctx, 3, []models.PronounName{models.PronounThey, models.PronounThem})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_ReplacePronouns_InsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM pronoun`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO pronoun`).WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	repo := NewAccountWriteRepository(db)
	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.ReplacePronouns(ctx, 3, []models.PronounName{models.PronounShe})
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func setupAccountPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema, err := os.ReadFile("../../migrations/0001_init.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestAccountRepositories_Postgres(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	reader := NewAccountReadRepository(db)
	writer := NewAccountWriteRepository(db)
	transactor := NewTransactor(db)

	birthday := models.NewDate(1995, time.May, 1)
	require.NoError(t, writer.Create(ctx, "+15551234567", "digest", &birthday))

	t.Run("DuplicatePhone", func(t *testing.T) {
		err := writer.Create(ctx, "+15551234567", "other", nil)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Defaults", func(t *testing.T) {
		account, err := reader.GetByPhone(ctx, "+15551234567")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "digest", account.PasswordHash)
		assert.Equal(t, models.DefaultAgeMin, account.AgeMin)
		assert.Equal(t, models.DefaultAgeMax, account.AgeMax)
		assert.Equal(t, models.DefaultRadius, account.Radius)
		assert.Empty(t, account.Pronouns)
		assert.Nil(t, account.Location())
	})

	t.Run("UpdateInTransaction", func(t *testing.T) {
		account, err := reader.GetByPhone(ctx, "+15551234567")
		require.NoError(t, err)

		err = transactor.WithinTx(ctx, func(ctx context.Context) error {
			locked, err := reader.GetByIDForUpdate(ctx, account.ID)
			if err != nil {
				return err
			}
			if err := writer.ReplacePronouns(ctx, locked.ID, []models.PronounName{models.PronounShe, models.PronounHer}); err != nil {
				return err
			}
			if err := writer.ReplacePronouns(ctx, locked.ID, []models.PronounName{models.PronounThey}); err != nil {
				return err
			}
			return writer.UpdateFields(ctx, locked.ID, []models.Assignment{
				{Column: "first_name", Value: "Sam"},
				{Column: "name", Value: "Sam Lee"},
				{Column: "lat", Value: 40.7128},
				{Column: "lng", Value: -74.006},
				{Column: "city", Value: "New York City"},
				{Column: "state", Value: "New York"},
			})
		})
		require.NoError(t, err)

		updated, err := reader.GetByPhone(ctx, "+15551234567")
		require.NoError(t, err)
		assert.Equal(t, []models.PronounName{models.PronounThey}, updated.Pronouns)
		assert.Equal(t, "Sam Lee", *updated.Name)
		assert.Equal(t, []float64{-74.006, 40.7128}, updated.Location())
		assert.Equal(t, "New York City", *updated.City)
		assert.True(t, !updated.Updated.Before(account.Updated))
	})

	t.Run("RollbackKeepsState", func(t *testing.T) {
		account, err := reader.GetByPhone(ctx, "+15551234567")
		require.NoError(t, err)

		boom := errors.New("boom")
		err = transactor.WithinTx(ctx, func(ctx context.Context) error {
			if err := writer.ReplacePronouns(ctx, account.ID, nil); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		after, err := reader.GetByPhone(ctx, "+15551234567")
		require.NoError(t, err)
		assert.Equal(t, account.Pronouns, after.Pronouns)
	})

	t.Run("ListByBirthdayRange", func(t *testing.T) {
		older := models.NewDate(1970, time.January, 1)
		require.NoError(t, writer.Create(ctx, "+15557654321", "digest", &birthday))
		require.NoError(t, writer.Create(ctx, "+15550001111", "digest", &older))

		self, err := reader.GetByPhone(ctx, "+15551234567")
		require.NoError(t, err)

		list, err := reader.ListByBirthdayRange(ctx, self.ID,
			time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 50)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "+15557654321", list[0].Phone)
	})

	t.Run("PasswordHash", func(t *testing.T) {
		account, err := reader.GetByPhone(ctx, "+15551234567")
		require.NoError(t, err)

		require.NoError(t, writer.UpdatePasswordHash(ctx, account.ID, "new-digest"))

		after, err := reader.GetByPhone(ctx, "+15551234567")
		require.NoError(t, err)
		assert.Equal(t, "new-digest", after.PasswordHash)
	})
}
