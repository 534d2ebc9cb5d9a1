package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dashmachine/dashmachine-api/internal/logger"
)

// Transactor runs units of work inside a database transaction.
type Transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx begins a transaction, stores it in the context passed to fn and
// commits when fn returns nil. Any error or panic rolls the transaction back.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor returns the transaction bound to ctx, or db when there is none.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
