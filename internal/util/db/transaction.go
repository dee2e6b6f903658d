package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github/chapool/go-transfer/internal/util"
)

type TxFn func(boil.ContextExecutor) error

// WithTransaction runs f inside a transaction, committing when f returns nil
// and rolling back otherwise. Panics are rolled back and re-raised.
func WithTransaction(ctx context.Context, db *sql.DB, f TxFn) error {
	return WithConfiguredTransaction(ctx, db, nil, f)
}

func WithConfiguredTransaction(ctx context.Context, db *sql.DB, options *sql.TxOptions, f TxFn) (err error) {
	tx, err := db.BeginTx(ctx, options)
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to start transaction")
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			util.LogFromContext(ctx).Error().Interface("p", p).Msg("Recovered from panic, rolling back transaction and panicking again")

			if txErr := tx.Rollback(); txErr != nil {
				util.LogFromContext(ctx).Warn().Err(txErr).Msg("Failed to roll back transaction after recovering from panic")
			}

			panic(p)
		} else if err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Received error, rolling back transaction")

			if txErr := tx.Rollback(); txErr != nil {
				util.LogFromContext(ctx).Warn().Err(txErr).Msg("Failed to roll back transaction after receiving error")
			}
		} else {
			err = tx.Commit()
			if err != nil {
				util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to commit transaction")
			}
		}
	}()

	return f(tx)
}
