package common

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github/chapool/go-transfer/internal/util"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeReadiness checks the database is reachable within timeout.
func ProbeReadiness(ctx context.Context, database *sql.DB, timeout time.Duration) []string {
	log := util.LogFromContext(ctx)

	if database == nil {
		return []string{"Database is not initialized."}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("Readiness probe failed to ping database")
		return []string{fmt.Sprintf("Database ping failed: %v", err)}
	}

	return nil
}

// ProbeLiveness runs the readiness checks and additionally requires at least
// one network node to answer within timeout.
func ProbeLiveness(ctx context.Context, database *sql.DB, network Pinger, timeout time.Duration) []string {
	errs := ProbeReadiness(ctx, database, timeout)

	if network == nil {
		return append(errs, "Network client is not initialized.")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := network.Ping(ctx); err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("Liveness probe failed to reach network")
		errs = append(errs, fmt.Sprintf("Network ping failed: %v", err))
	}

	return errs
}
