package reservation

import (
	"context"
	"database/sql"

	"github.com/hotelpms/reservation-service/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces for database access so the repository works
// over *sql.DB and the metrics-wrapped handle alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
