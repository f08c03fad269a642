package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// PostgreSQL SQLSTATE codes.
const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when there is one, otherwise the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a query collapsed onto a single line with its args, result and error.
func logQuery(log *zap.SugaredLogger, query string, args []any, result any, err error) {
	log.Infow("executed query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// isUsernameConflict reports a write that lost against a concurrent insert of the same
// username. Inside a serializable transaction that has already read the username,
// PostgreSQL reports the conflict as a serialization failure rather than a unique violation.
func isUsernameConflict(err error) bool {
	return hasCode(err, uniqueViolation) || hasCode(err, serializationFailure)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
