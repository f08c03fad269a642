package middlewares

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	// maxTxAttempts bounds how often a request is replayed after a serialization failure.
	maxTxAttempts = 3

	serializationFailure = "40001"
)

// TxMiddleware runs the request inside one serializable transaction. Repositories
// pick the transaction up with GetTxFromContext. The response is buffered until the
// transaction ends: a 5xx from the handler rolls it back, a commit that fails with a
// serialization failure replays the request in a fresh transaction, and any other
// failed commit turns the response into a 500.
func TxMiddleware(db *sqlx.DB, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := RequestIDFromContext(r.Context())

			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Errorw("failed to read request body", "request_id", reqID, "error", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			for attempt := 1; ; attempt++ {
				r.Body = io.NopCloser(bytes.NewReader(body))

				bw, err := serveInTx(db, next, r, log)
				if err == nil {
					bw.flush(w)
					return
				}

				if isSerializationFailure(err) && attempt < maxTxAttempts {
					log.Warnw("retrying request after serialization failure", "request_id", reqID, "attempt", attempt)
					continue
				}

				log.Errorw("transaction failed", "request_id", reqID, "attempt", attempt, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		})
	}
}

// serveInTx runs next in a new serializable transaction and returns its buffered response.
func serveInTx(db *sqlx.DB, next http.Handler, r *http.Request, log *zap.SugaredLogger) (*bufferedWriter, error) {
	tx, err := db.BeginTxx(r.Context(), &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	bw := &bufferedWriter{header: make(http.Header), statusCode: http.StatusOK}
	next.ServeHTTP(bw, r.WithContext(setTxToContext(r.Context(), tx)))

	if bw.statusCode >= http.StatusInternalServerError {
		if err := tx.Rollback(); err != nil {
			log.Errorw("failed to roll back transaction", "request_id", RequestIDFromContext(r.Context()), "error", err)
		}
		return bw, nil
	}

	if err := tx.Commit(); err != nil {
		// A statement already failed and the handler answered with a client error;
		// PostgreSQL turns the commit of such a transaction into a rollback.
		if errors.Is(err, pgx.ErrTxCommitRollback) && bw.statusCode >= http.StatusBadRequest {
			return bw, nil
		}
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return bw, nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == serializationFailure
}

// bufferedWriter holds the handler response until the transaction outcome is known.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header { return bw.header }

func (bw *bufferedWriter) WriteHeader(code int) { bw.statusCode = code }

func (bw *bufferedWriter) Write(b []byte) (int, error) { return bw.body.Write(b) }

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range bw.header {
		w.Header()[k] = v
	}
	w.WriteHeader(bw.statusCode)
	_, _ = w.Write(bw.body.Bytes())
}

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var txKey = contextKey{"tx"}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
