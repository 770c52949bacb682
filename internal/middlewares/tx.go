package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/bloglist/internal/logger"
)

const internalErrorBody = `{"error":"something went wrong"}` + "\n"

// TxMiddleware runs the handler inside a database transaction. The response
// is held back until the transaction ends: it is committed when the handler
// answers below 400 and rolled back otherwise. Functions registered with
// AfterCommit run only after a successful commit, before the response is sent.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeInternalError(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, hooksKey, hooks)

			rw := &bufferedResponseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r.WithContext(ctx))

			if rw.status() >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				rw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeInternalError(w)
				return
			}
			for _, fn := range hooks.fns {
				fn(r.Context())
			}
			rw.flush()
		})
	}
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(internalErrorBody))
}

// bufferedResponseWriter records the status and body until flush.
type bufferedResponseWriter struct {
	http.ResponseWriter
	code int
	body bytes.Buffer
}

func (rw *bufferedResponseWriter) WriteHeader(code int) {
	if rw.code == 0 {
		rw.code = code
	}
}

func (rw *bufferedResponseWriter) Write(b []byte) (int, error) {
	if rw.code == 0 {
		rw.code = http.StatusOK
	}
	return rw.body.Write(b)
}

func (rw *bufferedResponseWriter) status() int {
	if rw.code == 0 {
		return http.StatusOK
	}
	return rw.code
}

func (rw *bufferedResponseWriter) flush() {
	rw.ResponseWriter.WriteHeader(rw.status())
	_, _ = rw.ResponseWriter.Write(rw.body.Bytes())
}

type hooksContextKey struct{}

var hooksKey = hooksContextKey{}

type commitHooks struct {
	fns []func(ctx context.Context)
}

// AfterCommit defers fn until the request transaction in ctx commits. It is
// dropped on rollback. Without a request transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if hooks, ok := ctx.Value(hooksKey).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn(ctx)
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
