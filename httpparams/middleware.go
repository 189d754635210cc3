package httpparams

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/zostay/go-params/params"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying ps.
func NewContext(ctx context.Context, ps *params.Parameters) context.Context {
	return context.WithValue(ctx, contextKey{}, ps)
}

// FromContext returns the parameters stored by Middleware or NewContext.
func FromContext(ctx context.Context) (*params.Parameters, bool) {
	ps, ok := ctx.Value(contextKey{}).(*params.Parameters)
	return ps, ok
}

// Middleware builds Parameters for every request and stores them in the
// request context for FromContext. A request whose parameters cannot be
// parsed is answered with 400 Bad Request and is not passed on.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	b := newBuilder(opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ps, err := b.build(r)
			if err != nil {
				b.logger.Error("failed to build request parameters",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err))
				http.Error(w, "invalid request parameters", http.StatusBadRequest)
				return
			}

			b.logger.Debug("request parameters",
				zap.String("path", r.URL.Path),
				zap.Strings("names", ps.Keys()))

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), ps)))
		})
	}
}
