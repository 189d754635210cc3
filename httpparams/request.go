package httpparams

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zostay/go-params/param"
	"github.com/zostay/go-params/params"
)

// FromRequest parses the query string and any URL encoded form body of r and
// returns them as Parameters.
func FromRequest(r *http.Request, opts ...Option) (*params.Parameters, error) {
	return newBuilder(opts).build(r)
}

func (b *builder) build(r *http.Request) (*params.Parameters, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("unable to parse request parameters: %w", err)
	}

	pb := params.New()
	if b.cmp != nil {
		pb.WithComparator(b.cmp)
	}

	raw := make(map[string]any, len(r.Form))
	for k, vs := range r.Form {
		var p param.Parameter = param.New(k, vs)
		if b.charset != "" {
			var err error
			p, err = param.Decode(p, b.charset)
			if err != nil {
				return nil, err
			}
		}
		raw[k] = p
	}

	ps := pb.WithExtraParams(raw).WithParent(b.parent).Build()

	if b.routeParams {
		ps.AppendAll(routeParams(r.Context()))
	}

	return ps.Remove(b.sensitive...), nil
}

// routeParams returns the URL parameters matched by chi, if any.
func routeParams(ctx context.Context) map[string]param.Parameter {
	rps := map[string]param.Parameter{}

	rctx := chi.RouteContext(ctx)
	if rctx == nil {
		return rps
	}

	for i, k := range rctx.URLParams.Keys {
		// chi records the "*" key for catch-all routes
		if k == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		rps[k] = param.New(k, rctx.URLParams.Values[i])
	}

	return rps
}
