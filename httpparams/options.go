package httpparams

import (
	"go.uber.org/zap"

	"github.com/zostay/go-params/params"
)

type builder struct {
	parent      *params.Parameters
	sensitive   []string
	charset     string
	routeParams bool
	cmp         params.Comparator
	logger      *zap.Logger
}

func newBuilder(opts []Option) *builder {
	b := &builder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Option refers to options that may be passed to FromRequest or Middleware.
type Option func(b *builder)

// WithParent is an Option that starts every request's parameters from a copy
// of the given parameters. Request parameters with exactly the same name
// replace the parent's.
func WithParent(parent *params.Parameters) Option {
	return func(b *builder) { b.parent = parent }
}

// WithSensitive is an Option naming parameters to strip before the parameters
// are handed on. The names are matched ignoring case. It may be given more
// than once.
func WithSensitive(names ...string) Option {
	return func(b *builder) { b.sensitive = append(b.sensitive, names...) }
}

// WithCharset is an Option that decodes every request value from the named
// character set into UTF-8. It is only needed for clients that post in a
// legacy charset.
func WithCharset(charset string) Option {
	return func(b *builder) { b.charset = charset }
}

// WithRouteParams is an Option that merges the URL parameters matched by a
// chi router into the request parameters. A route parameter replaces any
// request parameter with the same name ignoring case.
func WithRouteParams() Option {
	return func(b *builder) { b.routeParams = true }
}

// WithComparator is an Option that orders the staged request parameters with
// cmp. Names that cmp considers equal are merged, the last one winning.
func WithComparator(cmp params.Comparator) Option {
	return func(b *builder) { b.cmp = cmp }
}

// WithLogger is an Option that sets the logger used by Middleware. The default
// logs nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(b *builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}
