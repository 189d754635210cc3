package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/zostay/go-params/config"
	"github.com/zostay/go-params/param"
	"github.com/zostay/go-params/params"
)

// fromQuery builds parameters from a query string, applying the charset from
// c. Defaults are left to mergeQueries so they never replace query values.
func fromQuery(c *config.Config, query string) (*params.Parameters, error) {
	vs, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return nil, fmt.Errorf("unable to parse query %q: %w", query, err)
	}

	b := params.New()
	if c.Fold {
		b.WithComparator(params.CaseInsensitive)
	}

	raw := make(map[string]any, len(vs))
	for k, v := range vs {
		var p param.Parameter = param.New(k, v)
		if c.Charset != "" {
			p, err = param.Decode(p, c.Charset)
			if err != nil {
				return nil, err
			}
		}
		raw[k] = p
	}

	return b.WithExtraParams(raw).Build(), nil
}

// mergeQueries builds parameters from each query in turn, with later queries
// replacing names from earlier ones ignoring case. Sensitive names are removed
// from the result.
func mergeQueries(c *config.Config, queries []string) (*params.Parameters, error) {
	ps := params.New().WithParent(c.Parent()).Build()
	for _, q := range queries {
		qps, err := fromQuery(c, q)
		if err != nil {
			return nil, err
		}

		add := make(map[string]param.Parameter, qps.Len())
		for _, e := range qps.Entries() {
			add[e.Name] = e.Parameter
		}
		ps.AppendAll(add)
	}

	return ps.Remove(c.Sensitive...), nil
}

// values returns the parameters as a map of name to values.
func values(ps params.Map) map[string][]string {
	out := make(map[string][]string, ps.Len())
	for _, e := range ps.Entries() {
		out[e.Name] = e.Parameter.MultipleValues()
	}
	return out
}

// render writes one "name = value" line per parameter in name order.
func render(ps params.Map) string {
	vs := values(ps)
	buf := &strings.Builder{}
	for _, k := range ps.Keys() {
		_, _ = fmt.Fprintf(buf, "%s = %s\n", k, strings.Join(vs[k], ", "))
	}
	return buf.String()
}
