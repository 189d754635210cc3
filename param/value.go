package param

import (
	"fmt"
	"html"
)

// Parameter represents a single request parameter.
type Parameter interface {
	// Name returns the name of the parameter as it was given.
	Name() string

	// Value returns the first value of the parameter or an empty string if the
	// parameter has no value.
	Value() string

	// MultipleValues returns every value of the parameter. It returns an empty
	// slice if the parameter has no value.
	MultipleValues() []string

	// Defined returns true if the parameter was set.
	Defined() bool

	// Multiple returns true if the parameter carries more than one value.
	Multiple() bool

	// Object returns the raw value that was wrapped, or nil.
	Object() any

	// String returns Value() with HTML special characters escaped.
	String() string
}

// Request is a Parameter wrapping a raw value supplied with a request.
type Request struct {
	name  string
	value any
	vs    []string
}

var _ Parameter = (*Request)(nil)

// New wraps the given raw value in a Request parameter. The value may be a
// string, a []string, a []any, or any other value, which will be formatted
// with fmt.Sprint. A nil value results in an undefined parameter.
func New(name string, value any) *Request {
	return &Request{
		name:  name,
		value: value,
		vs:    toStrings(value),
	}
}

// toStrings converts the raw value into the string values it represents.
func toStrings(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		return []string{v}
	case []string:
		vs := make([]string, len(v))
		copy(vs, v)
		return vs
	case []any:
		vs := make([]string, len(v))
		for i := range v {
			vs[i] = fmt.Sprint(v[i])
		}
		return vs
	default:
		return []string{fmt.Sprint(v)}
	}
}

// Name returns the name of the parameter.
func (r *Request) Name() string {
	return r.name
}

// Value returns the first value of the parameter.
func (r *Request) Value() string {
	if len(r.vs) == 0 {
		return ""
	}
	return r.vs[0]
}

// MultipleValues returns a copy of all the values of the parameter.
func (r *Request) MultipleValues() []string {
	vs := make([]string, len(r.vs))
	copy(vs, r.vs)
	return vs
}

// Defined returns true unless the wrapped value is nil.
func (r *Request) Defined() bool {
	return r.value != nil
}

// Multiple returns true if the parameter has more than one value.
func (r *Request) Multiple() bool {
	return len(r.vs) > 1
}

// Object returns the raw value as it was passed to New.
func (r *Request) Object() any {
	return r.value
}

// String returns the first value, HTML escaped.
func (r *Request) String() string {
	return html.EscapeString(r.Value())
}

// Empty is the Parameter returned when looking up a parameter that has not been
// set. It carries the name that was asked for and nothing else.
type Empty struct {
	name string
}

var _ Parameter = (*Empty)(nil)

// NewEmpty returns an Empty parameter with the given name.
func NewEmpty(name string) *Empty {
	return &Empty{name}
}

// Name returns the name that was looked up.
func (e *Empty) Name() string { return e.name }

// Value always returns an empty string.
func (e *Empty) Value() string { return "" }

// MultipleValues always returns an empty slice.
func (e *Empty) MultipleValues() []string { return []string{} }

// Defined always returns false.
func (e *Empty) Defined() bool { return false }

// Multiple always returns false.
func (e *Empty) Multiple() bool { return false }

// Object always returns nil.
func (e *Empty) Object() any { return nil }

// String always returns an empty string.
func (e *Empty) String() string { return "" }
