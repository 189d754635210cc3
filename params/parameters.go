package params

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/zostay/go-params/param"
)

// Errors returned by Parameters.
var (
	// ErrIllegalMutation is returned by the Map mutators of Parameters. The
	// parameters are immutable through the Map interface.
	ErrIllegalMutation = errors.New("parameters are immutable")
)

// Parameters is an immutable, case-insensitive set of request parameters. Use
// a Builder to create one.
//
// Names are stored as given. If two names differ only by case, which Builder
// does not prevent, Get and Contains resolve to whichever is found first while
// ranging over the underlying map. Go randomizes that order, so which of the
// two wins is not defined.
//
// Parameters is not safe for concurrent use when Remove or AppendAll are
// involved.
type Parameters struct {
	ps map[string]param.Parameter
}

var _ Map = (*Parameters)(nil)

// Remove deletes every parameter whose name matches any of the given names
// ignoring case. It modifies the receiver in place and returns it.
func (p *Parameters) Remove(names ...string) *Parameters {
	for _, name := range names {
		for k := range p.ps {
			if strings.EqualFold(k, name) {
				delete(p.ps, k)
			}
		}
	}
	return p
}

// AppendAll adds the given parameters, replacing any existing parameter whose
// name matches one of the new names ignoring case. It modifies the receiver
// in place and returns it.
func (p *Parameters) AppendAll(newParams map[string]param.Parameter) *Parameters {
	names := make([]string, 0, len(newParams))
	for k := range newParams {
		names = append(names, k)
	}
	p.Remove(names...)

	for k, v := range newParams {
		p.ps[k] = v
	}
	return p
}

// Contains returns true if any parameter name matches the given name ignoring
// case.
func (p *Parameters) Contains(name string) bool {
	_, found := p.lookup(name)
	return found
}

// lookup performs the case-insensitive scan for name.
func (p *Parameters) lookup(name string) (param.Parameter, bool) {
	for k, v := range p.ps {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// Get returns the parameter whose name matches the given name ignoring case.
// If there is none, it returns a param.Empty with the given name.
func (p *Parameters) Get(name string) param.Parameter {
	if v, found := p.lookup(name); found {
		return v
	}
	return param.NewEmpty(name)
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	return len(p.ps)
}

// IsEmpty returns true if there are no parameters.
func (p *Parameters) IsEmpty() bool {
	return len(p.ps) == 0
}

// ContainsKey returns true if a parameter is stored under exactly key. Unlike
// Contains, the comparison is case-sensitive.
func (p *Parameters) ContainsKey(key string) bool {
	_, found := p.ps[key]
	return found
}

// ContainsValue returns true if the given parameter is one of the stored
// parameters.
func (p *Parameters) ContainsValue(v param.Parameter) bool {
	for _, pv := range p.ps {
		if pv == v {
			return true
		}
	}
	return false
}

// Keys returns the parameter names in sorted order. The slice is a fresh copy.
func (p *Parameters) Keys() []string {
	ks := make([]string, 0, len(p.ps))
	for k := range p.ps {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Values returns the parameters in no particular order. The slice is a fresh
// copy.
func (p *Parameters) Values() []param.Parameter {
	vs := make([]param.Parameter, 0, len(p.ps))
	for _, v := range p.ps {
		vs = append(vs, v)
	}
	return vs
}

// Entries returns the name and parameter pairs in no particular order. The
// slice is a fresh copy.
func (p *Parameters) Entries() []Entry {
	es := make([]Entry, 0, len(p.ps))
	for k, v := range p.ps {
		es = append(es, Entry{k, v})
	}
	return es
}

// Put always fails with ErrIllegalMutation.
func (p *Parameters) Put(string, param.Parameter) (param.Parameter, error) {
	return nil, fmt.Errorf("cannot put a value directly: %w", ErrIllegalMutation)
}

// Delete always fails with ErrIllegalMutation. Use Remove to strip parameters
// from a *Parameters.
func (p *Parameters) Delete(string) (param.Parameter, error) {
	return nil, fmt.Errorf("cannot remove a value directly: %w", ErrIllegalMutation)
}

// PutAll always fails with ErrIllegalMutation. Use AppendAll to add parameters
// to a *Parameters.
func (p *Parameters) PutAll(map[string]param.Parameter) error {
	return fmt.Errorf("cannot put values directly: %w", ErrIllegalMutation)
}

// Clear always fails with ErrIllegalMutation.
func (p *Parameters) Clear() error {
	return fmt.Errorf("cannot clear values directly: %w", ErrIllegalMutation)
}

// ToURLValues returns a copy of the parameters as url.Values, keeping every
// value of each parameter. Undefined parameters are left out.
func (p *Parameters) ToURLValues() url.Values {
	uv := make(url.Values, len(p.ps))
	for k, v := range p.ps {
		if !v.Defined() {
			continue
		}
		uv[k] = v.MultipleValues()
	}
	return uv
}

// String returns a debugging representation of the parameters. The format is
// not stable.
func (p *Parameters) String() string {
	vs := make(map[string][]string, len(p.ps))
	for k, v := range p.ps {
		vs[k] = v.MultipleValues()
	}
	return fmt.Sprint(vs)
}
