package params

import (
	"github.com/zostay/go-params/param"
)

// Entry is a single name and parameter pair held by a Map.
type Entry struct {
	Name      string
	Parameter param.Parameter
}

// Map is the read-only view of a parameter set. The Put, Delete, PutAll, and
// Clear methods exist so that a Map can stand in wherever a general mapping is
// expected, but they always fail with ErrIllegalMutation.
type Map interface {
	// Len returns the number of parameters.
	Len() int

	// IsEmpty returns true if there are no parameters.
	IsEmpty() bool

	// ContainsKey returns true only if a parameter is stored under exactly
	// the given name.
	ContainsKey(key string) bool

	// ContainsValue returns true if the given parameter is stored.
	ContainsValue(p param.Parameter) bool

	// Contains returns true if a parameter matches the name ignoring case.
	Contains(name string) bool

	// Get returns the parameter matching the name ignoring case, or a
	// param.Empty with that name.
	Get(name string) param.Parameter

	// Keys returns a sorted snapshot of the parameter names.
	Keys() []string

	// Values returns a snapshot of the parameters.
	Values() []param.Parameter

	// Entries returns a snapshot of the name and parameter pairs.
	Entries() []Entry

	// Put always fails with ErrIllegalMutation.
	Put(key string, p param.Parameter) (param.Parameter, error)

	// Delete always fails with ErrIllegalMutation.
	Delete(key string) (param.Parameter, error)

	// PutAll always fails with ErrIllegalMutation.
	PutAll(ps map[string]param.Parameter) error

	// Clear always fails with ErrIllegalMutation.
	Clear() error

	// String returns a debugging representation of the parameters.
	String() string
}
