package params

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/text/cases"

	"github.com/zostay/go-params/param"
)

// Comparator orders parameter names. It returns a negative number when a sorts
// before b, a positive number when a sorts after b, and zero when they are the
// same name.
type Comparator func(a, b string) int

// staging holds raw values until Build is called.
type staging interface {
	put(name string, value any)
	each(fn func(name string, value any))
}

// plainStaging is the unordered staging store.
type plainStaging map[string]any

func (s plainStaging) put(name string, value any) {
	s[name] = value
}

func (s plainStaging) each(fn func(string, any)) {
	for k, v := range s {
		fn(k, v)
	}
}

// orderedStaging keeps names ordered by a Comparator. Names the Comparator
// considers equal are stored once, with the last name and value put winning.
type orderedStaging struct {
	tm *treemap.Map
}

func newOrderedStaging(cmp Comparator) *orderedStaging {
	return &orderedStaging{
		tm: treemap.NewWith(func(a, b any) int {
			return cmp(a.(string), b.(string))
		}),
	}
}

func (s *orderedStaging) put(name string, value any) {
	s.tm.Put(name, value)
}

func (s *orderedStaging) each(fn func(string, any)) {
	s.tm.Each(func(k, v any) {
		fn(k.(string), v)
	})
}

// Builder stages raw parameter values and builds Parameters from them. A
// Builder is meant to be used once and thrown away.
type Builder struct {
	staged staging
	parent *Parameters
}

// Create returns a Builder staging a copy of the given raw parameters. Values
// may be anything accepted by param.New or may already be a param.Parameter.
func Create(raw map[string]any) *Builder {
	s := make(plainStaging, len(raw))
	for k, v := range raw {
		s[k] = v
	}
	return &Builder{staged: s}
}

// New returns a Builder with nothing staged.
func New() *Builder {
	return &Builder{staged: plainStaging{}}
}

// WithParent sets the parameters to start from when building. The staged
// parameters are laid on top of a copy of the parent's. A nil parent is
// ignored.
//
// Staged names replace parent names only when they match exactly. A staged
// "Page" and a parent "page" will both be present in the result. This differs
// from AppendAll, which replaces names ignoring case.
func (b *Builder) WithParent(parent *Parameters) *Builder {
	if parent != nil {
		b.parent = parent
	}
	return b
}

// WithExtraParams stages additional raw parameters, replacing any staged
// parameter with exactly the same name. A nil map is ignored.
func (b *Builder) WithExtraParams(raw map[string]any) *Builder {
	if raw != nil {
		for k, v := range raw {
			b.staged.put(k, v)
		}
	}
	return b
}

// WithComparator replaces the staging store with an empty one ordered by cmp.
// Anything staged before this call is discarded, so call it first. Names that
// cmp considers equal collapse into a single staged parameter, which makes a
// case-insensitive comparator a way to deduplicate names by case.
func (b *Builder) WithComparator(cmp Comparator) *Builder {
	b.staged = newOrderedStaging(cmp)
	return b
}

// Build returns new Parameters. It starts from a copy of the parent's
// parameters, if a parent was set, and then adds each staged value. A staged
// value that is already a param.Parameter is stored as-is. Any other value is
// wrapped with param.New.
func (b *Builder) Build() *Parameters {
	var ps map[string]param.Parameter
	if b.parent == nil {
		ps = map[string]param.Parameter{}
	} else {
		ps = make(map[string]param.Parameter, len(b.parent.ps))
		for k, v := range b.parent.ps {
			ps[k] = v
		}
	}

	b.staged.each(func(name string, value any) {
		if p, isParam := value.(param.Parameter); isParam {
			ps[name] = p
		} else {
			ps[name] = param.New(name, value)
		}
	})

	return &Parameters{ps}
}

// BuildNoNestedWrapping is the same as Build.
//
// Deprecated: Build never wraps a param.Parameter a second time. Use Build.
func (b *Builder) BuildNoNestedWrapping() *Parameters {
	return b.Build()
}

// CaseInsensitive is a Comparator that orders names after Unicode case
// folding, so "Page" and "PAGE" compare as equal.
func CaseInsensitive(a, b string) int {
	// a Caser keeps state, so each call gets its own
	return strings.Compare(cases.Fold().String(a), cases.Fold().String(b))
}
