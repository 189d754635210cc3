// Package params provides Parameters, an immutable set of HTTP request
// parameters whose names are matched without regard to case, and a Builder for
// constructing one.
//
// Names keep the casing they arrived with, but Contains, Get, and Remove all
// compare names case-insensitively:
//
//	ps := params.Create(map[string]any{"Page": "2"}).Build()
//	ps.Get("page").Value() // "2"
//
// A missing parameter is never an error. Get returns a param.Empty carrying
// the requested name instead.
//
// Code that only reads parameters should accept a Map. The mutating methods of
// Map always fail with ErrIllegalMutation. Pipeline code that needs to strip or
// add parameters before handing them on holds the concrete *Parameters, which
// provides Remove and AppendAll.
package params
