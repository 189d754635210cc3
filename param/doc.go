// Package param provides the value type for a single HTTP request parameter.
// A Parameter has a name and zero, one, or many string values. Parameters are
// immutable: there is no way to change one in place.
//
// There are two implementations. A Request wraps the raw value that arrived
// with a request, which may be a string, a slice of strings, or anything else
// that can be formatted as a string. An Empty stands in for a parameter that
// was asked for but never set, so code reading parameters never needs to check
// for nil:
//
//	p := ps.Get("page")
//	if !p.Defined() {
//	  // use the default
//	}
//
// A handful of helpers are provided for interpreting a value as a date, an
// email address list, an integer, or a boolean, and for re-decoding values that
// arrived in a legacy character set.
package param
