package param

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"
)

// Errors returned by the value helpers.
var (
	// ErrUndefined is returned when a helper is asked to interpret a parameter
	// that has no value.
	ErrUndefined = errors.New("parameter is not defined")
)

// UnixDateWithEarlyYear is a date layout seen in the wild that the usual
// parsers have trouble with.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// dateLayouts are tried in order by ParseTime. Form fields filled in by
// people arrive in all sorts of shapes, so RFC 5322 comes first and the rest
// fall back to guessing.
var dateLayouts = []func(string) (time.Time, error){
	mail.ParseDate,
	func(v string) (time.Time, error) {
		return dateparse.ParseAny(v)
	},
	func(v string) (time.Time, error) {
		return time.Parse(UnixDateWithEarlyYear, v)
	},
}

// ParseTime parses a parameter value as a date. The first layout in
// dateLayouts that accepts v wins.
func ParseTime(v string) (time.Time, error) {
	for _, parse := range dateLayouts {
		if t, err := parse(v); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("value %q is not a recognized date", v)
}

// Time returns the value of the parameter as a time.Time. See ParseTime for the
// formats accepted. It returns ErrUndefined if the parameter has no value.
func Time(p Parameter) (time.Time, error) {
	if !p.Defined() {
		return time.Time{}, ErrUndefined
	}

	t, err := ParseTime(p.Value())
	if err != nil {
		return t, fmt.Errorf("parameter %q: %w", p.Name(), err)
	}

	return t, nil
}

// AddressList returns the value of the parameter parsed as an email address
// list. The parse is strict, which suits validation of user input. It returns
// ErrUndefined if the parameter has no value.
func AddressList(p Parameter) (addr.AddressList, error) {
	if !p.Defined() {
		return nil, ErrUndefined
	}

	al, err := addr.ParseEmailAddressList(p.Value())
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", p.Name(), err)
	}

	return al, nil
}

// Int returns the value of the parameter parsed as a base 10 integer.
func Int(p Parameter) (int, error) {
	if !p.Defined() {
		return 0, ErrUndefined
	}

	n, err := strconv.Atoi(p.Value())
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", p.Name(), err)
	}

	return n, nil
}

// Bool returns the value of the parameter parsed with strconv.ParseBool.
func Bool(p Parameter) (bool, error) {
	if !p.Defined() {
		return false, ErrUndefined
	}

	b, err := strconv.ParseBool(p.Value())
	if err != nil {
		return false, fmt.Errorf("parameter %q: %w", p.Name(), err)
	}

	return b, nil
}
