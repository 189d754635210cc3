package param

import (
	"fmt"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// DecodeString converts s from the named character set into UTF-8. Any charset
// known to the IANA index is accepted.
func DecodeString(charset, s string) (string, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return "", err
	}

	if e == nil {
		return "", fmt.Errorf("no encoding found for charset %q", charset)
	}

	return e.NewDecoder().String(s)
}

// Decode returns a new Request parameter with every value of p converted from
// the named character set into UTF-8. An undefined parameter is returned as-is.
//
// Form values are percent-decoded into raw bytes, so a client posting in a
// legacy charset such as ISO-8859-1 produces strings that are not valid UTF-8
// until they are passed through here.
func Decode(p Parameter, charset string) (Parameter, error) {
	if !p.Defined() {
		return p, nil
	}

	vs := p.MultipleValues()
	for i, v := range vs {
		dv, err := DecodeString(charset, v)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name(), err)
		}
		vs[i] = dv
	}

	if len(vs) == 1 {
		if _, isString := p.Object().(string); isString {
			return New(p.Name(), vs[0]), nil
		}
	}

	return New(p.Name(), vs), nil
}
