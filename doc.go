// Package params is the root of go-params, a small library for dealing with
// HTTP request parameters whose names should be matched without regard to
// case.
//
// The code is split up as follows:
//
//   - param holds the Parameter value type, which wraps the raw value of a
//     single request parameter, and the Empty stand-in returned for parameters
//     that were never set.
//   - params holds Parameters, the immutable case-insensitive set, and the
//     Builder used to layer request values over a parent set.
//   - httpparams builds Parameters from an *http.Request and provides
//     middleware that stores them in the request context.
//   - config loads YAML settings for httpparams.
//
// The tools/paramctl command can be used to try all of this out from the
// command line.
package params
