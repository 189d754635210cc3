// Package httpparams builds params.Parameters from incoming HTTP requests. It
// can be used directly with FromRequest or as net/http middleware, which makes
// the parameters available to handlers through FromContext.
package httpparams
