package httpparams_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zostay/go-params/httpparams"
	"github.com/zostay/go-params/params"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got *params.Parameters
	h := httpparams.Middleware(
		httpparams.WithSensitive("token"),
		httpparams.WithLogger(zap.NewNop()),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = httpparams.FromContext(r.Context())
		assert.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?Token=abc&q=go", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, []string{"q"}, got.Keys())
}

func TestMiddleware_BadRequest(t *testing.T) {
	t.Parallel()

	called := false
	h := httpparams.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.URL.RawQuery = "a=%zz"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestMiddleware_RouteParams(t *testing.T) {
	t.Parallel()

	var got *params.Parameters
	router := chi.NewRouter()
	router.With(httpparams.Middleware(httpparams.WithRouteParams())).
		Get("/users/{ID}/*", func(w http.ResponseWriter, r *http.Request) {
			got, _ = httpparams.FromContext(r.Context())
		})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/42/files?id=7&x=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, []string{"ID", "x"}, got.Keys())
	assert.Equal(t, "42", got.Get("id").Value())
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	ps, ok := httpparams.FromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, ps)
}
