package config_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-params/config"
	"github.com/zostay/go-params/httpparams"
)

const testConfig = `
sensitive:
  - password
  - Token
charset: iso-8859-1
fold: true
defaults:
  limit: ["10"]
  sort: [asc]
`

func TestParse(t *testing.T) {
	t.Parallel()

	c, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"password", "Token"}, c.Sensitive)
	assert.Equal(t, "iso-8859-1", c.Charset)
	assert.True(t, c.Fold)
	assert.False(t, c.RouteParams)
	assert.Equal(t, map[string][]string{
		"limit": {"10"},
		"sort":  {"asc"},
	}, c.Defaults)

	_, err = config.Parse([]byte("sensitive: {"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "iso-8859-1", c.Charset)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Parent(t *testing.T) {
	t.Parallel()

	c := &config.Config{}
	assert.Nil(t, c.Parent())

	c.Defaults = map[string][]string{"limit": {"10"}}
	parent := c.Parent()
	require.NotNil(t, parent)
	assert.Equal(t, "10", parent.Get("LIMIT").Value())
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	c, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/?PASSWORD=x&name=caf%E9&Limit=5&limit=6", nil)
	ps, err := httpparams.FromRequest(r, c.Options()...)
	require.NoError(t, err)

	assert.False(t, ps.Contains("password"))
	assert.Equal(t, "café", ps.Get("name").Value())
	assert.Equal(t, "asc", ps.Get("sort").Value())
	assert.True(t, ps.Contains("limit"))
}
