package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-params/param"
)

func TestNew(t *testing.T) {
	t.Parallel()

	p := param.New("color", "blue")
	assert.Equal(t, "color", p.Name())
	assert.Equal(t, "blue", p.Value())
	assert.Equal(t, []string{"blue"}, p.MultipleValues())
	assert.True(t, p.Defined())
	assert.False(t, p.Multiple())
	assert.Equal(t, "blue", p.Object())

	p = param.New("color", []string{"red", "green"})
	assert.Equal(t, "red", p.Value())
	assert.Equal(t, []string{"red", "green"}, p.MultipleValues())
	assert.True(t, p.Multiple())

	p = param.New("page", 3)
	assert.Equal(t, "3", p.Value())
	assert.Equal(t, 3, p.Object())

	p = param.New("mixed", []any{1, "two", true})
	assert.Equal(t, []string{"1", "two", "true"}, p.MultipleValues())

	p = param.New("nothing", nil)
	assert.False(t, p.Defined())
	assert.Equal(t, "", p.Value())
	assert.Equal(t, []string{}, p.MultipleValues())
}

func TestRequest_MultipleValuesIsCopy(t *testing.T) {
	t.Parallel()

	raw := []string{"a", "b"}
	p := param.New("x", raw)
	raw[0] = "changed"
	assert.Equal(t, "a", p.Value())

	vs := p.MultipleValues()
	vs[0] = "changed"
	assert.Equal(t, "a", p.Value())
}

func TestRequest_String(t *testing.T) {
	t.Parallel()

	p := param.New("q", `<script>alert("x")</script>`)
	assert.Equal(t, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;", p.String())
	assert.Equal(t, `<script>alert("x")</script>`, p.Value())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	var p param.Parameter = param.NewEmpty("missing")
	assert.Equal(t, "missing", p.Name())
	assert.Equal(t, "", p.Value())
	assert.Equal(t, []string{}, p.MultipleValues())
	assert.False(t, p.Defined())
	assert.False(t, p.Multiple())
	assert.Nil(t, p.Object())
	assert.Equal(t, "", p.String())
}
