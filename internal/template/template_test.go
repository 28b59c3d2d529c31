package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeader(t *testing.T) {
	out, err := NewManager().Render("header", struct{ Package string }{"units"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "// Code generated by aliasgen. DO NOT EDIT.")
	assert.Contains(t, string(out), "package units")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := NewManager().Render("no-such-template", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestNamedTemplatesExist(t *testing.T) {
	m := NewManager()
	for _, name := range []string{"header", "tag", "scalar", "pointer", "struct"} {
		assert.NotNil(t, m.templates.Lookup(name), "template %s", name)
	}
}
