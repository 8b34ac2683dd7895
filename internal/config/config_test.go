package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagehead.dev/pagehead/internal/meta"
)

func TestParseValid(t *testing.T) {
	reg, err := Parse([]byte(`
pages:
  - path: /
    fields:
      title: Pagehead
      description: Head metadata for every page
      og_type: website
  - path: /about
    fields:
      title: About
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/about"}, reg.Paths())

	rec, ok := reg.Lookup("/")
	require.True(t, ok)
	v, ok := rec.Get("og_type")
	require.True(t, ok)
	assert.Equal(t, "website", v)
}

func TestParseInvalidEnum(t *testing.T) {
	_, err := Parse([]byte(`
pages:
  - path: /
    fields:
      og_type: bogus
`))
	require.Error(t, err)
	var enumErr *meta.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "og_type", enumErr.Field)
	assert.Contains(t, err.Error(), "page /")
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte(`
pages:
  - path: /about
    fields:
      keywords: a,b,c
`))
	require.Error(t, err)
	var fieldErr *meta.UnknownFieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "keywords", fieldErr.Name)
}

func TestParseDuplicatePath(t *testing.T) {
	_, err := Parse([]byte(`
pages:
  - path: /
    fields:
      title: one
  - path: /
    fields:
      title: two
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParseMissingPath(t *testing.T) {
	_, err := Parse([]byte(`
pages:
  - fields:
      title: orphan
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing path")
}

func TestParseEmptyDocument(t *testing.T) {
	reg, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
}
