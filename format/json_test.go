package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(sampleTree()))

	tree, err := DecodeJSON(&buf)
	require.NoError(t, err)

	assert.Equal(t, "official", tree.SrcNamespace)
	assert.Equal(t, []string{"intermediary", "named"}, tree.DstNamespaces)

	c := tree.Class("a")
	require.NotNil(t, c)
	assert.Equal(t, "com/example/Foo", c.DstName(1))
	assert.Equal(t, "A class.", c.Comment)

	m := c.Method("c", "(La;J)V")
	require.NotNil(t, m)
	require.NotNil(t, m.Arg(0, -1))
	assert.Equal(t, "self", m.Arg(0, -1).DstName(1))
	assert.Equal(t, "tmp", m.Var(-7, 4, 12).DstName(1))
}

func TestJSONWriterMatchesEncoder(t *testing.T) {
	var direct, visited bytes.Buffer
	require.NoError(t, NewJSONEncoder(&direct).Encode(sampleTree()))
	require.NoError(t, sampleTree().Accept(NewJSONWriter(&visited)))

	assert.JSONEq(t, direct.String(), visited.String())
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"srcNamespace":"a","bogus":1}`))
	assert.Error(t, err)
}

func TestNewWriter(t *testing.T) {
	assert.Equal(t, []string{"json", "tiny2"}, Names())

	v, err := NewWriter("tiny2", &bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &Tiny2Writer{}, v)

	v, err = NewWriter("json", &bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, v)

	_, err = NewWriter("proguard", &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown format: proguard")
}

func TestJSONWriterResetStartsFreshTree(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	require.NoError(t, sampleTree().Accept(w))
	w.Reset()
	assert.Empty(t, w.Classes)
}
