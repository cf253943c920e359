package interp

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParagraphReader_Next(t *testing.T) {
	r, err := Paragraphs([]byte(`{\rtf1\ansi one\par two\par trailing}`))
	require.NoError(t, err)

	line, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	// The partial line is flushed once the tokens run out.
	line, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "trailing", line)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)

	// EOF is sticky.
	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParagraphReader_EmptyInput(t *testing.T) {
	r, err := Paragraphs(nil)
	require.NoError(t, err)

	lines, err := r.Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParagraphReader_FreshReaderIsDeterministic(t *testing.T) {
	src := []byte(`{\rtf1\ansi\ansicpg1252 alpha\par beta\par}`)

	first, err := Paragraphs(src)
	require.NoError(t, err)
	a, err := first.Lines()
	require.NoError(t, err)

	second, err := Paragraphs(src)
	require.NoError(t, err)
	b, err := second.Lines()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestParagraphReader_TokenizeErrorSurfaces(t *testing.T) {
	_, err := Paragraphs([]byte(`{\rtf1\ansi broken\`))
	assert.Error(t, err)
}
