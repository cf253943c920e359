package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestScope_WriteWithoutDestinationIsDropped(t *testing.T) {
	bank := NewMapBank()
	s := NewScope(bank)
	s.SetEncoding(charmap.Windows1252)

	require.NoError(t, s.Write([]byte("stray"), nil))
	assert.Empty(t, bank.Names())
}

func TestScope_WriteUsesOwnEncoding(t *testing.T) {
	bank := NewMapBank()
	s := NewScope(bank)
	s.SetCodepage(1252)
	s.SetDestination("comment", true)

	require.NoError(t, s.Write([]byte{0x97}, nil))

	text, ok := bank.ReadText("comment", nil)
	require.True(t, ok)
	assert.Equal(t, "—", text)
}

func TestScope_WriteOverrideEncodingWins(t *testing.T) {
	bank := NewMapBank()
	s := NewScope(bank)
	s.SetCodepage(1252)
	s.SetDestination("comment", true)

	// 0x97 is an em dash in cp1252 but a horizontal line in cp437.
	require.NoError(t, s.Write([]byte{0x97}, charmap.CodePage437))

	text, ok := bank.ReadText("comment", nil)
	require.True(t, ok)
	assert.Equal(t, "ù", text)
}

func TestScope_Clone(t *testing.T) {
	bank := NewMapBank()
	parent := NewScope(bank)
	parent.SetCodepage(1252)
	parent.SetDestination("comment", true)
	parent.SetValue("f", IntValue(2))

	child := parent.Clone()

	// The child starts with the parent's state.
	dest, ok := child.Destination()
	require.True(t, ok)
	assert.Equal(t, "comment", dest)
	assert.Equal(t, parent.Encoding(), child.Encoding())

	v, ok := child.Value("f")
	require.True(t, ok)
	assert.Equal(t, 2, v.Int)

	// Value changes in the child never leak back to the parent.
	child.SetValue("f", IntValue(9))
	v, _ = parent.Value("f")
	assert.Equal(t, 2, v.Int)

	// The bank is shared: the child's writes land in the same buffers.
	require.NoError(t, child.Write([]byte("shared"), nil))
	text, ok := bank.ReadText("comment", nil)
	require.True(t, ok)
	assert.Equal(t, "shared", text)
}

func TestScope_SetDestinationResetsContent(t *testing.T) {
	bank := NewMapBank()
	s := NewScope(bank)
	s.SetCodepage(1252)

	s.SetDestination("comment", true)
	require.NoError(t, s.Write([]byte("first"), nil))

	// Revisiting a destination restarts its buffer.
	s.SetDestination("comment", true)
	require.NoError(t, s.Write([]byte("second"), nil))

	text, ok := bank.ReadText("comment", nil)
	require.True(t, ok)
	assert.Equal(t, "second", text)
}

func TestScope_SetCodepageUnknownClearsEncoding(t *testing.T) {
	s := NewScope(NewMapBank())
	s.SetCodepage(1252)
	require.NotNil(t, s.Encoding())

	s.SetCodepage(99999)
	assert.Nil(t, s.Encoding())
}

func TestScope_TakeIgnoreNextIsOneShot(t *testing.T) {
	s := NewScope(NewMapBank())

	assert.False(t, s.takeIgnoreNext())

	s.SetIgnoreNext()
	assert.True(t, s.takeIgnoreNext())
	assert.False(t, s.takeIgnoreNext())
}
