// Package interp reduces a tokenized RTF stream to plain text lines.
//
// The interpreter routes literal bytes into named destination buffers
// according to the currently open group's state. The reserved "rtf"
// destination holds visible body text and is split into lines; other
// destinations accumulate auxiliary data such as field instructions and
// field results.
package interp

import (
	"errors"

	"golang.org/x/text/encoding"
)

// Reserved destination names with special interpreter behavior.
const (
	// bodyDestination collects visible document text.
	bodyDestination = "rtf"
	// fieldResultDestination holds the display text of a field; it is
	// promoted into the enclosing group when the field's group closes.
	fieldResultDestination = "fldrslt"
)

var (
	// ErrWrongKind reports an append of text to a byte destination or
	// bytes to a text destination. It can only arise from a
	// classification bug, never from malformed input, so it aborts the
	// parse of the current document.
	ErrWrongKind = errors.New("destination kind mismatch")

	// ErrNoEncoding reports a write to the body destination with no
	// active character encoding. The body destination always requires
	// one; other destinations drop such writes instead.
	ErrNoEncoding = errors.New("no active encoding for body destination")

	// ErrClassification reports an internally inconsistent control
	// classification, e.g. a name classed as a character producer with
	// no byte mapping.
	ErrClassification = errors.New("control classification mismatch")
)

// Bank is a named collection of growable destination buffers. One Bank
// is shared by every scope for the lifetime of a single document parse.
type Bank interface {
	// Names returns the currently created destination names.
	Names() []string
	// CreateText creates (or recreates, emptying) a text destination.
	CreateText(name string)
	// CreateBytes creates (or recreates, emptying) a byte destination.
	CreateBytes(name string)
	// Write appends bytes to the named destination, decoding with enc
	// if the destination holds text. Writing to an unknown name is a
	// no-op; writing text with a nil encoding drops the write.
	Write(name string, p []byte, enc encoding.Encoding) error
	// ReadText returns a copy of the named destination's accumulated
	// text. Byte destinations are decoded with enc when given;
	// otherwise the read reports no value.
	ReadText(name string, enc encoding.Encoding) (string, bool)
}

type destKind int

const (
	destText destKind = iota
	destBytes
)

// destination is one accumulating buffer, holding exactly one of
// decoded text or raw bytes.
type destination struct {
	kind destKind
	text []byte // UTF-8, valid for destText
	raw  []byte // valid for destBytes
}

func (d *destination) appendText(s string) error {
	if d.kind != destText {
		return ErrWrongKind
	}
	d.text = append(d.text, s...)
	return nil
}

func (d *destination) appendBytes(p []byte) error {
	if d.kind != destBytes {
		return ErrWrongKind
	}
	d.raw = append(d.raw, p...)
	return nil
}

// MapBank is the basic Bank backed by a name-to-buffer map.
type MapBank struct {
	dests map[string]*destination
}

// NewMapBank returns an empty bank.
func NewMapBank() *MapBank {
	return &MapBank{dests: make(map[string]*destination)}
}

// Names returns the created destination names in no particular order.
func (b *MapBank) Names() []string {
	names := make([]string, 0, len(b.dests))
	for name := range b.dests {
		names = append(names, name)
	}
	return names
}

// CreateText creates an empty text destination, replacing any previous
// buffer under the same name.
func (b *MapBank) CreateText(name string) {
	b.dests[name] = &destination{kind: destText}
}

// CreateBytes creates an empty byte destination, replacing any previous
// buffer under the same name.
func (b *MapBank) CreateBytes(name string) {
	b.dests[name] = &destination{kind: destBytes}
}

// Write appends p to the named destination. Text destinations decode p
// with enc first; a nil enc drops the write rather than guessing.
func (b *MapBank) Write(name string, p []byte, enc encoding.Encoding) error {
	dest, ok := b.dests[name]
	if !ok {
		return nil
	}
	switch dest.kind {
	case destText:
		if enc == nil {
			return nil
		}
		text, err := decodeBytes(p, enc)
		if err != nil {
			return err
		}
		return dest.appendText(text)
	default:
		return dest.appendBytes(p)
	}
}

// ReadText returns the accumulated text of the named destination.
func (b *MapBank) ReadText(name string, enc encoding.Encoding) (string, bool) {
	dest, ok := b.dests[name]
	if !ok {
		return "", false
	}
	if dest.kind == destText {
		return string(dest.text), true
	}
	if enc == nil {
		return "", false
	}
	text, err := decodeBytes(dest.raw, enc)
	if err != nil {
		return "", false
	}
	return text, true
}

// decodeBytes decodes p with enc into UTF-8, substituting replacement
// characters for unmappable input rather than failing.
func decodeBytes(p []byte, enc encoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encodeString converts UTF-8 text back into the byte representation of
// enc, replacing characters the target set cannot express.
func encodeString(s string, enc encoding.Encoding) ([]byte, error) {
	return encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
}
