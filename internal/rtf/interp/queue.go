package interp

import (
	"golang.org/x/text/encoding"
)

// LineQueueBank decorates a Bank with line-queue behavior for the
// reserved body destination. Body writes are split on the newline
// terminator: each terminator seals the line under construction and
// queues it for retrieval, everything else appends to it. All other
// destination names pass through to the wrapped bank untouched.
type LineQueueBank struct {
	inner   Bank
	queue   []string
	current []byte
}

// NewLineQueueBank wraps inner with body line queueing.
func NewLineQueueBank(inner Bank) *LineQueueBank {
	return &LineQueueBank{inner: inner}
}

// Pop removes and returns the oldest completed line.
func (b *LineQueueBank) Pop() (string, bool) {
	if len(b.queue) == 0 {
		return "", false
	}
	line := b.queue[0]
	b.queue = b.queue[1:]
	return line, true
}

// Flush returns the partial line under construction, if any, and
// resets it. Intended to be called once the token stream is exhausted;
// subsequent calls report nothing.
func (b *LineQueueBank) Flush() (string, bool) {
	if len(b.current) == 0 {
		return "", false
	}
	line := string(b.current)
	b.current = b.current[:0]
	return line, true
}

// Names reports the wrapped bank's destinations.
func (b *LineQueueBank) Names() []string {
	return b.inner.Names()
}

// CreateText suppresses creation of the body destination, which exists
// implicitly, and forwards everything else.
func (b *LineQueueBank) CreateText(name string) {
	if name != bodyDestination {
		b.inner.CreateText(name)
	}
}

// CreateBytes suppresses creation of the body destination and forwards
// everything else.
func (b *LineQueueBank) CreateBytes(name string) {
	if name != bodyDestination {
		b.inner.CreateBytes(name)
	}
}

// Write intercepts writes to the body destination, splitting decoded
// text into queued lines. The body destination must always have an
// active encoding; a nil enc is fatal for the parse.
func (b *LineQueueBank) Write(name string, p []byte, enc encoding.Encoding) error {
	if name != bodyDestination {
		return b.inner.Write(name, p, enc)
	}
	if enc == nil {
		return ErrNoEncoding
	}
	text, err := decodeBytes(p, enc)
	if err != nil {
		return err
	}
	if text == "\n" {
		b.queue = append(b.queue, string(b.current))
		b.current = b.current[:0]
		return nil
	}
	b.current = append(b.current, text...)
	return nil
}

// ReadText reads from the wrapped bank.
func (b *LineQueueBank) ReadText(name string, enc encoding.Encoding) (string, bool) {
	return b.inner.ReadText(name, enc)
}
