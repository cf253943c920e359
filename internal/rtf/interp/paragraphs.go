package interp

import (
	"io"

	"github.com/scrytools/mcp-rtf-reader/internal/rtf/token"
)

// ParagraphReader pulls recovered body lines out of a token sequence.
// Each call to Next feeds tokens to the interpreter until a completed
// line is available; once the tokens are exhausted any trailing partial
// line is flushed, after which Next returns io.EOF forever.
//
// Readers are forward-only and not restartable; parse the same token
// sequence with a fresh reader to run it again.
type ParagraphReader struct {
	tokens []token.Token
	pos    int
	engine *Engine
	queue  *LineQueueBank
}

// NewParagraphReader returns a reader over a token sequence with a
// fresh interpreter and line queue.
func NewParagraphReader(tokens []token.Token) *ParagraphReader {
	queue := NewLineQueueBank(NewMapBank())
	return &ParagraphReader{
		tokens: tokens,
		engine: NewEngine(queue),
		queue:  queue,
	}
}

// Paragraphs tokenizes raw RTF bytes and returns a reader over the
// recovered lines.
func Paragraphs(data []byte) (*ParagraphReader, error) {
	toks, err := token.Tokenize(data)
	if err != nil {
		return nil, err
	}
	return NewParagraphReader(toks), nil
}

// Next returns the next recovered line, or io.EOF when the input is
// exhausted. Any other error is fatal for this document.
func (r *ParagraphReader) Next() (string, error) {
	for {
		if line, ok := r.queue.Pop(); ok {
			return line, nil
		}
		if r.pos < len(r.tokens) {
			tok := r.tokens[r.pos]
			r.pos++
			if err := r.engine.Feed(tok); err != nil {
				return "", err
			}
			continue
		}
		if line, ok := r.queue.Flush(); ok {
			return line, nil
		}
		return "", io.EOF
	}
}

// Lines drains the reader into a slice.
func (r *ParagraphReader) Lines() ([]string, error) {
	var lines []string
	for {
		line, err := r.Next()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
}

// UnknownConstructs exposes the interpreter's diagnostics counter.
func (r *ParagraphReader) UnknownConstructs() map[string]int {
	return r.engine.UnknownConstructs()
}
