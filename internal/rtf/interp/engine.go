package interp

import (
	"github.com/scrytools/mcp-rtf-reader/internal/rtf/token"
)

// Engine consumes RTF tokens one at a time, maintaining the stack of
// open scopes and routing literal text into the active destination of
// the innermost one. Closing a scope promotes any field result text it
// collected into the enclosing scope, which is how hyperlink display
// text ends up in the body while the link instruction is discarded.
type Engine struct {
	bank    Bank
	stack   []*Scope
	unknown map[string]int
}

// NewEngine returns an engine writing through the given bank.
func NewEngine(bank Bank) *Engine {
	return &Engine{bank: bank, unknown: make(map[string]int)}
}

// UnknownConstructs reports the unrecognized non-optional control names
// encountered so far and how often each appeared. Such constructs are
// tolerated, not fatal; real-world documents routinely carry
// vendor-specific controls.
func (e *Engine) UnknownConstructs() map[string]int {
	out := make(map[string]int, len(e.unknown))
	for name, n := range e.unknown {
		out[name] = n
	}
	return out
}

// Feed consumes one token. Errors are fatal for the document being
// parsed but leave the engine safe to discard.
func (e *Engine) Feed(tok token.Token) error {
	// The ignore-next flag is one-shot: whatever token follows the
	// marker consumes it.
	optional := false
	if top := e.top(); top != nil {
		optional = top.takeIgnoreNext()
	}

	switch tok.Kind {
	case token.ControlSymbol:
		return e.controlSymbol(tok.Name, optional)
	case token.ControlWord:
		return e.controlWord(tok.Name, argValue(tok), optional)
	case token.Text:
		return e.write(tok.Data)
	case token.StartGroup:
		e.openScope()
	case token.EndGroup:
		return e.closeScope()
	}
	return nil
}

func argValue(tok token.Token) Value {
	if !tok.HasArg {
		return Value{}
	}
	return IntValue(tok.Arg)
}

func (e *Engine) top() *Scope {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

// controlSymbol dispatches a control symbol, which may only resolve to
// a character producer or ignore classification.
func (e *Engine) controlSymbol(name string, optional bool) error {
	top := e.top()
	if top == nil {
		return nil
	}
	if kind, ok := controlKinds[name]; ok && kind.symbolKind() {
		return apply(top, kind, name, Value{})
	}
	if !optional {
		e.unknown[name]++
	}
	return nil
}

// controlWord dispatches a control word across the full classification.
func (e *Engine) controlWord(name string, arg Value, optional bool) error {
	top := e.top()
	if top == nil {
		return nil
	}
	if kind, ok := controlKinds[name]; ok {
		return apply(top, kind, name, arg)
	}
	if !optional {
		e.unknown[name]++
	}
	return nil
}

// write sends literal bytes to the innermost scope's destination.
func (e *Engine) write(p []byte) error {
	top := e.top()
	if top == nil {
		return nil
	}
	return top.Write(p, nil)
}

// openScope pushes a clone of the current scope, or a fresh scope bound
// to the shared bank when none is open yet.
func (e *Engine) openScope() {
	if top := e.top(); top != nil {
		e.stack = append(e.stack, top.Clone())
		return
	}
	e.stack = append(e.stack, NewScope(e.bank))
}

// closeScope pops the innermost scope. If the closing scope collected
// field result text, that text is written into the enclosing scope's
// active destination, re-encoded with the closing scope's encoding when
// it has one. An end-of-scope with nothing open is tolerated.
func (e *Engine) closeScope() error {
	top := e.top()
	if top == nil {
		return nil
	}
	e.stack = e.stack[:len(e.stack)-1]

	text, ok := top.readText(fieldResultDestination)
	if !ok || text == "" {
		return nil
	}
	if enc := top.Encoding(); enc != nil {
		p, err := encodeString(text, enc)
		if err != nil {
			return err
		}
		return e.write(p)
	}
	return e.write([]byte(text))
}
