package interp

import (
	"golang.org/x/text/encoding"
)

// Value is an optional control word argument.
type Value struct {
	Int   int
	Valid bool
}

// IntValue returns a present Value.
func IntValue(n int) Value {
	return Value{Int: n, Valid: true}
}

// Scope is the inheritable state of one open group: the active
// destination, the active encoding, recorded control values, and the
// one-shot ignore-next-control flag. Scopes are cheap snapshots: a
// nested group starts as a clone of its parent, and all scopes share a
// single Bank for the whole parse.
type Scope struct {
	bank       Bank
	dest       string
	hasDest    bool
	enc        encoding.Encoding
	values     map[string]Value
	ignoreNext bool
}

// NewScope returns a scope with no destination or encoding selected,
// writing through the shared bank.
func NewScope(bank Bank) *Scope {
	return &Scope{bank: bank, values: make(map[string]Value)}
}

// Clone duplicates the scope for a nested group. The value table is
// copied; the bank handle is shared.
func (s *Scope) Clone() *Scope {
	values := make(map[string]Value, len(s.values))
	for name, v := range s.values {
		values[name] = v
	}
	return &Scope{
		bank:       s.bank,
		dest:       s.dest,
		hasDest:    s.hasDest,
		enc:        s.enc,
		values:     values,
		ignoreNext: s.ignoreNext,
	}
}

// SetValue records (or clears, with an invalid Value) a control value.
func (s *Scope) SetValue(name string, v Value) {
	s.values[name] = v
}

// Value reports a recorded control value.
func (s *Scope) Value(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// SetEncoding sets (or, with nil, clears) the active encoding.
func (s *Scope) SetEncoding(enc encoding.Encoding) {
	s.enc = enc
}

// Encoding returns the active encoding, nil when unset.
func (s *Scope) Encoding() encoding.Encoding {
	return s.enc
}

// SetCodepage resolves a numeric codepage and makes it the active
// encoding. Unmappable codepages leave the encoding unset.
func (s *Scope) SetCodepage(cp int) {
	s.SetEncoding(EncodingForCodepage(cp))
}

// Destination returns the name of the active destination.
func (s *Scope) Destination() (string, bool) {
	return s.dest, s.hasDest
}

// SetDestination switches the active destination and (re)creates its
// buffer in the shared bank. Revisiting a destination restarts its
// buffer, matching how redefinable RTF destinations behave.
func (s *Scope) SetDestination(name string, asText bool) {
	s.dest = name
	s.hasDest = true
	if asText {
		s.bank.CreateText(name)
	} else {
		s.bank.CreateBytes(name)
	}
}

// SetIgnoreNext marks the next control construct optional.
func (s *Scope) SetIgnoreNext() {
	s.ignoreNext = true
}

// takeIgnoreNext consumes and clears the ignore-next flag.
func (s *Scope) takeIgnoreNext() bool {
	old := s.ignoreNext
	s.ignoreNext = false
	return old
}

// Write appends bytes to the active destination using override when
// given, else the scope's own encoding. With no destination selected
// the write is dropped: stray text before any destination is
// established carries no recoverable meaning.
func (s *Scope) Write(p []byte, override encoding.Encoding) error {
	if !s.hasDest {
		return nil
	}
	enc := override
	if enc == nil {
		enc = s.enc
	}
	return s.bank.Write(s.dest, p, enc)
}

// readText reads a destination's text through the scope's encoding.
func (s *Scope) readText(name string) (string, bool) {
	return s.bank.ReadText(name, s.enc)
}
