package interp

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// controlKind is the behavior class of a recognized control word or
// control symbol. Every name in controlKinds maps to exactly one kind.
type controlKind int

const (
	// ctrlDest switches the active destination to a byte buffer named
	// after the control.
	ctrlDest controlKind = iota
	// ctrlDestText switches the active destination to a text buffer;
	// only the reserved body destination is classed this way.
	ctrlDestText
	// ctrlDestValue switches the destination and records the numeric
	// argument.
	ctrlDestValue
	// ctrlEmit writes a fixed or argument-derived byte sequence to the
	// active destination.
	ctrlEmit
	// ctrlEmitValue writes a byte sequence and records the stock ANSI
	// codepage value; used by the table row and cell separators.
	ctrlEmitValue
	// ctrlEncodingFlag selects one of the fixed legacy codepages and
	// records itself as a value.
	ctrlEncodingFlag
	// ctrlEncodingArg selects the codepage named by the argument.
	ctrlEncodingArg
	// ctrlUnicode writes the Unicode code point in the argument.
	ctrlUnicode
	// ctrlValue records the name and optional argument, nothing else.
	ctrlValue
	// ctrlIgnore is recognized but produces no state change or output.
	ctrlIgnore
	// ctrlOptionalNext marks the following control construct as
	// optional, tolerating it being unrecognized.
	ctrlOptionalNext
)

// symbolKind reports whether a classification is applicable to a
// control symbol lookup. Symbols only dispatch through the character
// producer and ignore classes.
func (k controlKind) symbolKind() bool {
	switch k {
	case ctrlEmit, ctrlEmitValue, ctrlIgnore, ctrlOptionalNext:
		return true
	default:
		return false
	}
}

// Fixed codepages selected by the legacy charset flags.
const (
	codepageANSI = 1252
	codepagePC   = 437
	codepagePCA  = 850
	codepageMac  = 10000
)

// apply performs the classified behavior of one control on the scope.
func apply(s *Scope, kind controlKind, name string, arg Value) error {
	switch kind {
	case ctrlDest:
		s.SetDestination(name, false)
	case ctrlDestText:
		s.SetDestination(name, true)
	case ctrlDestValue:
		s.SetDestination(name, false)
		s.SetValue(name, arg)
	case ctrlEmit:
		return emitChar(s, name, arg)
	case ctrlEmitValue:
		if err := emitChar(s, name, arg); err != nil {
			return err
		}
		// Row and cell separators also record the stock ANSI codepage
		// value without disturbing the active encoding.
		s.SetValue("ansicpg", IntValue(codepageANSI))
	case ctrlEncodingFlag:
		switch name {
		case "ansi":
			// In the absence of an explicit \ansicpg this defaults to
			// the Western European page.
			s.SetCodepage(codepageANSI)
		case "pc":
			s.SetCodepage(codepagePC)
		case "pca":
			s.SetCodepage(codepagePCA)
		case "mac":
			s.SetCodepage(codepageMac)
		default:
			return fmt.Errorf("%w: %q classed as encoding flag without a codepage mapping",
				ErrClassification, name)
		}
		s.SetValue(name, arg)
	case ctrlEncodingArg:
		if name != "ansicpg" {
			return fmt.Errorf("%w: %q classed as encoding value without a codepage mapping",
				ErrClassification, name)
		}
		cp := codepageANSI
		if arg.Valid {
			cp = arg.Int
		}
		s.SetCodepage(cp)
		s.SetValue(name, arg)
	case ctrlUnicode:
		return emitUnicode(s, arg)
	case ctrlValue:
		s.SetValue(name, arg)
	case ctrlIgnore:
	case ctrlOptionalNext:
		s.SetIgnoreNext()
	}
	return nil
}

// emitChar writes the byte sequence a character-producing control
// stands for, in the active encoding. The predefined single-byte
// mappings are the ANSI values the Word RTF specification assigns.
func emitChar(s *Scope, name string, arg Value) error {
	var b []byte
	switch name {
	case "'": // hex escape, argument carries the byte
		b = []byte{byte(arg.Int)}
	case "\"":
		b = []byte(`"`)
	case "\\":
		b = []byte(`\`)
	case "_": // non-breaking hyphen
		b = []byte("-")
	case "{":
		b = []byte("{")
	case "}":
		b = []byte("}")
	case "~": // non-breaking space
		b = []byte(" ")
	case "bullet":
		b = []byte("\x95")
	case "emdash":
		b = []byte("\x97")
	case "emspace":
		b = []byte("  ")
	case "enspace":
		b = []byte(" ")
	case "endash":
		b = []byte("\x96")
	case "ldblquote":
		b = []byte("\x93")
	case "line":
		b = []byte("\n")
	case "lquote":
		b = []byte("\x91")
	case "page":
		b = []byte("\n\n")
	case "par":
		b = []byte("\n")
	case "rdblquote":
		b = []byte("\x94")
	case "rquote":
		b = []byte("\x92")
	case "sect":
		b = []byte("\n\n")
	case "row":
		b = []byte("\n ")
	case "tab":
		b = []byte("\t")
	case "cell":
		b = []byte("\t")
	case "ls":
		b = []byte("\x95 ")
	case "\n", "\r": // escaped raw newline, same as \par
		b = []byte("\n")
	case "\t":
		b = []byte("\t")
	case " ":
		b = []byte(" ")
	case "/":
		b = []byte("/")
	default:
		return fmt.Errorf("%w: no character mapping for %q", ErrClassification, name)
	}
	return s.Write(b, nil)
}

// emitUnicode writes a \u code point to the active destination. Skip
// counts (\uc) are recorded as plain values but not honored here; the
// alternate representation that follows simply passes through.
func emitUnicode(s *Scope, arg Value) error {
	if !arg.Valid {
		return nil
	}
	r := rune(arg.Int)
	if !utf8.ValidRune(r) {
		return nil
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return s.Write(buf[:n], unicode.UTF8)
}
