// Package token defines the RTF token alphabet and a tokenizer that
// splits raw RTF bytes into control words, control symbols, group
// delimiters and literal text runs. Tokens carry undecoded bytes;
// character set decoding is the interpreter's job.
package token

import (
	"fmt"
)

// Kind discriminates the token variants.
type Kind int

const (
	// Text is a run of literal document bytes, not yet decoded.
	Text Kind = iota
	// ControlWord is a backslash-escaped alphabetic name with an
	// optional signed integer argument, e.g. \ansicpg1252.
	ControlWord
	// ControlSymbol is a backslash-escaped single non-alphabetic
	// character, e.g. \~ or \*.
	ControlSymbol
	// StartGroup is an opening brace.
	StartGroup
	// EndGroup is a closing brace.
	EndGroup
	// Binary is the payload of a \binN control; interpreters skip it.
	Binary
)

// Token is one lexical element of an RTF document. Tokens are value
// types; Data aliases the input buffer and must not be mutated.
type Token struct {
	Kind   Kind
	Name   string // control word or symbol name
	Arg    int    // numeric argument, valid only when HasArg
	HasArg bool
	Data   []byte // literal bytes for Text and Binary tokens
}

// Word builds a control word token without an argument.
func Word(name string) Token {
	return Token{Kind: ControlWord, Name: name}
}

// WordArg builds a control word token carrying a numeric argument.
func WordArg(name string, arg int) Token {
	return Token{Kind: ControlWord, Name: name, Arg: arg, HasArg: true}
}

// Symbol builds a control symbol token.
func Symbol(c byte) Token {
	return Token{Kind: ControlSymbol, Name: string(c)}
}

// TextBytes builds a literal text token.
func TextBytes(b []byte) Token {
	return Token{Kind: Text, Data: b}
}

// Open and Close are the group delimiter tokens.
var (
	Open  = Token{Kind: StartGroup}
	Close = Token{Kind: EndGroup}
)

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func hexVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// Tokenize splits data into a token sequence. Raw carriage returns and
// line feeds between tokens are ignored, as the format requires. A
// \binN control consumes its N bytes of payload into a Binary token so
// embedded binary data can never be misread as markup.
func Tokenize(data []byte) ([]Token, error) {
	toks := make([]Token, 0, len(data)/4)
	i := 0
	for i < len(data) {
		switch b := data[i]; b {
		case '{':
			toks = append(toks, Open)
			i++
		case '}':
			toks = append(toks, Close)
			i++
		case '\r', '\n':
			i++
		case '\\':
			tok, n, err := scanControl(data[i:])
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", i, err)
			}
			i += n
			if tok.Kind == ControlWord && tok.Name == "bin" && tok.HasArg && tok.Arg > 0 {
				toks = append(toks, tok)
				end := i + tok.Arg
				if end > len(data) {
					end = len(data)
				}
				toks = append(toks, Token{Kind: Binary, Data: data[i:end]})
				i = end
				continue
			}
			toks = append(toks, tok)
		default:
			start := i
			for i < len(data) && data[i] != '{' && data[i] != '}' && data[i] != '\\' &&
				data[i] != '\r' && data[i] != '\n' {
				i++
			}
			toks = append(toks, TextBytes(data[start:i]))
		}
	}
	return toks, nil
}

// scanControl reads one control word or control symbol starting at the
// backslash and returns the token and the number of bytes consumed.
func scanControl(data []byte) (Token, int, error) {
	if len(data) < 2 {
		return Token{}, 0, fmt.Errorf("truncated control sequence")
	}
	c := data[1]

	// Hex escape: \'hh carries the raw byte value as its argument.
	if c == '\'' {
		if len(data) < 4 {
			return Token{}, 0, fmt.Errorf("truncated hex escape")
		}
		hi, ok1 := hexVal(data[2])
		lo, ok2 := hexVal(data[3])
		if !ok1 || !ok2 {
			return Token{}, 0, fmt.Errorf("malformed hex escape %q", data[:4])
		}
		return WordArg("'", hi<<4|lo), 4, nil
	}

	if !isLetter(c) {
		return Symbol(c), 2, nil
	}

	i := 1
	for i < len(data) && isLetter(data[i]) {
		i++
	}
	name := string(data[1:i])

	neg := false
	argStart := i
	if i < len(data) && data[i] == '-' && i+1 < len(data) && isDigit(data[i+1]) {
		neg = true
		i++
	}
	numStart := i
	for i < len(data) && isDigit(data[i]) {
		i++
	}

	tok := Word(name)
	if i > numStart {
		arg := 0
		for _, d := range data[numStart:i] {
			arg = arg*10 + int(d-'0')
		}
		if neg {
			arg = -arg
		}
		tok = WordArg(name, arg)
	} else if neg {
		// A bare '-' after the word was not an argument after all.
		i = argStart
	}

	// A single space after a control word is a delimiter, not text.
	if i < len(data) && data[i] == ' ' {
		i++
	}
	return tok, i, nil
}
