/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"bytes"
	"io"

	"github.com/pdfgraph/pdfgraph"
)

// Lexer is the concrete Tokenizer implementation used by the xref and
// resolver packages. It operates over an in-memory byte buffer because the
// cross-reference engine needs arbitrary random-access seeks, the same
// assumption the teacher's own core.PdfParser makes (it wraps a
// io.ReadSeeker but keeps the whole file reachable via offsets it trusts).
// Lexing routines (number/string/hex/name scanning) are adapted from the
// teacher's core/parser.go parseNumber/parseString/parseHexString/parseName.
type Lexer struct {
	data []byte
	pos  int64
}

var _ Tokenizer = (*Lexer)(nil)

// NewLexer wraps data for tokenizing.
func NewLexer(data []byte) *Lexer {
	return &Lexer{data: data}
}

// NewLexerFromReader reads r fully and wraps the result.
func NewLexerFromReader(r io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pdfgraph.WrapError(pdfgraph.IoError, err, "reading tokenizer source")
	}
	return NewLexer(data), nil
}

// Seek repositions the lexer.
func (l *Lexer) Seek(offset int64) error {
	if offset < 0 || offset > int64(len(l.data)) {
		return pdfgraph.NewError(pdfgraph.IoError, "seek offset %d out of bounds [0,%d]", offset, len(l.data))
	}
	l.pos = offset
	return nil
}

// Tell returns the current offset.
func (l *Lexer) Tell() int64 {
	return l.pos
}

func (l *Lexer) atEnd() bool {
	return l.pos >= int64(len(l.data))
}

func (l *Lexer) peekByte() (byte, bool) {
	if l.atEnd() {
		return 0, false
	}
	return l.data[l.pos], true
}

func (l *Lexer) advance() (byte, bool) {
	b, ok := l.peekByte()
	if ok {
		l.pos++
	}
	return b, ok
}

// SkipWhitespace advances past whitespace and '%' comments, per ISO 32000-1
// 7.2.3: a comment runs from '%' to end of line.
func (l *Lexer) SkipWhitespace() {
	for {
		b, ok := l.peekByte()
		if !ok {
			return
		}
		if IsWhiteSpace(b) {
			l.pos++
			continue
		}
		if b == '%' {
			for {
				b, ok := l.peekByte()
				if !ok || b == '\n' || b == '\r' {
					break
				}
				l.pos++
			}
			continue
		}
		return
	}
}

// ReadToken parses one atomic token.
func (l *Lexer) ReadToken() (Token, error) {
	l.SkipWhitespace()
	b, ok := l.peekByte()
	if !ok {
		return Token{Kind: TokenEOF}, nil
	}

	switch {
	case b == '/':
		return l.readName()
	case b == '(':
		return l.readLiteralString()
	case b == '<':
		if l.pos+1 < int64(len(l.data)) && l.data[l.pos+1] == '<' {
			l.pos += 2
			return Token{Kind: TokenDictStart}, nil
		}
		return l.readHexString()
	case b == '>':
		if l.pos+1 < int64(len(l.data)) && l.data[l.pos+1] == '>' {
			l.pos += 2
			return Token{Kind: TokenDictEnd}, nil
		}
		return Token{}, pdfgraph.NewError(pdfgraph.LexError, "lone '>' at offset %d", l.pos)
	case b == '[':
		l.pos++
		return Token{Kind: TokenArrayStart}, nil
	case b == ']':
		l.pos++
		return Token{Kind: TokenArrayEnd}, nil
	case b == '+' || b == '-' || b == '.' || IsDecimalDigit(b):
		return l.readNumber()
	case IsDelimiter(b):
		l.pos++
		return Token{Kind: TokenDelimiter, Bytes: []byte{b}}, nil
	default:
		return l.readKeyword()
	}
}

func (l *Lexer) readName() (Token, error) {
	l.pos++ // consume '/'
	var buf bytes.Buffer
	for {
		b, ok := l.peekByte()
		if !ok || IsWhiteSpace(b) || IsDelimiter(b) {
			break
		}
		if b == '#' && l.pos+2 < int64(len(l.data)) && isHexDigit(l.data[l.pos+1]) && isHexDigit(l.data[l.pos+2]) {
			buf.WriteByte(hexVal(l.data[l.pos+1])<<4 | hexVal(l.data[l.pos+2]))
			l.pos += 3
			continue
		}
		buf.WriteByte(b)
		l.pos++
	}
	return Token{Kind: TokenName, Bytes: buf.Bytes()}, nil
}

func isHexDigit(b byte) bool {
	return IsDecimalDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

func (l *Lexer) readLiteralString() (Token, error) {
	l.pos++ // consume '('
	var buf bytes.Buffer
	depth := 1
	for {
		b, ok := l.advance()
		if !ok {
			return Token{}, pdfgraph.NewError(pdfgraph.UnexpectedEof, "unterminated literal string")
		}
		switch b {
		case '(':
			depth++
			buf.WriteByte(b)
		case ')':
			depth--
			if depth == 0 {
				return Token{Kind: TokenLiteralString, Bytes: buf.Bytes()}, nil
			}
			buf.WriteByte(b)
		case '\\':
			if err := l.readEscape(&buf); err != nil {
				return Token{}, err
			}
		default:
			buf.WriteByte(b)
		}
	}
}

func (l *Lexer) readEscape(buf *bytes.Buffer) error {
	b, ok := l.advance()
	if !ok {
		return pdfgraph.NewError(pdfgraph.UnexpectedEof, "unterminated escape sequence")
	}
	switch b {
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case '(', ')', '\\':
		buf.WriteByte(b)
	case '\r':
		// line continuation; also swallow a following \n
		if nb, ok := l.peekByte(); ok && nb == '\n' {
			l.pos++
		}
	case '\n':
		// line continuation
	default:
		if IsOctalDigit(b) {
			val := int(b - '0')
			for i := 0; i < 2; i++ {
				nb, ok := l.peekByte()
				if !ok || !IsOctalDigit(nb) {
					break
				}
				val = val*8 + int(nb-'0')
				l.pos++
			}
			buf.WriteByte(byte(val))
		} else {
			buf.WriteByte(b)
		}
	}
	return nil
}

func (l *Lexer) readHexString() (Token, error) {
	l.pos++ // consume '<'
	var digits []byte
	for {
		b, ok := l.advance()
		if !ok {
			return Token{}, pdfgraph.NewError(pdfgraph.UnexpectedEof, "unterminated hex string")
		}
		if b == '>' {
			break
		}
		if IsWhiteSpace(b) {
			continue
		}
		if !isHexDigit(b) {
			return Token{}, pdfgraph.NewError(pdfgraph.LexError, "invalid hex digit %q at offset %d", b, l.pos-1)
		}
		digits = append(digits, b)
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	for i := 0; i < len(out); i++ {
		out[i] = hexVal(digits[2*i])<<4 | hexVal(digits[2*i+1])
	}
	return Token{Kind: TokenHexString, Bytes: out}, nil
}

func (l *Lexer) readNumber() (Token, error) {
	start := l.pos
	if b, ok := l.peekByte(); ok && (b == '+' || b == '-') {
		l.pos++
	}
	sawDigit := false
	for {
		b, ok := l.peekByte()
		if !ok {
			break
		}
		if IsDecimalDigit(b) {
			sawDigit = true
			l.pos++
			continue
		}
		if b == '.' {
			l.pos++
			continue
		}
		break
	}
	if !sawDigit {
		return Token{}, pdfgraph.NewError(pdfgraph.LexError, "malformed number at offset %d", start)
	}
	return Token{Kind: TokenNumber, Bytes: l.data[start:l.pos]}, nil
}

func (l *Lexer) readKeyword() (Token, error) {
	start := l.pos
	for {
		b, ok := l.peekByte()
		if !ok || IsWhiteSpace(b) || IsDelimiter(b) {
			break
		}
		l.pos++
	}
	if l.pos == start {
		return Token{}, pdfgraph.NewError(pdfgraph.LexError, "unrecognized byte %q at offset %d", l.data[start], start)
	}
	return Token{Kind: TokenKeyword, Bytes: l.data[start:l.pos]}, nil
}
