/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"bytes"

	"github.com/pdfgraph/pdfgraph"
)

// ReadObject parses one complete PDF object from the current position,
// including the reference/indirect-object lookahead (an integer that may
// turn out to be the first half of "N G R" or "N G obj ... endobj") and
// stream bodies following a dictionary.
func (l *Lexer) ReadObject() (Value, error) {
	l.SkipWhitespace()
	tok, err := l.ReadToken()
	if err != nil {
		return Value{}, err
	}
	return l.readObjectFromToken(tok)
}

func (l *Lexer) readObjectFromToken(tok Token) (Value, error) {
	switch tok.Kind {
	case TokenEOF:
		return Value{}, pdfgraph.NewError(pdfgraph.UnexpectedEof, "expected object, found EOF")
	case TokenName:
		return NewName(string(tok.Bytes)), nil
	case TokenLiteralString:
		return NewLiteralString(tok.Bytes), nil
	case TokenHexString:
		return NewHexString(tok.Bytes), nil
	case TokenArrayStart:
		return l.readArray()
	case TokenDictStart:
		return l.readDictOrStream()
	case TokenNumber:
		return l.readNumberOrReference(tok)
	case TokenKeyword:
		return l.readKeywordValue(tok)
	default:
		return Value{}, pdfgraph.NewError(pdfgraph.LexError, "unexpected token kind %d", tok.Kind)
	}
}

func (l *Lexer) readKeywordValue(tok Token) (Value, error) {
	switch string(tok.Bytes) {
	case "true":
		return NewBoolean(true), nil
	case "false":
		return NewBoolean(false), nil
	case "null":
		return Null, nil
	default:
		return Value{}, pdfgraph.NewError(pdfgraph.LexError, "unexpected keyword %q", tok.Bytes)
	}
}

func (l *Lexer) readArray() (Value, error) {
	var elems []Value
	for {
		l.SkipWhitespace()
		save := l.pos
		tok, err := l.ReadToken()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == TokenArrayEnd {
			return Value{Kind: KindArray, Array: &Array{Elems: elems}}, nil
		}
		if tok.Kind == TokenEOF {
			return Value{}, pdfgraph.NewError(pdfgraph.UnexpectedEof, "unterminated array")
		}
		l.pos = save
		v, err := l.ReadObject()
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
}

// readNumberOrReference implements the "N G R" / "N G obj" lookahead: a
// bare integer might be a Number, or the object number half of a reference
// or an indirect object header, distinguishable only by looking past the
// next token.
func (l *Lexer) readNumberOrReference(first Token) (Value, error) {
	n1 := parseDecimalLiteral(string(first.Bytes))
	if !n1.IsInteger() || n1.Mantissa < 0 {
		return NewNumber(n1), nil
	}

	save := l.pos
	l.SkipWhitespace()
	second, err := l.ReadToken()
	if err != nil || second.Kind != TokenNumber {
		l.pos = save
		return NewNumber(n1), nil
	}
	n2 := parseDecimalLiteral(string(second.Bytes))
	if !n2.IsInteger() || n2.Mantissa < 0 {
		l.pos = save
		return NewNumber(n1), nil
	}

	l.SkipWhitespace()
	third, err := l.ReadToken()
	if err != nil {
		l.pos = save
		return NewNumber(n1), nil
	}
	if third.Kind == TokenKeyword && string(third.Bytes) == "R" {
		ref := &Reference{
			ObjectNumber:     uint32(n1.Mantissa),
			GenerationNumber: uint16(n2.Mantissa),
			IsInUse:          true,
		}
		return NewIndirect(ref), nil
	}
	l.pos = save
	return NewNumber(n1), nil
}

// ReadIndirectObject parses "N G obj ... endobj" starting at the current
// position, returning the object's body value with its Ref back-edge set.
func (l *Lexer) ReadIndirectObject() (Value, error) {
	l.SkipWhitespace()
	numTok, err := l.ReadToken()
	if err != nil || numTok.Kind != TokenNumber {
		return Value{}, pdfgraph.NewError(pdfgraph.LexError, "expected object number at offset %d", l.pos)
	}
	l.SkipWhitespace()
	genTok, err := l.ReadToken()
	if err != nil || genTok.Kind != TokenNumber {
		return Value{}, pdfgraph.NewError(pdfgraph.LexError, "expected generation number at offset %d", l.pos)
	}
	l.SkipWhitespace()
	kwTok, err := l.ReadToken()
	if err != nil || kwTok.Kind != TokenKeyword || string(kwTok.Bytes) != "obj" {
		return Value{}, pdfgraph.NewError(pdfgraph.LexError, "expected 'obj' keyword at offset %d", l.pos)
	}

	objNum := parseDecimalLiteral(string(numTok.Bytes)).Int64()
	genNum := parseDecimalLiteral(string(genTok.Bytes)).Int64()
	ref := &Reference{ObjectNumber: uint32(objNum), GenerationNumber: uint16(genNum), IsInUse: true}

	body, err := l.ReadObject()
	if err != nil {
		return Value{}, err
	}
	body.Ref = ref

	l.SkipWhitespace()
	save := l.pos
	endTok, err := l.ReadToken()
	if err != nil || endTok.Kind != TokenKeyword || string(endTok.Bytes) != "endobj" {
		// Not every caller-supplied fragment carries a trailing endobj (e.g.
		// xref-stream bodies are read standalone in some callers); leave the
		// position where a well-formed body ends.
		l.pos = save
	}
	return body, nil
}

func (l *Lexer) readDictOrStream() (Value, error) {
	dict := NewEmptyDictionary()
	for {
		l.SkipWhitespace()
		save := l.pos
		tok, err := l.ReadToken()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == TokenDictEnd {
			break
		}
		if tok.Kind != TokenName {
			return Value{}, pdfgraph.NewError(pdfgraph.LexError, "expected dictionary key (Name) at offset %d", save)
		}
		key := Name(tok.Bytes)
		val, err := l.ReadObject()
		if err != nil {
			return Value{}, err
		}
		dict.Set(key, val)
	}

	dictVal := Value{Kind: KindDictionary, Dict: dict}

	save := l.pos
	l.SkipWhitespace()
	kwStart := l.pos
	kwTok, err := l.ReadToken()
	if err == nil && kwTok.Kind == TokenKeyword && string(kwTok.Bytes) == "stream" {
		raw, err := l.readStreamBody(dict, kwStart)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindStream, Stream: NewStream(dict, raw)}, nil
	}
	l.pos = save
	return dictVal, nil
}

// readStreamBody reads the raw bytes of a stream following its dictionary,
// per spec.md §4.3 step 1: the "stream" keyword is followed by CRLF or LF
// (never a bare CR), then exactly /Length raw bytes.
func (l *Lexer) readStreamBody(dict *Dictionary, _ int) ([]byte, error) {
	if b, ok := l.peekByte(); ok && b == '\r' {
		l.pos++
	}
	if b, ok := l.peekByte(); ok && b == '\n' {
		l.pos++
	}
	start := l.pos

	lengthVal, ok := dict.Get("Length")
	if ok && lengthVal.Kind == KindNumber {
		n := lengthVal.Number.Int64()
		if n < 0 || start+n > int64(len(l.data)) {
			return l.scanForEndstream(start)
		}
		raw := l.data[start : start+n]
		end := start + n
		l.pos = end
		l.SkipWhitespace()
		tok, err := l.ReadToken()
		if err != nil || tok.Kind != TokenKeyword || string(tok.Bytes) != "endstream" {
			// Declared /Length didn't land on "endstream"; the value is
			// stale. Fall back to scanning.
			l.pos = start
			return l.scanForEndstream(start)
		}
		return raw, nil
	}

	// /Length is absent or indirect (unresolvable without a document
	// resolver at tokenize time): scan for the literal "endstream" keyword.
	return l.scanForEndstream(start)
}

func (l *Lexer) scanForEndstream(start int64) ([]byte, error) {
	marker := []byte("endstream")
	idx := bytes.Index(l.data[start:], marker)
	if idx < 0 {
		return nil, pdfgraph.NewError(pdfgraph.UnexpectedEof, "stream at offset %d has no endstream marker", start)
	}
	end := start + int64(idx)
	raw := l.data[start:end]
	// Trim a single trailing EOL the writer inserted before "endstream".
	raw = bytes.TrimSuffix(raw, []byte("\r\n"))
	raw = bytes.TrimSuffix(raw, []byte("\n"))
	raw = bytes.TrimSuffix(raw, []byte("\r"))
	l.pos = end + int64(len(marker))
	return raw, nil
}
