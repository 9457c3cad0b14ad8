/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

// Tokenizer is the byte-to-token contract the cross-reference engine and
// object resolver depend on (spec.md §4.2). The xref/resolver packages
// consume any implementation of this interface; they never depend on the
// concrete lexer in this package directly. Grounded in shape on
// benoitkugler's standalone pstokenizer package (a Tokenizer/Token pair
// decoupled from any particular parser), adapted here into an explicit Go
// interface per spec.md's "tokenizer contract, not its byte-level grammar."
type Tokenizer interface {
	// Seek repositions the tokenizer at offset bytes from the start of the
	// underlying source.
	Seek(offset int64) error
	// Tell returns the current byte offset.
	Tell() int64
	// ReadObject parses one complete PDF object (possibly a stream) from the
	// current position.
	ReadObject() (Value, error)
	// ReadToken parses one atomic token: keyword, number, name, string, or
	// delimiter.
	ReadToken() (Token, error)
	// SkipWhitespace advances past whitespace and comments.
	SkipWhitespace()
}

// TokenKind tags the lexical category of a Token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenName
	TokenLiteralString
	TokenHexString
	TokenArrayStart
	TokenArrayEnd
	TokenDictStart
	TokenDictEnd
	TokenKeyword // true, false, null, obj, endobj, stream, endstream, xref, trailer, R, etc.
	TokenDelimiter
)

// Token is one atomic lexical unit.
type Token struct {
	Kind  TokenKind
	Bytes []byte // raw decoded payload: digits, name bytes, string bytes, keyword text
}

// Text returns the token's payload as a string.
func (t Token) Text() string {
	return string(t.Bytes)
}
