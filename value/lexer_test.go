/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexerSkipsWhitespaceAndComments(t *testing.T) {
	l := NewLexer([]byte("  % a comment\r\n  /Foo"))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, TokenName, tok.Kind)
	require.Equal(t, "Foo", tok.Text())
}

func TestLexerNameEscapes(t *testing.T) {
	l := NewLexer([]byte("/A#42C"))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, TokenName, tok.Kind)
	require.Equal(t, "ABC", tok.Text())
}

func TestLexerNameStopsAtDelimiter(t *testing.T) {
	l := NewLexer([]byte("/Foo/Bar"))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, "Foo", tok.Text())
	require.EqualValues(t, 4, l.Tell())
}

func TestLexerLiteralStringEscapes(t *testing.T) {
	l := NewLexer([]byte(`(line1\nline2 \(nested\) \101)`))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, TokenLiteralString, tok.Kind)
	require.Equal(t, "line1\nline2 (nested) A", tok.Text())
}

func TestLexerLiteralStringLineContinuation(t *testing.T) {
	l := NewLexer([]byte("(foo\\\nbar)"))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, "foobar", tok.Text())
}

func TestLexerUnterminatedLiteralString(t *testing.T) {
	l := NewLexer([]byte("(unterminated"))
	_, err := l.ReadToken()
	require.Error(t, err)
}

func TestLexerHexString(t *testing.T) {
	l := NewLexer([]byte("<DE AD be ef>"))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, TokenHexString, tok.Kind)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, tok.Bytes)
}

func TestLexerHexStringOddDigitsPadded(t *testing.T) {
	l := NewLexer([]byte("<ABC>"))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xC0}, tok.Bytes)
}

func TestLexerDictDelimiters(t *testing.T) {
	l := NewLexer([]byte("<<>>"))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, TokenDictStart, tok.Kind)
	tok, err = l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, TokenDictEnd, tok.Kind)
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"-43.2", "-43.2"},
		{"+17", "+17"},
		{".002", ".002"},
		{"4.", "4."},
	}
	for _, tt := range tests {
		l := NewLexer([]byte(tt.in))
		tok, err := l.ReadToken()
		require.NoError(t, err, tt.in)
		require.Equal(t, TokenNumber, tok.Kind, tt.in)
		require.Equal(t, tt.want, tok.Text(), tt.in)
	}
}

func TestLexerKeyword(t *testing.T) {
	l := NewLexer([]byte("obj"))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, TokenKeyword, tok.Kind)
	require.Equal(t, "obj", tok.Text())
}

func TestLexerEOF(t *testing.T) {
	l := NewLexer([]byte(""))
	tok, err := l.ReadToken()
	require.NoError(t, err)
	require.Equal(t, TokenEOF, tok.Kind)
}

func TestLexerSeekOutOfBounds(t *testing.T) {
	l := NewLexer([]byte("abc"))
	require.Error(t, l.Seek(-1))
	require.Error(t, l.Seek(100))
	require.NoError(t, l.Seek(1))
	require.EqualValues(t, 1, l.Tell())
}
