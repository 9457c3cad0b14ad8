/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

// IsWhiteSpace reports whether ch is one of PDF's six whitespace characters
// (ISO 32000-1 Table 1).
func IsWhiteSpace(ch byte) bool {
	return ch == 0x00 || ch == 0x09 || ch == 0x0A || ch == 0x0C || ch == 0x0D || ch == 0x20
}

// IsDelimiter reports whether c is one of PDF's ten delimiter characters.
func IsDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// IsRegular reports whether c may appear in a bare keyword/number/name token
// body: neither whitespace nor a delimiter.
func IsRegular(c byte) bool {
	return !IsWhiteSpace(c) && !IsDelimiter(c)
}

// IsPrintable reports whether c falls in the printable Latin-1 range PDF
// names and literal strings may emit unescaped: '!'..'~'.
func IsPrintable(c byte) bool {
	return 0x21 <= c && c <= 0x7E
}

// IsDecimalDigit reports whether c is an ASCII decimal digit.
func IsDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsOctalDigit reports whether c is an ASCII octal digit.
func IsOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}
