/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"bytes"
	"fmt"
	"io"
)

// Names have no fixed escape table (unlike literal strings): Name.Text
// escapes every byte outside '!'..'~' or in the delimiter set individually
// with '#xx', per spec.md §4.1.

// WriteTo renders v in its PDF wire form into w. Composite values are
// rendered as-is: callers that need the write-transformer's
// indirect-or-inline rule (spec.md §4.6) must rewrite composite children to
// Indirect placeholders before calling WriteTo; WriteTo itself performs no
// indirection decisions.
func (v Value) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := v.writeTo(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (v Value) writeTo(w io.Writer) error {
	switch v.Kind {
	case KindNull:
		_, err := io.WriteString(w, "null")
		return err
	case KindBoolean:
		s := "false"
		if v.Boolean {
			s = "true"
		}
		_, err := io.WriteString(w, s)
		return err
	case KindNumber:
		_, err := io.WriteString(w, v.Number.Text())
		return err
	case KindName:
		_, err := io.WriteString(w, v.Name.Text())
		return err
	case KindString:
		_, err := io.WriteString(w, v.String.Text())
		return err
	case KindArray:
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
		for i, el := range v.Array.Elems {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if err := el.writeTo(w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "]")
		return err
	case KindDictionary:
		return v.Dict.writeTo(w)
	case KindIndirect:
		_, err := fmt.Fprintf(w, "%d %d R", v.Indirect.ObjectNumber, v.Indirect.GenerationNumber)
		return err
	case KindStream:
		if err := v.Stream.Dict.writeTo(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\nstream\n"); err != nil {
			return err
		}
		if _, err := w.Write(v.Stream.Raw); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\nendstream")
		return err
	default:
		_, err := io.WriteString(w, "null")
		return err
	}
}

func (d *Dictionary) writeTo(w io.Writer) error {
	if _, err := io.WriteString(w, "<<"); err != nil {
		return err
	}
	for _, k := range d.Keys() {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if _, err := io.WriteString(w, Name(k).Text()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		el, _ := d.Get(k)
		if err := el.writeTo(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " >>")
	return err
}

// Text renders n with the PDF '#xx' escape for any byte outside '!'..'~' or
// the delimiter set (spec.md §4.1).
func (n Name) Text() string {
	var buf bytes.Buffer
	buf.WriteByte('/')
	for i := 0; i < len(n); i++ {
		c := n[i]
		if !IsPrintable(c) || c == '#' || IsDelimiter(c) {
			fmt.Fprintf(&buf, "#%02X", c)
		} else {
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

// literalEscapes mirrors the teacher's escape table for the handful of
// characters literal strings must backslash-escape.
var literalEscapes = map[byte]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\b': `\b`,
	'\f': `\f`,
	'(':  `\(`,
	')':  `\)`,
	'\\': `\\`,
}

// Text renders s in its preferred form: balanced-paren literal, or hex.
// Per spec.md §4.1, a literal string whose bytes are unbalanced parens or
// fall outside printable Latin-1 is forced to hex form regardless of the
// Kind the caller requested.
func (s String) Text() string {
	if s.Kind == Literal && canWriteLiteral(s.Bytes) {
		var buf bytes.Buffer
		buf.WriteByte('(')
		for _, c := range s.Bytes {
			if esc, ok := literalEscapes[c]; ok {
				buf.WriteString(esc)
			} else {
				buf.WriteByte(c)
			}
		}
		buf.WriteByte(')')
		return buf.String()
	}
	var buf bytes.Buffer
	buf.WriteByte('<')
	fmt.Fprintf(&buf, "%X", s.Bytes)
	buf.WriteByte('>')
	return buf.String()
}

// canWriteLiteral reports whether b can be written as a balanced-paren
// literal string without escaping anything beyond literalEscapes: every
// byte must be printable Latin-1 (or one of the explicitly escaped control
// characters), and unescaped parens must balance.
func canWriteLiteral(b []byte) bool {
	depth := 0
	for _, c := range b {
		if _, escaped := literalEscapes[c]; escaped {
			if c == '(' {
				depth++
			} else if c == ')' {
				depth--
				if depth < 0 {
					return false
				}
			}
			continue
		}
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return depth == 0
}
