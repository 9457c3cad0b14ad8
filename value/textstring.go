/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/pdfgraph/pdfgraph/internal/strutils"
)

// utf16Enc is a UTF-16BE encoder/decoder with a leading byte-order-mark, the
// form ISO 32000-1 7.9.2.2 specifies for "text strings" that aren't
// representable in PDFDocEncoding. Grounded on the identical construction in
// benoitkugler-pdf/model/write.go.
var utf16Enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// DecodeTextString converts a PDF text string's raw bytes (spec.md §3's
// String.Bytes) to a Go string, per ISO 32000-1 7.9.2.2: a leading UTF-16BE
// byte-order-mark (0xFE 0xFF) selects UTF-16BE; otherwise the bytes are
// PDFDocEncoding.
func DecodeTextString(raw []byte) (string, error) {
	if len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF {
		decoded, err := utf16Enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
	return strutils.PDFDocEncodingToString(raw), nil
}

// EncodeTextString converts a Go string to PDF text-string bytes. It prefers
// PDFDocEncoding when every rune round-trips through it, falling back to
// UTF-16BE-with-BOM otherwise.
func EncodeTextString(s string) []byte {
	if canEncodePDFDoc(s) {
		return strutils.StringToPDFDocEncoding(s)
	}
	encoded, err := utf16Enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Fall back to PDFDocEncoding's lossy mapping rather than fail; a
		// text string must always be producible.
		return strutils.StringToPDFDocEncoding(s)
	}
	return encoded
}

func canEncodePDFDoc(s string) bool {
	encoded := strutils.StringToPDFDocEncoding(s)
	decoded := strutils.PDFDocEncodingToString(encoded)
	return decoded == s
}
