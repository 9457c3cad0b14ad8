/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeTextStringPDFDocEncoding(t *testing.T) {
	s, err := DecodeTextString([]byte("Hello, World!"))
	require.NoError(t, err)
	require.Equal(t, "Hello, World!", s)
}

func TestDecodeTextStringUTF16BOM(t *testing.T) {
	// "Hi" as UTF-16BE with a leading byte-order-mark.
	raw := []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}
	s, err := DecodeTextString(raw)
	require.NoError(t, err)
	require.Equal(t, "Hi", s)
}

func TestEncodeTextStringRoundTripsASCII(t *testing.T) {
	encoded := EncodeTextString("Plain ASCII text")
	decoded, err := DecodeTextString(encoded)
	require.NoError(t, err)
	require.Equal(t, "Plain ASCII text", decoded)
	// A pure-ASCII string round-trips through PDFDocEncoding, so it must
	// not carry the UTF-16 byte-order-mark.
	require.False(t, len(encoded) >= 2 && encoded[0] == 0xFE && encoded[1] == 0xFF)
}

func TestEncodeTextStringFallsBackToUTF16ForUnmappableRunes(t *testing.T) {
	s := "café 中文" // contains CJK characters outside PDFDocEncoding
	encoded := EncodeTextString(s)
	require.True(t, len(encoded) >= 2 && encoded[0] == 0xFE && encoded[1] == 0xFF,
		"a string with runes PDFDocEncoding cannot represent must fall back to UTF-16BE with BOM")

	decoded, err := DecodeTextString(encoded)
	require.NoError(t, err)
	require.Equal(t, s, decoded)
}
