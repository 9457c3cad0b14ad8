/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"bytes"
	"compress/flate"
	"encoding/ascii85"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamDecodeASCIIHex(t *testing.T) {
	dict := NewEmptyDictionary()
	dict.Set("Filter", NewName("ASCIIHexDecode"))
	s := NewStream(dict, []byte("68656C6C6F>"))
	require.NoError(t, s.Decode(DefaultFilterRegistry()))
	require.True(t, s.HasDecoded())
	require.Equal(t, "hello", string(s.Decoded))
}

func TestStreamDecodeASCII85(t *testing.T) {
	var buf bytes.Buffer
	ew := ascii85.NewEncoder(&buf)
	_, err := ew.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, ew.Close())
	raw := append(buf.Bytes(), []byte("~>")...)

	dict := NewEmptyDictionary()
	dict.Set("Filter", NewName("ASCII85Decode"))
	s := NewStream(dict, raw)
	require.NoError(t, s.Decode(DefaultFilterRegistry()))
	require.Equal(t, "hello", string(s.Decoded))
}

func TestStreamDecodeRunLength(t *testing.T) {
	// A literal run of 3 bytes ("abc") followed by the EOD marker (128).
	raw := []byte{2, 'a', 'b', 'c', 128}
	dict := NewEmptyDictionary()
	dict.Set("Filter", NewName("RunLengthDecode"))
	s := NewStream(dict, raw)
	require.NoError(t, s.Decode(DefaultFilterRegistry()))
	require.Equal(t, "abc", string(s.Decoded))
}

func TestStreamDecodeRunLengthRepeat(t *testing.T) {
	// A repeat run: byte 'x' repeated 257-250=7 times.
	raw := []byte{250, 'x', 128}
	dict := NewEmptyDictionary()
	dict.Set("Filter", NewName("RunLengthDecode"))
	s := NewStream(dict, raw)
	require.NoError(t, s.Decode(DefaultFilterRegistry()))
	require.Equal(t, "xxxxxxx", string(s.Decoded))
}

func TestStreamDecodeFlate(t *testing.T) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = zw.Write([]byte("hello world hello world"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	dict := NewEmptyDictionary()
	dict.Set("Filter", NewName("FlateDecode"))
	s := NewStream(dict, buf.Bytes())
	require.NoError(t, s.Decode(DefaultFilterRegistry()))
	require.Equal(t, "hello world hello world", string(s.Decoded))
}

func TestStreamDecodeFilterChainArray(t *testing.T) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = zw.Write([]byte("68656C6C6F>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	dict := NewEmptyDictionary()
	dict.Set("Filter", NewArray(NewName("FlateDecode"), NewName("ASCIIHexDecode")))
	s := NewStream(dict, buf.Bytes())
	require.NoError(t, s.Decode(DefaultFilterRegistry()))
	require.Equal(t, "hello", string(s.Decoded))
}

func TestStreamDecodeUnknownFilterLeavesRawIntact(t *testing.T) {
	dict := NewEmptyDictionary()
	dict.Set("Filter", NewName("JBIG2Decode"))
	raw := []byte("opaque image data")
	s := NewStream(dict, raw)
	err := s.Decode(DefaultFilterRegistry())
	require.Error(t, err)
	require.False(t, s.HasDecoded())
	require.Equal(t, raw, s.Raw)
}

func TestStreamDecodeNoFilterIsIdentity(t *testing.T) {
	dict := NewEmptyDictionary()
	raw := []byte("plain bytes")
	s := NewStream(dict, raw)
	require.NoError(t, s.Decode(DefaultFilterRegistry()))
	require.Equal(t, raw, s.Decoded)
}

func TestStreamFilterArrayRejectsNonNameElement(t *testing.T) {
	dict := NewEmptyDictionary()
	dict.Set("Filter", NewArray(NewInt(1)))
	s := NewStream(dict, []byte("x"))
	err := s.Decode(DefaultFilterRegistry())
	require.Error(t, err)
}

func TestStreamDecodeParmsNullElementMeansDefault(t *testing.T) {
	dict := NewEmptyDictionary()
	dict.Set("Filter", NewArray(NewName("ASCIIHexDecode")))
	dict.Set("DecodeParms", NewArray(Null))
	s := NewStream(dict, []byte("68656C6C6F>"))
	require.NoError(t, s.Decode(DefaultFilterRegistry()))
	require.Equal(t, "hello", string(s.Decoded))
}
