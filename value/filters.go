/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"bytes"
	"compress/flate"
	"encoding/ascii85"
	"encoding/hex"
	"io"

	hhlzw "github.com/hhrutter/lzw"

	"github.com/pdfgraph/pdfgraph"
)

// Filter decodes raw stream bytes for one stage of a filter chain, per the
// pluggable registry spec.md §4.3/§6 calls for. parms is the stage's
// /DecodeParms entry, or nil for default parameters.
type Filter interface {
	Decode(raw []byte, parms *Dictionary) ([]byte, error)
}

// FilterRegistry maps a /Filter Name to its Filter implementation. The core
// itself is agnostic to which filters exist; DefaultFilterRegistry supplies
// a convenience set.
type FilterRegistry struct {
	filters map[Name]Filter
}

// NewFilterRegistry returns an empty registry.
func NewFilterRegistry() *FilterRegistry {
	return &FilterRegistry{filters: map[Name]Filter{}}
}

// Register binds name to filter, overwriting any existing binding.
func (r *FilterRegistry) Register(name Name, filter Filter) {
	r.filters[name] = filter
}

// Lookup returns the Filter registered for name, if any.
func (r *FilterRegistry) Lookup(name Name) (Filter, bool) {
	f, ok := r.filters[name]
	return f, ok
}

// DefaultFilterRegistry returns a registry pre-populated with the small set
// of filters spec.md §1/§6 calls out as convenience defaults: FlateDecode
// (with PNG/TIFF predictor support), LZWDecode, ASCIIHexDecode,
// ASCII85Decode, and RunLengthDecode. Callers needing image codecs
// (DCTDecode, CCITTFaxDecode, JPXDecode) register their own, as those are
// explicitly out of scope (spec.md §1).
func DefaultFilterRegistry() *FilterRegistry {
	r := NewFilterRegistry()
	r.Register("FlateDecode", flateFilter{})
	r.Register("Fl", flateFilter{})
	r.Register("LZWDecode", lzwFilter{})
	r.Register("LZW", lzwFilter{})
	r.Register("ASCIIHexDecode", asciiHexFilter{})
	r.Register("AHx", asciiHexFilter{})
	r.Register("ASCII85Decode", ascii85Filter{})
	r.Register("A85", ascii85Filter{})
	r.Register("RunLengthDecode", runLengthFilter{})
	r.Register("RL", runLengthFilter{})
	return r
}

// intParm reads an integer /DecodeParms entry, returning fallback if absent
// or not a Number.
func intParm(parms *Dictionary, key Name, fallback int) int {
	if parms == nil {
		return fallback
	}
	v, ok := parms.Get(key)
	if !ok || v.Kind != KindNumber {
		return fallback
	}
	return int(v.Number.Int64())
}

// flateFilter implements /FlateDecode over stdlib compress/flate, applying
// the PNG/TIFF predictor described by /DecodeParms when /Predictor > 1.
type flateFilter struct{}

func (flateFilter) Decode(raw []byte, parms *Dictionary) ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(raw))
	defer zr.Close()
	var out bytes.Buffer
	if _, err := io.Copy(&out, zr); err != nil {
		return nil, err
	}
	data := out.Bytes()

	predictor := intParm(parms, "Predictor", 1)
	if predictor <= 1 {
		return data, nil
	}
	columns := intParm(parms, "Columns", 1)
	colors := intParm(parms, "Colors", 1)
	bpc := intParm(parms, "BitsPerComponent", 8)
	return applyPredictor(data, predictor, columns, colors, bpc)
}

// lzwFilter implements /LZWDecode via github.com/hhrutter/lzw, which (unlike
// stdlib compress/lzw) supports the PDF EarlyChange parameter.
type lzwFilter struct{}

func (lzwFilter) Decode(raw []byte, parms *Dictionary) ([]byte, error) {
	earlyChange := intParm(parms, "EarlyChange", 1) != 0
	lr := hhlzw.NewReader(bytes.NewReader(raw), earlyChange)
	defer lr.Close()
	var out bytes.Buffer
	if _, err := io.Copy(&out, lr); err != nil {
		return nil, err
	}
	data := out.Bytes()

	predictor := intParm(parms, "Predictor", 1)
	if predictor <= 1 {
		return data, nil
	}
	columns := intParm(parms, "Columns", 1)
	colors := intParm(parms, "Colors", 1)
	bpc := intParm(parms, "BitsPerComponent", 8)
	return applyPredictor(data, predictor, columns, colors, bpc)
}

// asciiHexFilter implements /ASCIIHexDecode: hex digits terminated by '>'.
type asciiHexFilter struct{}

func (asciiHexFilter) Decode(raw []byte, _ *Dictionary) ([]byte, error) {
	clean := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b == '>' {
			break
		}
		if IsWhiteSpace(b) {
			continue
		}
		clean = append(clean, b)
	}
	if len(clean)%2 == 1 {
		clean = append(clean, '0')
	}
	out := make([]byte, hex.DecodedLen(len(clean)))
	n, err := hex.Decode(out, clean)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// ascii85Filter implements /ASCII85Decode: base-85 terminated by '~>'.
type ascii85Filter struct{}

func (ascii85Filter) Decode(raw []byte, _ *Dictionary) ([]byte, error) {
	trimmed := bytes.TrimSuffix(bytes.TrimSpace(raw), []byte("~>"))
	dr := ascii85.NewDecoder(bytes.NewReader(trimmed))
	var out bytes.Buffer
	if _, err := io.Copy(&out, dr); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// runLengthFilter implements /RunLengthDecode (ISO 32000-1 7.4.5).
type runLengthFilter struct{}

func (runLengthFilter) Decode(raw []byte, _ *Dictionary) ([]byte, error) {
	var out bytes.Buffer
	i := 0
	for i < len(raw) {
		length := raw[i]
		i++
		switch {
		case length == 128:
			return out.Bytes(), nil
		case length < 128:
			n := int(length) + 1
			if i+n > len(raw) {
				return nil, pdfgraph.NewError(pdfgraph.StreamDecodeError, "RunLengthDecode: literal run past end of data")
			}
			out.Write(raw[i : i+n])
			i += n
		default:
			if i >= len(raw) {
				return nil, pdfgraph.NewError(pdfgraph.StreamDecodeError, "RunLengthDecode: repeat run past end of data")
			}
			count := 257 - int(length)
			b := raw[i]
			i++
			for j := 0; j < count; j++ {
				out.WriteByte(b)
			}
		}
	}
	return out.Bytes(), nil
}
