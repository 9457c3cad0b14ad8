/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"github.com/pdfgraph/pdfgraph"
)

// Stream is a Dictionary paired with raw stream bytes and, once Decode has
// succeeded, the materialized decoded bytes (spec.md §3, §4.3).
type Stream struct {
	Dict    *Dictionary
	Raw     []byte
	Decoded []byte

	// decoded records whether Decode has run and succeeded, distinguishing
	// "decoded to zero bytes" from "never decoded."
	decoded bool
}

// NewStream builds a Stream from a dictionary and raw bytes. Decode must be
// called separately to populate Decoded.
func NewStream(dict *Dictionary, raw []byte) *Stream {
	return &Stream{Dict: dict, Raw: raw}
}

// HasDecoded reports whether Decode has populated Decoded.
func (s *Stream) HasDecoded() bool {
	return s.decoded
}

// filterEntry pairs a filter Name with its optional decode parameters.
type filterEntry struct {
	name   Name
	parms  *Dictionary
}

// filterChain builds the ordered list of (filter, parms) pairs from the
// stream dictionary's /Filter and /DecodeParms entries, per spec.md §4.3
// step 2: Name or Array of Names, paired element-wise with Dictionary or
// Array of Dictionaries; a missing or null DecodeParms element means
// default parameters.
func (s *Stream) filterChain() ([]filterEntry, error) {
	filterVal, ok := s.Dict.Get("Filter")
	if !ok || filterVal.IsNull() {
		return nil, nil
	}

	var names []Name
	switch filterVal.Kind {
	case KindName:
		names = []Name{filterVal.Name}
	case KindArray:
		for _, el := range filterVal.Array.Elems {
			if el.Kind != KindName {
				return nil, pdfgraph.NewError(pdfgraph.TypeMismatch, "/Filter array element is not a Name")
			}
			names = append(names, el.Name)
		}
	default:
		return nil, pdfgraph.NewError(pdfgraph.TypeMismatch, "/Filter is neither a Name nor an Array")
	}

	var parmsList []*Dictionary
	if parmsVal, ok := s.Dict.Get("DecodeParms"); ok && !parmsVal.IsNull() {
		switch parmsVal.Kind {
		case KindDictionary:
			parmsList = []*Dictionary{parmsVal.Dict}
		case KindArray:
			for _, el := range parmsVal.Array.Elems {
				if el.IsNull() {
					parmsList = append(parmsList, nil)
					continue
				}
				if el.Kind != KindDictionary {
					return nil, pdfgraph.NewError(pdfgraph.TypeMismatch, "/DecodeParms array element is not a Dictionary")
				}
				parmsList = append(parmsList, el.Dict)
			}
		default:
			return nil, pdfgraph.NewError(pdfgraph.TypeMismatch, "/DecodeParms is neither a Dictionary nor an Array")
		}
	}

	chain := make([]filterEntry, len(names))
	for i, n := range names {
		var parms *Dictionary
		if i < len(parmsList) {
			parms = parmsList[i]
		}
		chain[i] = filterEntry{name: n, parms: parms}
	}
	return chain, nil
}

// Decode runs s's declared filter chain against reg, materializing Decoded
// on success. On failure, s retains its raw bytes and Decoded stays unset.
// A filter that fails yields a StreamDecodeError naming it (spec.md §4.3
// step 4); a filter name with no registered decoder yields UnknownFilter;
// a malformed /Filter or /DecodeParms entry yields TypeMismatch.
func (s *Stream) Decode(reg *FilterRegistry) error {
	chain, err := s.filterChain()
	if err != nil {
		return err
	}
	data := s.Raw
	for _, entry := range chain {
		filter, ok := reg.Lookup(entry.name)
		if !ok {
			return pdfgraph.NewError(pdfgraph.UnknownFilter, "no decoder registered for filter %q", entry.name)
		}
		decoded, err := filter.Decode(data, entry.parms)
		if err != nil {
			return pdfgraph.WrapError(pdfgraph.StreamDecodeError, err, "filter %q failed at stage input length %d", entry.name, len(data))
		}
		data = decoded
	}
	s.Decoded = data
	s.decoded = true
	return nil
}
