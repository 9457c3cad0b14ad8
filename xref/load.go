/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xref

import (
	"bytes"

	"github.com/pdfgraph/pdfgraph"
	"github.com/pdfgraph/pdfgraph/common"
	"github.com/pdfgraph/pdfgraph/value"
)

// Load builds the full merged Table for a document, per spec.md §4.4
// "Hybrid / chain resolution": locate the primary xref, parse it, then walk
// its /Prev (and, for hybrid files, /XRefStm) chain, merging each earlier
// section under the first-occurrence-wins rule. A /Prev chain that
// revisits an offset already seen fails with XrefLoop.
func Load(data []byte, reg *value.FilterRegistry, opts Options) (*Table, error) {
	offset, err := Locate(data)
	if err != nil {
		return nil, err
	}

	merged := NewTable()
	seen := map[int64]bool{}
	steps := 0

	for {
		if seen[offset] {
			return nil, pdfgraph.NewError(pdfgraph.XrefLoop, "xref /Prev chain revisits offset %d", offset)
		}
		seen[offset] = true
		steps++
		if opts.MaxPrevChainLength > 0 && steps > opts.MaxPrevChainLength {
			return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "xref /Prev chain exceeds %d sections", opts.MaxPrevChainLength)
		}

		section, err := parseSection(data, offset, reg)
		if err != nil {
			return nil, err
		}
		common.Log.Trace("xref section at offset %d: %d entries", offset, len(section.Entries))

		merged.merge(section)
		if merged.Trailer == nil {
			merged.Trailer = section.Trailer
		} else {
			fillMissing(merged.Trailer, section.Trailer)
		}

		// Hybrid files carry a classic trailer plus /XRefStm pointing at the
		// compressed-object entries for the same update; merge it as if it
		// were simply one more earlier section, before following /Prev.
		if xrefStmVal, ok := section.Trailer.Get("XRefStm"); ok && xrefStmVal.Kind == value.KindNumber {
			stmOffset := xrefStmVal.Number.Int64()
			if !seen[stmOffset] {
				seen[stmOffset] = true
				stmSection, err := ParseStreamXref(data, stmOffset, reg)
				if err != nil {
					return nil, err
				}
				merged.merge(stmSection)
			}
		}

		prevVal, ok := section.Trailer.Get("Prev")
		if !ok || prevVal.Kind != value.KindNumber {
			break
		}
		offset = prevVal.Number.Int64()
	}

	return merged, nil
}

// parseSection dispatches to the classic or stream-form parser depending on
// what's found at offset: the literal "xref" keyword, or an indirect object
// (an /XRef stream).
func parseSection(data []byte, offset int64, reg *value.FilterRegistry) (*Table, error) {
	trimmed := bytes.TrimLeft(data[offset:], " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("xref")) {
		return ParseTable(data, offset)
	}
	return ParseStreamXref(data, offset, reg)
}

// fillMissing copies keys from older into newer that newer doesn't already
// have, so e.g. /Root declared only in an early section is still found.
func fillMissing(newer, older *value.Dictionary) {
	if older == nil {
		return
	}
	for _, k := range older.Keys() {
		if _, ok := newer.Get(k); !ok {
			v, _ := older.Get(k)
			newer.Set(k, v)
		}
	}
}
