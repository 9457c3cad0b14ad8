/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package xref implements the cross-reference engine and object resolver
// (spec.md §4.4, §4.5): locating and parsing classic and stream-form xref
// sections, walking hybrid/incremental-update chains, and dereferencing
// Reference handles to values (including compressed-object-stream members).
package xref

import (
	"github.com/pdfgraph/pdfgraph/value"
)

// Table is the engine's output per spec.md §4.4: a map from object number to
// Reference plus the merged trailer dictionary. It does not materialize
// object bodies; Resolver does that on demand.
type Table struct {
	Entries map[uint32]*value.Reference
	Trailer *value.Dictionary
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{Entries: map[uint32]*value.Reference{}}
}

// Get returns the Reference for objNum, if known.
func (t *Table) Get(objNum uint32) (*value.Reference, bool) {
	r, ok := t.Entries[objNum]
	return r, ok
}

// merge folds src's entries into t under spec.md §4.4's hybrid-resolution
// rule: "the first occurrence wins" — entries already present in t (seen
// earlier in the file-tail-to-head walk) are kept, with two exceptions: an
// existing free entry with no location is replaced wholesale by an in-use
// entry from src, and if an existing entry is missing compressed-object
// fields that a later (older-in-file) occurrence supplies, those fields are
// filled in (see DESIGN.md's Open Question decision). t's trailer is left untouched; the
// caller merges trailers separately so /Root and /Size come from the
// newest section.
func (t *Table) merge(src *Table) {
	for objNum, entry := range src.Entries {
		existing, ok := t.Entries[objNum]
		if !ok {
			t.Entries[objNum] = entry
			continue
		}
		if !existing.IsInUse && !existing.IsCompressed() && existing.ByteOffset == nil && entry.IsInUse {
			// existing was only a free-list placeholder; an in-use entry
			// from an older section is still more useful than nothing.
			t.Entries[objNum] = entry
			continue
		}
		if existing.ParentStreamObjectNumber == nil && entry.ParentStreamObjectNumber != nil {
			existing.ParentStreamObjectNumber = entry.ParentStreamObjectNumber
			existing.IndexInParentStream = entry.IndexInParentStream
		}
	}
}
