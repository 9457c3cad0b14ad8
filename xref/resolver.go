/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xref

import (
	"github.com/pdfgraph/pdfgraph"
	"github.com/pdfgraph/pdfgraph/common"
	"github.com/pdfgraph/pdfgraph/value"
)

// resolveState tags where a cached cache entry stands: not yet started,
// in progress (guards cycles), or done.
type resolveState int

const (
	stateDone resolveState = iota
	stateInProgress
)

type cacheEntry struct {
	state resolveState
	value value.Value
}

// Resolver dereferences References to Values, per spec.md §4.5: on-demand
// resolution, a per-document (object_number, generation_number) cache that
// gives the graph its identity under shared references, and cycle
// detection via an in-progress marker. Grounded on
// benoitkugler-pdf/reader/file/xreftable.go's resolveObjectNumber (assign a
// placeholder before recursing) and unidoc-unipdf/core/crossrefs.go's
// lookupObjectViaOS for compressed-object-stream lookups.
type Resolver struct {
	data  []byte
	table *Table
	regs  *value.FilterRegistry
	cache map[value.Key]*cacheEntry
}

// NewResolver builds a Resolver over data using table's object locations.
func NewResolver(data []byte, table *Table, reg *value.FilterRegistry) *Resolver {
	return &Resolver{data: data, table: table, regs: reg, cache: map[value.Key]*cacheEntry{}}
}

// Resolve dereferences ref to its value, per spec.md §4.5.
func (r *Resolver) Resolve(ref *value.Reference) (value.Value, error) {
	key := ref.Key()
	if cached, ok := r.cache[key]; ok {
		if cached.state == stateInProgress {
			// Cycle: return the in-progress placeholder, an empty
			// dictionary carrying ref. When the outer frame finishes, it
			// caches its own parsed value in place of the placeholder; the
			// placeholder handed out here is not filled in and stays empty.
			common.Log.Trace("resolver: cycle detected resolving %d %d R, returning placeholder", ref.ObjectNumber, ref.GenerationNumber)
			return cached.value, nil
		}
		return cached.value, nil
	}

	placeholder := value.Value{Kind: value.KindDictionary, Dict: value.NewEmptyDictionary(), Ref: ref}
	entry := &cacheEntry{state: stateInProgress, value: placeholder}
	r.cache[key] = entry

	resolved, err := r.resolveUncached(ref)
	if err != nil {
		delete(r.cache, key)
		return value.Value{}, err
	}

	entry.state = stateDone
	entry.value = resolved
	return resolved, nil
}

// ResolveIndirect fully dereferences v: if v is a KindIndirect placeholder,
// resolves it (recursively, in case of nested indirection); otherwise
// returns v unchanged.
func (r *Resolver) ResolveIndirect(v value.Value) (value.Value, error) {
	for v.Kind == value.KindIndirect {
		resolved, err := r.Resolve(v.Indirect)
		if err != nil {
			return value.Value{}, err
		}
		v = resolved
	}
	return v, nil
}

func (r *Resolver) resolveUncached(ref *value.Reference) (value.Value, error) {
	tableRef, ok := r.table.Get(ref.ObjectNumber)
	if !ok {
		return value.Value{}, pdfgraph.NewError(pdfgraph.UnresolvedReference, "object %d %d R not present in xref table", ref.ObjectNumber, ref.GenerationNumber)
	}
	if !tableRef.IsInUse {
		return value.Value{}, pdfgraph.NewError(pdfgraph.UnresolvedReference, "object %d %d R is a free-list entry", ref.ObjectNumber, ref.GenerationNumber)
	}

	if tableRef.IsCompressed() {
		return r.resolveCompressed(tableRef)
	}
	if tableRef.ByteOffset == nil {
		return value.Value{}, pdfgraph.NewError(pdfgraph.UnresolvedReference, "object %d %d R has neither byte_offset nor parent stream", ref.ObjectNumber, ref.GenerationNumber)
	}

	lex := value.NewLexer(r.data)
	if err := lex.Seek(int64(*tableRef.ByteOffset)); err != nil {
		return value.Value{}, err
	}
	obj, err := lex.ReadIndirectObject()
	if err != nil {
		return value.Value{}, pdfgraph.WrapError(pdfgraph.UnresolvedReference, err, "parsing object %d %d R at offset %d", ref.ObjectNumber, ref.GenerationNumber, *tableRef.ByteOffset)
	}
	if obj.Kind == value.KindStream {
		if err := obj.Stream.Decode(r.regs); err != nil {
			common.Log.Debug("resolver: stream decode failed for %d %d R: %v", ref.ObjectNumber, ref.GenerationNumber, err)
		}
	}
	return obj, nil
}

// resolveCompressed resolves an object inside a compressed object stream
// (/ObjStm), per spec.md §4.5: decode the container's header "N First"
// followed by N (obj_num, rel_offset) pairs, then parse the object at
// First + rel_offset within the decoded bytes.
func (r *Resolver) resolveCompressed(ref *value.Reference) (value.Value, error) {
	parentRef := &value.Reference{ObjectNumber: *ref.ParentStreamObjectNumber}
	if tableRef, ok := r.table.Get(parentRef.ObjectNumber); ok {
		parentRef = tableRef
	}
	parent, err := r.Resolve(parentRef)
	if err != nil {
		return value.Value{}, pdfgraph.WrapError(pdfgraph.ObjectStreamMalformed, err, "resolving containing object stream %d", *ref.ParentStreamObjectNumber)
	}
	if parent.Kind != value.KindStream {
		return value.Value{}, pdfgraph.NewError(pdfgraph.ObjectStreamMalformed, "object %d is not a Stream (expected /ObjStm)", *ref.ParentStreamObjectNumber)
	}
	typeVal, _ := parent.Stream.Dict.Get("Type")
	if typeVal.Kind != value.KindName || typeVal.Name != "ObjStm" {
		return value.Value{}, pdfgraph.NewError(pdfgraph.ObjectStreamMalformed, "object %d dictionary lacks /Type /ObjStm", *ref.ParentStreamObjectNumber)
	}
	if !parent.Stream.HasDecoded() {
		if err := parent.Stream.Decode(r.regs); err != nil {
			return value.Value{}, pdfgraph.WrapError(pdfgraph.ObjectStreamMalformed, err, "decoding object stream %d", *ref.ParentStreamObjectNumber)
		}
	}

	n, err := readRequiredInt(parent.Stream.Dict, "N")
	if err != nil {
		return value.Value{}, pdfgraph.WrapError(pdfgraph.ObjectStreamMalformed, err, "object stream %d", *ref.ParentStreamObjectNumber)
	}
	first, err := readRequiredInt(parent.Stream.Dict, "First")
	if err != nil {
		return value.Value{}, pdfgraph.WrapError(pdfgraph.ObjectStreamMalformed, err, "object stream %d", *ref.ParentStreamObjectNumber)
	}

	headerLex := value.NewLexer(parent.Stream.Decoded)
	offsets := make([]int64, n)
	objNums := make([]uint32, n)
	for i := int64(0); i < n; i++ {
		headerLex.SkipWhitespace()
		numTok, err := headerLex.ReadToken()
		if err != nil || numTok.Kind != value.TokenNumber {
			return value.Value{}, pdfgraph.NewError(pdfgraph.ObjectStreamMalformed, "object stream %d: malformed header entry %d", *ref.ParentStreamObjectNumber, i)
		}
		headerLex.SkipWhitespace()
		offTok, err := headerLex.ReadToken()
		if err != nil || offTok.Kind != value.TokenNumber {
			return value.Value{}, pdfgraph.NewError(pdfgraph.ObjectStreamMalformed, "object stream %d: malformed header entry %d", *ref.ParentStreamObjectNumber, i)
		}
		objNums[i] = uint32(parseInt(numTok.Text()))
		offsets[i] = parseInt(offTok.Text())
	}

	idx := int64(*ref.IndexInParentStream)
	if idx < 0 || idx >= n {
		return value.Value{}, pdfgraph.NewError(pdfgraph.ObjectStreamMalformed, "object stream %d: index %d out of range [0,%d)", *ref.ParentStreamObjectNumber, idx, n)
	}
	if objNums[idx] != ref.ObjectNumber {
		return value.Value{}, pdfgraph.NewError(pdfgraph.ObjectStreamMalformed, "object stream %d: header entry %d names object %d, expected %d", *ref.ParentStreamObjectNumber, idx, objNums[idx], ref.ObjectNumber)
	}

	bodyLex := value.NewLexer(parent.Stream.Decoded)
	if err := bodyLex.Seek(first + offsets[idx]); err != nil {
		return value.Value{}, pdfgraph.WrapError(pdfgraph.ObjectStreamMalformed, err, "seeking to compressed object %d", ref.ObjectNumber)
	}
	body, err := bodyLex.ReadObject()
	if err != nil {
		return value.Value{}, pdfgraph.WrapError(pdfgraph.ObjectStreamMalformed, err, "parsing compressed object %d", ref.ObjectNumber)
	}
	body.Ref = ref
	return body, nil
}

func parseInt(s string) int64 {
	var v int64
	neg := false
	for i, c := range []byte(s) {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int64(c-'0')
	}
	if neg {
		v = -v
	}
	return v
}
