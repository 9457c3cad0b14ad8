/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package writer implements the write transformer pipeline (spec.md §4.6):
// turning an in-memory value graph back into PDF wire form, assigning
// object numbers to composites that need to become indirect objects,
// suppressing re-emission of already-written nodes, and emitting a
// classic or stream-form cross-reference section plus trailer.
package writer

import (
	"bufio"
	"io"

	"github.com/pdfgraph/pdfgraph"
	"github.com/pdfgraph/pdfgraph/value"
)

// Context carries the mutable state threaded through one write pass: the
// byte-counting destination, the set of composites already started (or
// about to be started) as indirect objects, and the object-number →
// byte-offset map the final xref is built from. Grounded on
// unidoc-unipdf's PdfWriter (writePos, crossReferenceMap) generalized to
// the tagged-union value model, and on borb's TransformerWriteContext
// (destination + duplicate_references).
type Context struct {
	dest *bufio.Writer
	pos  int64

	nextObjectNumber uint32

	// identity maps from the pointer backing a composite (Dictionary,
	// Stream, or Array) to the Reference assigned to it. Keying by pointer,
	// not by value.Ref, is what lets getReference recognize "this is the
	// same node I've already seen" even across Values that don't yet carry
	// a Ref back-edge.
	dictRefs   map[*value.Dictionary]*value.Reference
	streamRefs map[*value.Stream]*value.Reference
	arrayRefs  map[*value.Array]*value.Reference

	// duplicateRefs is populated with a Reference's Key as soon as
	// writeObject starts that node, before the node's children are visited
	// (spec.md §4.6 "duplicate suppression"). A composite reachable twice (shared
	// sub-dictionary, or a cycle back to an ancestor) is only ever started
	// once; later encounters are no-ops.
	duplicateRefs map[value.Key]bool

	// objectLocations records, for every emitted object, the byte offset of
	// its "N G obj" token at the moment it was written, plus the generation
	// it was written under (spec.md §4.7); the xref is built from this map,
	// sorted by object number, once the pass completes (spec.md §5: "the
	// xref's object-number order is ascending regardless of emission
	// order"). Keyed by object number alone: a single write pass never
	// emits the same object number twice under different generations, and
	// the xref rows this map feeds are themselves indexed by object number.
	objectLocations map[uint32]objectLocation
}

// objectLocation is where and under what generation an object number was
// written.
type objectLocation struct {
	offset     int64
	generation uint16
}

// NewContext returns a Context ready to write objects starting at
// firstObjectNumber (1 for a from-scratch document).
func NewContext(w io.Writer, firstObjectNumber uint32) *Context {
	return &Context{
		dest:             bufio.NewWriter(w),
		nextObjectNumber: firstObjectNumber,
		dictRefs:         map[*value.Dictionary]*value.Reference{},
		streamRefs:       map[*value.Stream]*value.Reference{},
		arrayRefs:        map[*value.Array]*value.Reference{},
		duplicateRefs:    map[value.Key]bool{},
		objectLocations:  map[uint32]objectLocation{},
	}
}

func (c *Context) writeString(s string) error {
	n, err := c.dest.WriteString(s)
	c.pos += int64(n)
	return err
}

func (c *Context) writeBytes(b []byte) error {
	n, err := c.dest.Write(b)
	c.pos += int64(n)
	return err
}

// Flush flushes any buffered output to the underlying writer.
func (c *Context) Flush() error {
	return c.dest.Flush()
}

func (c *Context) allocate() *value.Reference {
	ref := &value.Reference{ObjectNumber: c.nextObjectNumber, GenerationNumber: 0, IsInUse: true}
	c.nextObjectNumber++
	return ref
}

// getReference implements spec.md §4.6's identity assignment: if v's
// underlying composite node already has a Reference — either because a
// prior getReference call assigned one, or because v was read from a file
// as an indirect object and still carries its Ref back-edge — that
// Reference is reused; otherwise a fresh one is allocated.
func (c *Context) getReference(v value.Value) (*value.Reference, error) {
	switch v.Kind {
	case value.KindDictionary:
		if ref, ok := c.dictRefs[v.Dict]; ok {
			return ref, nil
		}
		ref := v.Ref
		if ref == nil {
			ref = c.allocate()
		}
		c.dictRefs[v.Dict] = ref
		return ref, nil
	case value.KindArray:
		if ref, ok := c.arrayRefs[v.Array]; ok {
			return ref, nil
		}
		ref := v.Ref
		if ref == nil {
			ref = c.allocate()
		}
		c.arrayRefs[v.Array] = ref
		return ref, nil
	case value.KindStream:
		if ref, ok := c.streamRefs[v.Stream]; ok {
			return ref, nil
		}
		ref := v.Ref
		if ref == nil {
			ref = c.allocate()
		}
		c.streamRefs[v.Stream] = ref
		return ref, nil
	default:
		return nil, pdfgraph.NewError(pdfgraph.TypeMismatch, "getReference called on non-composite kind %s", v.Kind)
	}
}

// withRef returns a copy of v carrying ref as its Ref back-edge, leaving v
// itself untouched (Value is a plain struct; composite identity lives in
// the pointer fields, not in this copy).
func withRef(v value.Value, ref *value.Reference) value.Value {
	v.Ref = ref
	return v
}
