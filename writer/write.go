/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package writer

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pdfgraph/pdfgraph"
	"github.com/pdfgraph/pdfgraph/value"
)

// Options configures one write pass (spec.md §4.6, §6). Root must be a
// Dictionary, Array, or Stream value (the document catalog, ordinarily);
// it is always written as a top-level indirect object even if it has no
// other referrer.
type Options struct {
	Root value.Value

	MajorVersion, MinorVersion int

	// FirstObjectNumber is the first object number the pass may allocate
	// for composites that don't already carry a Ref. 1 for a from-scratch
	// document.
	FirstObjectNumber uint32

	// ExtraTrailer holds additional trailer entries (e.g. /Info, /ID,
	// /Encrypt) merged in beside the required /Size, /Root. May be nil.
	ExtraTrailer *value.Dictionary

	// UseXrefStream forces stream-form xref output; otherwise the classic
	// tabular form is used (spec.md §4.6 "Xref emission": "tabular
	// (default) ... when any compressed objects are present" — this
	// writer never manufactures new compressed objects itself, so the
	// choice is left to the caller).
	UseXrefStream bool
}

// Write runs one full write pass: header, every object reachable from
// Root, a classic or stream-form xref, the trailer, and the
// startxref/%%EOF trailer (spec.md §6).
func Write(w io.Writer, p Options) error {
	if p.Root.Kind != value.KindDictionary && p.Root.Kind != value.KindArray && p.Root.Kind != value.KindStream {
		return pdfgraph.NewError(pdfgraph.TypeMismatch, "writer: Root must be a composite value, got %s", p.Root.Kind)
	}
	first := p.FirstObjectNumber
	if first == 0 {
		first = 1
	}
	c := NewContext(w, first)

	if err := c.writeString(fmt.Sprintf("%%PDF-%d.%d\n", p.MajorVersion, p.MinorVersion)); err != nil {
		return err
	}
	if err := c.writeBytes([]byte("%\xE2\xE3\xCF\xD3\n")); err != nil {
		return err
	}

	rootRef, err := c.getReference(p.Root)
	if err != nil {
		return err
	}
	if err := c.writeObject(withRef(p.Root, rootRef)); err != nil {
		return err
	}

	// ExtraTrailer entries are written into the trailer dictionary itself,
	// not queued through writeObject, so any composite they carry (e.g. an
	// /Info dictionary) must run through the same transformChild rewrite
	// the root's own body gets: turned into an Indirect placeholder and
	// queued for its own "N G obj" block, or it would inline its full body
	// into the trailer instead of being referenced by it.
	extraTrailer, err := c.transformExtraTrailer(p.ExtraTrailer)
	if err != nil {
		return err
	}

	xrefOffset := c.pos
	maxObjNum := rootRef.ObjectNumber
	for num := range c.objectLocations {
		if num > maxObjNum {
			maxObjNum = num
		}
	}
	size := maxObjNum + 1

	if p.UseXrefStream {
		if err := c.writeXrefStream(size, rootRef, extraTrailer); err != nil {
			return err
		}
	} else {
		if err := c.writeClassicXref(size); err != nil {
			return err
		}
		if err := c.writeTrailer(size, rootRef, extraTrailer); err != nil {
			return err
		}
	}

	if err := c.writeString(fmt.Sprintf("startxref\n%d\n%%%%EOF\n", xrefOffset)); err != nil {
		return err
	}
	return c.Flush()
}

// transformExtraTrailer rewrites extra's composite entries into Indirect
// placeholders and writes the objects they displaced, the same way a
// dictionary's composite children are handled inside writeObject. Returns
// nil if extra is nil.
func (c *Context) transformExtraTrailer(extra *value.Dictionary) (*value.Dictionary, error) {
	if extra == nil {
		return nil, nil
	}
	var queue []value.Value
	out := value.NewEmptyDictionary()
	for _, k := range extra.Keys() {
		child, _ := extra.Get(k)
		rewritten, err := c.transformChild(child, &queue)
		if err != nil {
			return nil, err
		}
		out.Set(k, rewritten)
	}
	for _, child := range queue {
		if err := c.writeObject(child); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// writeClassicXref emits the tabular form byte-exactly per spec.md §4.4: a
// 10-digit offset, a space, a 5-digit generation, a space, 'n'/'f', and a
// 2-byte "\r\n" terminator.
func (c *Context) writeClassicXref(size uint32) error {
	if err := c.writeString(fmt.Sprintf("xref\n0 %d\n", size)); err != nil {
		return err
	}
	if err := c.writeString("0000000000 65535 f\r\n"); err != nil {
		return err
	}
	for num := uint32(1); num < size; num++ {
		loc, ok := c.objectLocations[num]
		if !ok {
			if err := c.writeString("0000000000 65535 f\r\n"); err != nil {
				return err
			}
			continue
		}
		if err := c.writeString(fmt.Sprintf("%010d %05d n\r\n", loc.offset, loc.generation)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) writeTrailer(size uint32, root *value.Reference, extra *value.Dictionary) error {
	trailer := buildTrailerDict(size, root, extra)
	if err := c.writeString("trailer\n"); err != nil {
		return err
	}
	dictVal := value.Value{Kind: value.KindDictionary, Dict: trailer}
	n, err := dictVal.WriteTo(c.dest)
	c.pos += n
	if err != nil {
		return err
	}
	return c.writeString("\n")
}

func buildTrailerDict(size uint32, root *value.Reference, extra *value.Dictionary) *value.Dictionary {
	trailer := value.NewEmptyDictionary()
	if extra != nil {
		for _, k := range extra.Keys() {
			v, _ := extra.Get(k)
			trailer.Set(k, v)
		}
	}
	trailer.Set("Size", value.NewInt(int64(size)))
	trailer.Set("Root", value.NewIndirect(root))
	return trailer
}

// writeXrefStream emits the PDF 1.5+ stream form (spec.md §4.4): a single
// object whose decoded body is Σcount_i fixed-width big-endian entries,
// with /W [1 4 2] (type, offset-or-parent, generation-or-index) and a
// single /Index subsection covering the whole object-number range.
func (c *Context) writeXrefStream(size uint32, root *value.Reference, extra *value.Dictionary) error {
	xrefObjNum := size
	size = xrefObjNum + 1

	var buf []byte
	writeEntry := func(typ byte, f2 uint32, f3 uint16) {
		buf = append(buf, typ)
		var b4 [4]byte
		binary.BigEndian.PutUint32(b4[:], f2)
		buf = append(buf, b4[:]...)
		var b2 [2]byte
		binary.BigEndian.PutUint16(b2[:], f3)
		buf = append(buf, b2[:]...)
	}
	writeEntry(0, 0, 65535)
	for num := uint32(1); num < xrefObjNum; num++ {
		loc, ok := c.objectLocations[num]
		if !ok {
			writeEntry(0, 0, 65535)
			continue
		}
		writeEntry(1, uint32(loc.offset), loc.generation)
	}
	writeEntry(1, uint32(c.pos), 0)

	dict := buildTrailerDict(size, root, extra)
	dict.Set("Type", value.NewName("XRef"))
	dict.Set("W", value.NewArray(value.NewInt(1), value.NewInt(4), value.NewInt(2)))
	dict.Set("Index", value.NewArray(value.NewInt(0), value.NewInt(int64(size))))
	dict.Set("Length", value.NewInt(int64(len(buf))))

	ref := &value.Reference{ObjectNumber: xrefObjNum, GenerationNumber: 0, IsInUse: true}
	c.objectLocations[ref.ObjectNumber] = objectLocation{offset: c.pos, generation: ref.GenerationNumber}
	if err := c.writeString(fmt.Sprintf("%d %d obj\n", ref.ObjectNumber, ref.GenerationNumber)); err != nil {
		return err
	}
	dictVal := value.Value{Kind: value.KindDictionary, Dict: dict}
	n, err := dictVal.WriteTo(c.dest)
	c.pos += n
	if err != nil {
		return err
	}
	if err := c.writeString("\nstream\n"); err != nil {
		return err
	}
	if err := c.writeBytes(buf); err != nil {
		return err
	}
	return c.writeString("\nendstream\nendobj\n")
}
