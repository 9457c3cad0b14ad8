/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package document wires the cross-reference engine, object resolver, and
// writer together into the top-level API described in spec.md §6: opening
// an existing PDF for random-access reading, and writing an in-memory
// value graph back out as a new PDF.
package document

import (
	"io"
	"regexp"
	"strconv"

	"github.com/pdfgraph/pdfgraph"
	"github.com/pdfgraph/pdfgraph/value"
	"github.com/pdfgraph/pdfgraph/writer"
	"github.com/pdfgraph/pdfgraph/xref"
)

// rePdfVersion matches the "%PDF-M.m" header, grounded on unidoc-unipdf's
// core/parser.go rePdfVersion.
var rePdfVersion = regexp.MustCompile(`%PDF-(\d)\.(\d)`)

// Document is an opened PDF: its merged trailer, resolved /Root, and the
// resolver other code uses to walk the object graph lazily.
type Document struct {
	data     []byte
	Trailer  *value.Dictionary
	Root     value.Value
	Resolver *xref.Resolver
	Table    *xref.Table

	MajorVersion int
	MinorVersion int
}

// Open parses data's header, locates and loads its cross-reference chain,
// and resolves /Root, per spec.md §6.
func Open(data []byte, reg *value.FilterRegistry, opts xref.Options) (*Document, error) {
	major, minor, err := parseVersion(data)
	if err != nil {
		return nil, err
	}

	table, err := xref.Load(data, reg, opts)
	if err != nil {
		return nil, err
	}
	if table.Trailer == nil {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "no trailer dictionary found")
	}

	resolver := xref.NewResolver(data, table, reg)
	rootVal, ok := table.Trailer.Get("Root")
	if !ok {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "trailer lacks /Root")
	}
	root, err := resolver.ResolveIndirect(rootVal)
	if err != nil {
		return nil, pdfgraph.WrapError(pdfgraph.UnresolvedReference, err, "resolving /Root")
	}

	return &Document{
		data:         data,
		Trailer:      table.Trailer,
		Root:         root,
		Resolver:     resolver,
		Table:        table,
		MajorVersion: major,
		MinorVersion: minor,
	}, nil
}

func parseVersion(data []byte) (int, int, error) {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	m := rePdfVersion.FindSubmatch(head)
	if m == nil {
		return 0, 0, pdfgraph.NewError(pdfgraph.XrefMalformed, "no %%PDF-M.m header found")
	}
	major, _ := strconv.Atoi(string(m[1]))
	minor, _ := strconv.Atoi(string(m[2]))
	return major, minor, nil
}

// Write serializes doc's current Root (and everything it reaches) as a new,
// from-scratch PDF, per spec.md §4.6's write transformer pipeline: any
// composite that still carries its original Reference keeps that object
// number (spec.md §4.6's identity-assignment rule), so freshly introduced
// composites must be allocated numbers above every number already in use,
// not starting back at 1.
//
// The writer package has no Resolver of its own, so Write must first
// materialize every KindIndirect value reachable from Root (and from any
// extra trailer entry) into the composite it resolves to; otherwise a
// lazily-read document's Pages, Contents, Info, and every other object only
// ever reachable through an unresolved reference would be emitted as a
// dangling "N G R" whose body is never written.
func (d *Document) Write(w io.Writer) error {
	root, err := materializeGraph(d.Resolver, d.Root)
	if err != nil {
		return pdfgraph.WrapError(pdfgraph.UnresolvedReference, err, "materializing document graph for write")
	}

	extra := value.NewEmptyDictionary()
	if info, ok := d.Trailer.Get("Info"); ok {
		materializedInfo, err := materializeGraph(d.Resolver, info)
		if err != nil {
			return pdfgraph.WrapError(pdfgraph.UnresolvedReference, err, "materializing /Info")
		}
		extra.Set("Info", materializedInfo)
	}

	return writer.Write(w, writer.Options{
		Root:              root,
		MajorVersion:      d.MajorVersion,
		MinorVersion:      d.MinorVersion,
		FirstObjectNumber: d.nextFreeObjectNumber(),
		ExtraTrailer:      extra,
	})
}

// nextFreeObjectNumber returns one past the highest object number known to
// the document's xref table, the safe starting point for numbering any
// composite the writer needs to allocate a fresh identity for.
func (d *Document) nextFreeObjectNumber() uint32 {
	var max uint32
	for num := range d.Table.Entries {
		if num > max {
			max = num
		}
	}
	return max + 1
}
