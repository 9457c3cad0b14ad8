/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xref

import (
	"github.com/pdfgraph/pdfgraph"
	"github.com/pdfgraph/pdfgraph/value"
)

// ParseStreamXref parses the stream-encoded xref form introduced in PDF 1.5
// (spec.md §4.4 "Stream form"): the indirect object at offset is a Stream
// with /Type /XRef; its decoded bytes are a sequence of fixed-width,
// big-endian entries.
func ParseStreamXref(data []byte, offset int64, reg *value.FilterRegistry) (*Table, error) {
	lex := value.NewLexer(data)
	if err := lex.Seek(offset); err != nil {
		return nil, err
	}
	obj, err := lex.ReadIndirectObject()
	if err != nil {
		return nil, pdfgraph.WrapError(pdfgraph.XrefMalformed, err, "parsing xref-stream indirect object at offset %d", offset)
	}
	if obj.Kind != value.KindStream {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "xref-stream object at offset %d is not a Stream", offset)
	}
	dict := obj.Stream.Dict

	typeVal, _ := dict.Get("Type")
	if typeVal.Kind != value.KindName || typeVal.Name != "XRef" {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "xref-stream dictionary lacks /Type /XRef")
	}

	widths, err := readWidths(dict)
	if err != nil {
		return nil, err
	}
	size, err := readRequiredInt(dict, "Size")
	if err != nil {
		return nil, err
	}
	index, err := readIndex(dict, int(size))
	if err != nil {
		return nil, err
	}

	if err := obj.Stream.Decode(reg); err != nil {
		return nil, err
	}
	decoded := obj.Stream.Decoded

	entryWidth := widths[0] + widths[1] + widths[2]
	table := NewTable()
	offsetInStream := 0
	for _, sub := range index {
		for i := 0; i < sub.count; i++ {
			objNum := uint32(sub.first + i)
			if (offsetInStream+1)*entryWidth > len(decoded) {
				return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "xref stream truncated: expected %d entries", sizeOf(index))
			}
			entry := decoded[offsetInStream*entryWidth : (offsetInStream+1)*entryWidth]
			offsetInStream++

			typ := uint64(1)
			if widths[0] > 0 {
				typ = beUint(entry[:widths[0]])
			}
			f2 := beUint(entry[widths[0] : widths[0]+widths[1]])
			f3 := beUint(entry[widths[0]+widths[1] : entryWidth])

			switch typ {
			case 0:
				if objNum != 0 {
					table.Entries[objNum] = &value.Reference{ObjectNumber: objNum, IsInUse: false}
				}
			case 1:
				off := f2
				table.Entries[objNum] = &value.Reference{
					ObjectNumber:     objNum,
					GenerationNumber: uint16(f3),
					IsInUse:          true,
					ByteOffset:       &off,
				}
			case 2:
				parent := uint32(f2)
				idx := uint32(f3)
				table.Entries[objNum] = &value.Reference{
					ObjectNumber:             objNum,
					IsInUse:                  true,
					ParentStreamObjectNumber: &parent,
					IndexInParentStream:      &idx,
				}
			default:
				// "Any type outside {0,1,2} is ignored per spec."
			}
		}
	}

	table.Trailer = dict
	return table, nil
}

type indexSubsection struct {
	first, count int
}

func sizeOf(index []indexSubsection) int {
	n := 0
	for _, s := range index {
		n += s.count
	}
	return n
}

func readWidths(dict *value.Dictionary) ([3]int, error) {
	var w [3]int
	wVal, ok := dict.Get("W")
	if !ok || wVal.Kind != value.KindArray || len(wVal.Array.Elems) != 3 {
		return w, pdfgraph.NewError(pdfgraph.XrefMalformed, "/W must be a 3-element array")
	}
	for i, el := range wVal.Array.Elems {
		if el.Kind != value.KindNumber {
			return w, pdfgraph.NewError(pdfgraph.TypeMismatch, "/W element %d is not numeric", i)
		}
		w[i] = int(el.Number.Int64())
	}
	return w, nil
}

func readRequiredInt(dict *value.Dictionary, key value.Name) (int64, error) {
	v, ok := dict.Get(key)
	if !ok || v.Kind != value.KindNumber {
		return 0, pdfgraph.NewError(pdfgraph.XrefMalformed, "/%s missing or not numeric", key)
	}
	return v.Number.Int64(), nil
}

func readIndex(dict *value.Dictionary, size int) ([]indexSubsection, error) {
	indexVal, ok := dict.Get("Index")
	if !ok {
		return []indexSubsection{{first: 0, count: size}}, nil
	}
	if indexVal.Kind != value.KindArray || len(indexVal.Array.Elems)%2 != 0 {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "/Index must be an array of even length")
	}
	var out []indexSubsection
	for i := 0; i < len(indexVal.Array.Elems); i += 2 {
		first := indexVal.Array.Elems[i]
		count := indexVal.Array.Elems[i+1]
		if first.Kind != value.KindNumber || count.Kind != value.KindNumber {
			return nil, pdfgraph.NewError(pdfgraph.TypeMismatch, "/Index elements must be numeric")
		}
		out = append(out, indexSubsection{first: int(first.Number.Int64()), count: int(count.Number.Int64())})
	}
	return out, nil
}

func beUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
