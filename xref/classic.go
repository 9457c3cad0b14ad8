/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xref

import (
	"regexp"
	"strconv"

	"github.com/pdfgraph/pdfgraph"
	"github.com/pdfgraph/pdfgraph/value"
)

// reSubsectionHeader matches a classic xref subsection header line:
// "first_object_number count".
var reSubsectionHeader = regexp.MustCompile(`^(\d+)\s+(\d+)\s*$`)

// ParseTable parses the classic tabular xref form starting at offset (the
// "xref" keyword itself), per spec.md §4.4. Rows are read byte-exactly (20
// bytes: 10-digit offset, space, 5-digit generation, space, 'n'/'f', 2-byte
// EOL), accepting the three legal EOL spellings named in spec.md §8's
// boundary behaviors: "\r\n", "\r ", " \n".
func ParseTable(data []byte, offset int64) (*Table, error) {
	pos := offset
	pos, ok := skipKeyword(data, pos, "xref")
	if !ok {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "expected 'xref' keyword at offset %d", offset)
	}
	pos = skipEOL(data, pos)

	table := NewTable()
	for {
		lineStart := pos
		line, next, ok := readLine(data, pos)
		if !ok {
			return nil, pdfgraph.NewError(pdfgraph.UnexpectedEof, "xref table truncated at offset %d", pos)
		}
		m := reSubsectionHeader.FindStringSubmatch(string(line))
		if m == nil {
			// Not a subsection header: either the 'trailer' keyword, or a
			// malformed file. Rewind to lineStart and let the trailer check
			// below handle it.
			pos = lineStart
			break
		}
		first, _ := strconv.ParseUint(m[1], 10, 32)
		count, _ := strconv.Atoi(m[2])
		pos = next

		for i := 0; i < count; i++ {
			row, rowEnd, err := readXrefRow(data, pos)
			if err != nil {
				return nil, err
			}
			objNum := uint32(first) + uint32(i)
			entry, err := parseXrefRow(row, objNum)
			if err != nil {
				return nil, err
			}
			if objNum != 0 {
				if existing, ok := table.Entries[objNum]; !ok || entry.GenerationNumber >= existing.GenerationNumber {
					table.Entries[objNum] = entry
				}
			}
			pos = rowEnd
		}
	}

	pos, ok = skipKeyword(data, pos, "trailer")
	if !ok {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "expected 'trailer' keyword at offset %d", pos)
	}
	lex := value.NewLexer(data)
	if err := lex.Seek(pos); err != nil {
		return nil, err
	}
	trailerVal, err := lex.ReadObject()
	if err != nil {
		return nil, pdfgraph.WrapError(pdfgraph.XrefMalformed, err, "parsing trailer dictionary")
	}
	if trailerVal.Kind != value.KindDictionary {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "trailer is not a dictionary")
	}
	table.Trailer = trailerVal.Dict
	return table, nil
}

// parseXrefRow converts one 20-byte classic xref row into a Reference.
func parseXrefRow(row []byte, objNum uint32) (*value.Reference, error) {
	if len(row) < 18 {
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "xref row too short: %q", row)
	}
	field1 := string(row[0:10])
	field2 := string(row[11:16])
	typeField := row[17]

	n1, err := strconv.ParseUint(trimDigits(field1), 10, 64)
	if err != nil {
		return nil, pdfgraph.WrapError(pdfgraph.XrefMalformed, err, "xref row offset field %q", field1)
	}
	n2, err := strconv.ParseUint(trimDigits(field2), 10, 64)
	if err != nil {
		return nil, pdfgraph.WrapError(pdfgraph.XrefMalformed, err, "xref row generation field %q", field2)
	}

	ref := &value.Reference{ObjectNumber: objNum, GenerationNumber: uint16(n2)}
	switch typeField {
	case 'n':
		ref.IsInUse = true
		off := n1
		ref.ByteOffset = &off
	case 'f':
		ref.IsInUse = false
	default:
		return nil, pdfgraph.NewError(pdfgraph.XrefMalformed, "xref row type byte %q not 'n' or 'f'", typeField)
	}
	return ref, nil
}

func trimDigits(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	if i == len(s) {
		return "0"
	}
	return s[i:]
}

// readXrefRow returns exactly the 18 content bytes of a 20-byte xref row
// (the 2-byte EOL is consumed but not returned), accepting "\r\n", " \n",
// and "\r " as legal terminators.
func readXrefRow(data []byte, pos int64) ([]byte, int64, error) {
	if pos+20 > int64(len(data)) {
		return nil, 0, pdfgraph.NewError(pdfgraph.UnexpectedEof, "xref row truncated at offset %d", pos)
	}
	row := data[pos : pos+20]
	eol := row[18:20]
	switch {
	case eol[0] == '\r' && eol[1] == '\n':
	case eol[0] == ' ' && eol[1] == '\n':
	case eol[0] == '\r' && eol[1] == ' ':
	default:
		return nil, 0, pdfgraph.NewError(pdfgraph.XrefMalformed, "xref row at offset %d has invalid terminator %q", pos, eol)
	}
	return row[:18], pos + 20, nil
}

func skipKeyword(data []byte, pos int64, kw string) (int64, bool) {
	pos = skipWS(data, pos)
	end := pos + int64(len(kw))
	if end > int64(len(data)) || string(data[pos:end]) != kw {
		return pos, false
	}
	return end, true
}

func skipWS(data []byte, pos int64) int64 {
	for pos < int64(len(data)) && value.IsWhiteSpace(data[pos]) {
		pos++
	}
	return pos
}

func skipEOL(data []byte, pos int64) int64 {
	if pos < int64(len(data)) && data[pos] == '\r' {
		pos++
	}
	if pos < int64(len(data)) && data[pos] == '\n' {
		pos++
	}
	return pos
}

// readLine returns the bytes up to (not including) the next line terminator
// starting at pos, and the offset just past that terminator.
func readLine(data []byte, pos int64) ([]byte, int64, bool) {
	pos = skipWS(data, pos)
	start := pos
	for pos < int64(len(data)) && data[pos] != '\n' && data[pos] != '\r' {
		pos++
	}
	if pos >= int64(len(data)) {
		return data[start:pos], pos, start < pos
	}
	line := data[start:pos]
	pos = skipEOL(data, pos)
	return line, pos, true
}
