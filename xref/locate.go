/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xref

import (
	"bytes"
	"regexp"
	"strconv"

	"github.com/pdfgraph/pdfgraph"
)

// reStartXref finds the decimal offset following the last "startxref"
// keyword in the file.
var reStartXref = regexp.MustCompile(`startxref\s+(\d+)`)

// reScanXrefKeyword and reScanXrefStream find a candidate "xref" keyword or
// an indirect object whose dictionary declares /Type /XRef, for the
// linear-scan fallback.
var reScanXrefKeyword = regexp.MustCompile(`(?:^|[\r\n])\s*xref\s*[\r\n]`)
var reScanXrefStream = regexp.MustCompile(`(\d+)\s+(\d+)\s+obj[^e]*?/Type\s*/XRef\b`)

// Locate finds the byte offset of the file's primary (most recent) xref
// section, per spec.md §4.4: scan backward from the tail for "startxref",
// and if that offset doesn't land on a valid xref, fall back to a forward
// linear scan for the "xref" keyword or an /XRef stream object.
func Locate(data []byte) (int64, error) {
	if off, ok := locateViaStartxref(data); ok {
		return off, nil
	}
	if off, ok := locateViaScan(data); ok {
		return off, nil
	}
	return 0, pdfgraph.NewError(pdfgraph.XrefMissing, "no startxref offset and no scannable xref/XRef-stream fallback")
}

func locateViaStartxref(data []byte) (int64, bool) {
	matches := reStartXref.FindAllSubmatch(data, -1)
	if len(matches) == 0 {
		return 0, false
	}
	last := matches[len(matches)-1]
	n, err := strconv.ParseInt(string(last[1]), 10, 64)
	if err != nil || n < 0 || n > int64(len(data)) {
		return 0, false
	}
	if !looksLikeXrefStart(data, n) {
		return 0, false
	}
	return n, true
}

// looksLikeXrefStart reports whether offset plausibly begins an xref
// section: either the literal "xref" keyword, or "N G obj" (the start of an
// xref-stream's indirect object). It does not fully validate the section;
// that is ParseTable/ParseStreamXref's job.
func looksLikeXrefStart(data []byte, offset int64) bool {
	if offset >= int64(len(data)) {
		return false
	}
	tail := data[offset:]
	if bytes.HasPrefix(bytes.TrimLeft(tail, " \t\r\n"), []byte("xref")) {
		return true
	}
	// "N G obj" lookahead: only checks that "obj" occurs within the first
	// 64 bytes; the object and generation numbers are not checked.
	window := tail
	if len(window) > 64 {
		window = window[:64]
	}
	return bytes.Contains(window, []byte("obj"))
}

func locateViaScan(data []byte) (int64, bool) {
	if loc := reScanXrefKeyword.FindIndex(data); loc != nil {
		// Point at the "xref" keyword itself, not the preceding newline.
		idx := bytes.Index(data[loc[0]:loc[1]], []byte("xref"))
		return int64(loc[0] + idx), true
	}
	if loc := reScanXrefStream.FindSubmatchIndex(data); loc != nil {
		return int64(loc[0]), true
	}
	return 0, false
}
