/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xref

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdfgraph/pdfgraph/value"
)

func twoSectionIncrementalUpdate() string {
	sec1 := "xref\n0 3\n" +
		xrefRow(0, 65535, false, "\r\n") +
		xrefRow(100, 0, true, "\r\n") +
		xrefRow(200, 0, true, "\r\n") +
		"trailer\n<< /Size 3 /Root 1 0 R >>"

	x2 := len(sec1)
	sec2 := "xref\n1 1\n" +
		xrefRow(999, 0, true, "\r\n") +
		"trailer\n<< /Size 3 /Root 1 0 R /Prev 0 >>"

	tail := fmt.Sprintf("startxref\n%d\n%%%%EOF", x2)
	return sec1 + sec2 + tail
}

func TestLoadFollowsPrevChainFirstOccurrenceWins(t *testing.T) {
	data := []byte(twoSectionIncrementalUpdate())
	table, err := Load(data, value.DefaultFilterRegistry(), Options{})
	require.NoError(t, err)

	// Object 1 was updated by the newer section: its offset must be the new
	// one, not the original section's.
	e1, ok := table.Get(1)
	require.True(t, ok)
	require.EqualValues(t, 999, *e1.ByteOffset)

	// Object 2 only exists in the older section; it must still be reachable.
	e2, ok := table.Get(2)
	require.True(t, ok)
	require.EqualValues(t, 200, *e2.ByteOffset)

	require.NotNil(t, table.Trailer)
}

func TestLoadRespectsMaxPrevChainLength(t *testing.T) {
	data := []byte(twoSectionIncrementalUpdate())
	_, err := Load(data, value.DefaultFilterRegistry(), Options{MaxPrevChainLength: 1})
	require.Error(t, err)
}

func TestLoadDetectsXrefLoop(t *testing.T) {
	src := "xref\n0 1\n" + xrefRow(0, 65535, false, "\r\n") +
		"trailer\n<< /Size 1 /Prev 0 >>" +
		"startxref\n0\n%%EOF"
	_, err := Load([]byte(src), value.DefaultFilterRegistry(), Options{})
	require.Error(t, err)
}

func TestLoadMergesHybridXRefStm(t *testing.T) {
	var raw []byte
	raw = append(raw, xrefStreamEntry(0, 0, 65535)...) // object 0
	raw = append(raw, xrefStreamEntry(1, 777, 0)...)   // object 1, reachable only via the stream

	// The /XRefStm object sits at offset 0; the classic section (which
	// startxref actually points at) follows it and names it in its trailer.
	xrefStmObj := "2 0 obj\n<< /Type /XRef /W [1 4 2] /Size 2 /Index [0 2] >>\nstream\n" +
		string(raw) + "\nendstream\nendobj"

	classicOffset := len(xrefStmObj)
	classic := "xref\n0 1\n" + xrefRow(0, 65535, false, "\r\n") +
		"trailer\n<< /Size 2 /XRefStm 0 >>"

	tail := fmt.Sprintf("startxref\n%d\n%%%%EOF", classicOffset)
	data := xrefStmObj + classic + tail

	table, err := Load([]byte(data), value.DefaultFilterRegistry(), Options{})
	require.NoError(t, err)

	e1, ok := table.Get(1)
	require.True(t, ok, "object 1 should be merged in from the /XRefStm hybrid section")
	require.True(t, e1.IsInUse)
	require.EqualValues(t, 777, *e1.ByteOffset)
}
