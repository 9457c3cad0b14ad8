/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xref

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdfgraph/pdfgraph/value"
)

func beBytes(v uint64, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

func xrefStreamEntry(typ, f2, f3 uint64) []byte {
	out := beBytes(typ, 1)
	out = append(out, beBytes(f2, 4)...)
	out = append(out, beBytes(f3, 2)...)
	return out
}

func TestParseStreamXrefBasic(t *testing.T) {
	var raw []byte
	raw = append(raw, xrefStreamEntry(0, 0, 65535)...) // object 0: free list head
	raw = append(raw, xrefStreamEntry(1, 17, 0)...)    // object 1: in-use at offset 17
	raw = append(raw, xrefStreamEntry(2, 5, 0)...)     // object 2: compressed, parent 5 index 0
	raw = append(raw, xrefStreamEntry(0, 0, 0)...)     // object 3: free

	src := "1 0 obj\n<< /Type /XRef /W [1 4 2] /Size 4 /Index [0 4] /Root 9 0 R >>\nstream\n" +
		string(raw) + "\nendstream\nendobj"

	table, err := ParseStreamXref([]byte(src), 0, value.DefaultFilterRegistry())
	require.NoError(t, err)

	_, ok := table.Get(0)
	require.False(t, ok, "the free-list head is parsed but never stored")

	e1, ok := table.Get(1)
	require.True(t, ok)
	require.True(t, e1.IsInUse)
	require.EqualValues(t, 17, *e1.ByteOffset)
	require.EqualValues(t, 0, e1.GenerationNumber)

	e2, ok := table.Get(2)
	require.True(t, ok)
	require.True(t, e2.IsInUse)
	require.True(t, e2.IsCompressed())
	require.EqualValues(t, 5, *e2.ParentStreamObjectNumber)
	require.EqualValues(t, 0, *e2.IndexInParentStream)

	e3, ok := table.Get(3)
	require.True(t, ok)
	require.False(t, e3.IsInUse)

	require.NotNil(t, table.Trailer)
}

func TestParseStreamXrefDefaultIndexCoversWholeSize(t *testing.T) {
	var raw []byte
	raw = append(raw, xrefStreamEntry(0, 0, 65535)...)
	raw = append(raw, xrefStreamEntry(1, 100, 0)...)

	src := "1 0 obj\n<< /Type /XRef /W [1 4 2] /Size 2 >>\nstream\n" +
		string(raw) + "\nendstream\nendobj"

	table, err := ParseStreamXref([]byte(src), 0, value.DefaultFilterRegistry())
	require.NoError(t, err)
	e1, ok := table.Get(1)
	require.True(t, ok)
	require.EqualValues(t, 100, *e1.ByteOffset)
}

func TestParseStreamXrefRejectsWrongWidthCount(t *testing.T) {
	src := "1 0 obj\n<< /Type /XRef /W [1 4] /Size 1 >>\nstream\n\nendstream\nendobj"
	_, err := ParseStreamXref([]byte(src), 0, value.DefaultFilterRegistry())
	require.Error(t, err)
}

func TestParseStreamXrefRejectsWrongType(t *testing.T) {
	src := "1 0 obj\n<< /Type /Catalog /W [1 4 2] /Size 1 >>\nstream\n\nendstream\nendobj"
	_, err := ParseStreamXref([]byte(src), 0, value.DefaultFilterRegistry())
	require.Error(t, err)
}

func TestParseStreamXrefRejectsTruncatedEntries(t *testing.T) {
	var raw []byte
	raw = append(raw, xrefStreamEntry(0, 0, 65535)...)
	// /Size claims 2 entries but only one is present.
	src := "1 0 obj\n<< /Type /XRef /W [1 4 2] /Size 2 >>\nstream\n" +
		string(raw) + "\nendstream\nendobj"
	_, err := ParseStreamXref([]byte(src), 0, value.DefaultFilterRegistry())
	require.Error(t, err)
}
