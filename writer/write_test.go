/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdfgraph/pdfgraph/value"
)

func TestWriteMinimalDocument(t *testing.T) {
	root := value.NewEmptyDictionary()
	root.Set("Type", value.NewName("Catalog"))
	rootVal := value.Value{Kind: value.KindDictionary, Dict: root}

	var buf bytes.Buffer
	err := Write(&buf, Options{Root: rootVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "%PDF-1.7\n"))
	require.Contains(t, out, "1 0 obj")
	require.Contains(t, out, "/Type /Catalog")
	require.Contains(t, out, "xref\n")
	require.Contains(t, out, "trailer\n")
	require.Contains(t, out, "/Root 1 0 R")
	require.True(t, strings.HasSuffix(out, "%%EOF\n"))
}

func TestWriteSharedSubDictionaryEmittedOnce(t *testing.T) {
	shared := value.NewEmptyDictionary()
	shared.Set("Marker", value.NewName("UniqueXYZ"))
	sharedVal := value.Value{Kind: value.KindDictionary, Dict: shared}

	root := value.NewEmptyDictionary()
	root.Set("A", sharedVal)
	root.Set("B", sharedVal) // same *Dictionary pointer as A
	rootVal := value.Value{Kind: value.KindDictionary, Dict: root}

	var buf bytes.Buffer
	err := Write(&buf, Options{Root: rootVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1})
	require.NoError(t, err)

	out := buf.String()
	// The shared node's body (and its distinctive marker) must appear
	// exactly once, with both A and B pointing at it by reference. Two
	// objects total are written: the root itself, and the shared node.
	require.Equal(t, 1, strings.Count(out, "/UniqueXYZ"))
	require.Equal(t, 2, strings.Count(out, "endobj"))
	require.Equal(t, 2, strings.Count(out, "2 0 R"), "both A and B must reference the shared object by the same number")
}

func TestWriteCycleTerminates(t *testing.T) {
	root := value.NewEmptyDictionary()
	rootVal := value.Value{Kind: value.KindDictionary, Dict: root}
	root.Set("Self", rootVal) // wraps the same *Dictionary: a direct cycle

	var buf bytes.Buffer
	err := Write(&buf, Options{Root: rootVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1})
	require.NoError(t, err)

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "endobj"), "a self-referential node must still be written exactly once")
	require.Contains(t, out, "/Self 1 0 R")
}

func TestWriteMutualCycleTerminates(t *testing.T) {
	a := value.NewEmptyDictionary()
	b := value.NewEmptyDictionary()
	aVal := value.Value{Kind: value.KindDictionary, Dict: a}
	bVal := value.Value{Kind: value.KindDictionary, Dict: b}
	a.Set("Next", bVal)
	b.Set("Next", aVal)

	var buf bytes.Buffer
	err := Write(&buf, Options{Root: aVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1})
	require.NoError(t, err)

	out := buf.String()
	require.Equal(t, 2, strings.Count(out, "endobj"))
}

func TestWriteStreamLengthIsRewritten(t *testing.T) {
	dict := value.NewEmptyDictionary()
	dict.Set("Length", value.NewInt(999)) // deliberately wrong
	raw := []byte("the quick brown fox")
	streamVal := value.Value{Kind: value.KindStream, Stream: value.NewStream(dict, raw)}

	root := value.NewEmptyDictionary()
	root.Set("Contents", streamVal)
	rootVal := value.Value{Kind: value.KindDictionary, Dict: root}

	var buf bytes.Buffer
	err := Write(&buf, Options{Root: rootVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "/Length 19")
	require.NotContains(t, out, "/Length 999")
	require.Contains(t, out, "the quick brown fox")
}

func TestWriteRetainsOriginalObjectNumberForAlreadyIndirectComposite(t *testing.T) {
	child := value.NewEmptyDictionary()
	childRef := &value.Reference{ObjectNumber: 42, GenerationNumber: 0, IsInUse: true}
	childVal := value.Value{Kind: value.KindDictionary, Dict: child, Ref: childRef}

	root := value.NewEmptyDictionary()
	root.Set("Child", childVal)
	rootVal := value.Value{Kind: value.KindDictionary, Dict: root}

	var buf bytes.Buffer
	err := Write(&buf, Options{Root: rootVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "42 0 obj")
	require.Contains(t, out, "/Child 42 0 R")
}

func TestWriteRejectsScalarRoot(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Options{Root: value.NewInt(1), MajorVersion: 1, MinorVersion: 7})
	require.Error(t, err)
}

func TestWriteRetainsNonZeroGenerationInXrefRow(t *testing.T) {
	child := value.NewEmptyDictionary()
	childRef := &value.Reference{ObjectNumber: 5, GenerationNumber: 3, IsInUse: true}
	childVal := value.Value{Kind: value.KindDictionary, Dict: child, Ref: childRef}

	root := value.NewEmptyDictionary()
	root.Set("Child", childVal)
	rootVal := value.Value{Kind: value.KindDictionary, Dict: root}

	var buf bytes.Buffer
	err := Write(&buf, Options{Root: rootVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "5 3 obj")
	require.Contains(t, out, "/Child 5 3 R")
	// The xref row for object 5 must carry its real generation (3), not a
	// hardcoded 0, or the offset it records would never match a reader
	// looking up "5 3 R".
	require.Regexp(t, `\n\d{10} 00003 n\r\n`, out)
}

func TestWriteExtraTrailerCompositeIsQueuedAndReferenced(t *testing.T) {
	root := value.NewEmptyDictionary()
	root.Set("Type", value.NewName("Catalog"))
	rootVal := value.Value{Kind: value.KindDictionary, Dict: root}

	info := value.NewEmptyDictionary()
	info.Set("Title", value.NewLiteralString([]byte("Test Doc")))
	infoVal := value.Value{Kind: value.KindDictionary, Dict: info}

	extra := value.NewEmptyDictionary()
	extra.Set("Info", infoVal)

	var buf bytes.Buffer
	err := Write(&buf, Options{
		Root: rootVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1, ExtraTrailer: extra,
	})
	require.NoError(t, err)

	out := buf.String()
	// Info must be written as its own indirect object, not inlined into the
	// trailer dictionary.
	require.Contains(t, out, "2 0 obj")
	require.Contains(t, out, "/Title (Test Doc)")
	require.Contains(t, out, "/Info 2 0 R")
	require.NotContains(t, out, "/Info <<")
}

func TestWriteXrefStreamForm(t *testing.T) {
	root := value.NewEmptyDictionary()
	root.Set("Type", value.NewName("Catalog"))
	rootVal := value.Value{Kind: value.KindDictionary, Dict: root}

	var buf bytes.Buffer
	err := Write(&buf, Options{Root: rootVal, MajorVersion: 1, MinorVersion: 7, FirstObjectNumber: 1, UseXrefStream: true})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "/Type /XRef")
	require.Contains(t, out, "/W [1 4 2]")
	require.NotContains(t, out, "xref\n0 ")
	require.NotContains(t, out, "trailer\n")
}
