/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionaryPreservesInsertionOrder(t *testing.T) {
	d := NewEmptyDictionary()
	d.Set("C", NewInt(3))
	d.Set("A", NewInt(1))
	d.Set("B", NewInt(2))
	require.Equal(t, []Name{"C", "A", "B"}, d.Keys())

	// Re-setting an existing key updates the value in place, not the order.
	d.Set("A", NewInt(100))
	require.Equal(t, []Name{"C", "A", "B"}, d.Keys())
	v, ok := d.Get("A")
	require.True(t, ok)
	require.True(t, v.Equal(NewInt(100)))
}

func TestDictionaryGetMissing(t *testing.T) {
	d := NewEmptyDictionary()
	_, ok := d.Get("Missing")
	require.False(t, ok)
	require.True(t, d.GetOr("Missing", NewInt(9)).Equal(NewInt(9)))
}

func TestDictionaryDeletePreservesRemainingOrder(t *testing.T) {
	d := NewEmptyDictionary()
	d.Set("A", NewInt(1))
	d.Set("B", NewInt(2))
	d.Set("C", NewInt(3))
	d.Delete("B")
	require.Equal(t, []Name{"A", "C"}, d.Keys())
	require.Equal(t, 2, d.Len())

	// Deleting an absent key is a no-op.
	d.Delete("Zzz")
	require.Equal(t, 2, d.Len())
}

func TestDictionaryEqual(t *testing.T) {
	a := NewEmptyDictionary()
	a.Set("A", NewInt(1))
	a.Set("B", NewInt(2))

	b := NewEmptyDictionary()
	b.Set("A", NewInt(1))
	b.Set("B", NewInt(2))
	require.True(t, a.Equal(b))

	// Same entries, different insertion order: not equal, since order is
	// part of the dictionary's observable state.
	c := NewEmptyDictionary()
	c.Set("B", NewInt(2))
	c.Set("A", NewInt(1))
	require.False(t, a.Equal(c))
}

func TestDictionaryCloneIsIndependentOfOriginal(t *testing.T) {
	d := NewEmptyDictionary()
	d.Set("A", NewInt(1))
	clone := d.Clone()
	clone.Set("B", NewInt(2))

	require.Equal(t, 1, d.Len())
	require.Equal(t, 2, clone.Len())

	clone.Delete("B")
	require.True(t, d.Equal(clone))
}

func TestDictionaryNilReceiverIsSafe(t *testing.T) {
	var d *Dictionary
	_, ok := d.Get("X")
	require.False(t, ok)
	require.Equal(t, 0, d.Len())
	require.Nil(t, d.Keys())
}
