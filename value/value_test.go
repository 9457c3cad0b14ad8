/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueEqualScalars(t *testing.T) {
	require.True(t, Null.Equal(Null))
	require.True(t, NewBoolean(true).Equal(NewBoolean(true)))
	require.False(t, NewBoolean(true).Equal(NewBoolean(false)))
	require.True(t, NewInt(5).Equal(NewInt(5)))
	require.True(t, NewName("Foo").Equal(NewName("Foo")))
	require.False(t, NewName("Foo").Equal(NewName("Bar")))
}

func TestValueEqualArraySharesElemsByContent(t *testing.T) {
	a := NewArray(NewInt(1), NewInt(2))
	b := NewArray(NewInt(1), NewInt(2))
	require.True(t, a.Equal(b))

	c := NewArray(NewInt(1), NewInt(3))
	require.False(t, a.Equal(c))
}

func TestValueEqualCompositesWithSameRefAreSameNode(t *testing.T) {
	ref := &Reference{ObjectNumber: 7}
	a := Value{Kind: KindDictionary, Dict: NewEmptyDictionary(), Ref: ref}
	bDict := NewEmptyDictionary()
	bDict.Set("X", NewInt(1))
	b := Value{Kind: KindDictionary, Dict: bDict, Ref: ref}
	require.True(t, a.Equal(b), "two values sharing a Ref back-edge are the same node regardless of structural content")
}

func TestArrayIsPointerBacked(t *testing.T) {
	arr := &Array{Elems: []Value{NewInt(1)}}
	v1 := Value{Kind: KindArray, Array: arr}
	v2 := Value{Kind: KindArray, Array: arr}
	require.Same(t, v1.Array, v2.Array, "two Values wrapping the same Array pointer must share identity")
}

func TestNameTextEscaping(t *testing.T) {
	tests := []struct {
		in   Name
		want string
	}{
		{"Name1", "/Name1"},
		{"A;Name_With-Various***Characters?", "/A;Name_With-Various***Characters?"},
		{"Lime Green", "/Lime#20Green"},
		{"paired()parentheses", "/paired#28#29parentheses"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.in.Text())
	}
}

func TestStringTextLiteralAndHex(t *testing.T) {
	lit := NewLiteralString([]byte("hello (world)"))
	require.Equal(t, `(hello \(world\))`, lit.String.Text())

	bin := NewHexString([]byte{0xDE, 0xAD})
	require.Equal(t, "<DEAD>", bin.String.Text())

	// Unbalanced parens force hex form even when the caller asked for literal.
	unbalanced := NewLiteralString([]byte("("))
	require.Equal(t, "<28>", unbalanced.String.Text())
}

func TestValueWriteToArray(t *testing.T) {
	v := NewArray(NewInt(1), NewName("Foo"), NewBoolean(true))
	var buf bytes.Buffer
	_, err := v.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, "[1 /Foo true]", buf.String())
}
