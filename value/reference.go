/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

// Reference is the handle PDF uses to mediate indirection (spec.md §3). A
// Reference is either located at a byte offset in the file (an uncompressed
// object) or inside a parent /ObjStm (a compressed object); never both.
type Reference struct {
	ObjectNumber     uint32
	GenerationNumber uint16

	// IsInUse is false for free-list entries; such references never resolve
	// to a value.
	IsInUse bool

	// ByteOffset locates an uncompressed object's "N G obj" token.
	ByteOffset *uint64

	// ParentStreamObjectNumber/IndexInParentStream locate a compressed
	// object inside an /ObjStm.
	ParentStreamObjectNumber *uint32
	IndexInParentStream      *uint32
}

// IsCompressed reports whether r locates a compressed (type 2) entry.
func (r *Reference) IsCompressed() bool {
	return r.ParentStreamObjectNumber != nil
}

// FreeListHead is the object-number-0 sentinel that must appear exactly
// once per document (spec.md §3 invariants).
func FreeListHead() Reference {
	return Reference{ObjectNumber: 0, GenerationNumber: 65535, IsInUse: false}
}

// Key returns the (object_number, generation_number) pair used to key the
// resolver's cache and the xref's uniqueness invariant.
type Key struct {
	ObjectNumber     uint32
	GenerationNumber uint16
}

// Key returns r's cache/uniqueness key.
func (r *Reference) Key() Key {
	return Key{ObjectNumber: r.ObjectNumber, GenerationNumber: r.GenerationNumber}
}
