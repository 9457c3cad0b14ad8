/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

// Dictionary is an insertion-ordered mapping from Name to Value (spec.md
// §3, §9: "dictionaries MUST preserve insertion order for deterministic
// output"). Grounded on the teacher's PdfObjectDictionary, which pairs a
// plain map with a parallel keys slice to recover order; that shape is kept
// here.
type Dictionary struct {
	entries map[Name]Value
	keys    []Name
}

// NewEmptyDictionary returns an empty, ready-to-use Dictionary.
func NewEmptyDictionary() *Dictionary {
	return &Dictionary{entries: map[Name]Value{}}
}

// Get returns the value for key and whether it was present.
func (d *Dictionary) Get(key Name) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	v, ok := d.entries[key]
	return v, ok
}

// GetOr returns the value for key, or fallback if absent.
func (d *Dictionary) GetOr(key Name, fallback Value) Value {
	if v, ok := d.Get(key); ok {
		return v
	}
	return fallback
}

// Set inserts or updates key. New keys are appended to the end of the
// iteration order; existing keys keep their original position.
func (d *Dictionary) Set(key Name, v Value) {
	if _, exists := d.entries[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = v
}

// Delete removes key, if present, preserving the order of remaining keys.
func (d *Dictionary) Delete(key Name) {
	if _, ok := d.entries[key]; !ok {
		return
	}
	delete(d.entries, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the dictionary's keys in insertion order. The returned slice
// must not be mutated by the caller.
func (d *Dictionary) Keys() []Name {
	if d == nil {
		return nil
	}
	return d.keys
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Equal reports structural equality: same keys in the same order, with
// pairwise-equal values.
func (d *Dictionary) Equal(o *Dictionary) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.keys) != len(o.keys) {
		return false
	}
	for i, k := range d.keys {
		if o.keys[i] != k {
			return false
		}
		ov, ok := o.entries[k]
		if !ok || !d.entries[k].Equal(ov) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of d: a new Dictionary with the same keys in
// the same order, but values are not deep-copied.
func (d *Dictionary) Clone() *Dictionary {
	if d == nil {
		return nil
	}
	out := NewEmptyDictionary()
	for _, k := range d.keys {
		out.Set(k, d.entries[k])
	}
	return out
}
