/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package writer

import (
	"fmt"

	"github.com/pdfgraph/pdfgraph"
	"github.com/pdfgraph/pdfgraph/value"
)

// transformChild implements spec.md §4.6's indirection rule for a value
// nested inside a dictionary or array: a Dictionary, Array, or Stream child
// is replaced by a (freshly allocated or previously assigned) Reference and
// queued for top-level emission; everything else is inlined as-is.
func (c *Context) transformChild(v value.Value, queue *[]value.Value) (value.Value, error) {
	switch v.Kind {
	case value.KindDictionary, value.KindArray, value.KindStream:
		ref, err := c.getReference(v)
		if err != nil {
			return value.Value{}, err
		}
		*queue = append(*queue, withRef(v, ref))
		return value.NewIndirect(ref), nil
	default:
		return v, nil
	}
}

// writeObject emits one top-level indirect object and, afterward, every
// composite its body displaced into references — the "depth-first-but-
// siblings-after" order described in spec.md §4.6's emission-order
// algorithm, grounded on
// original_source/ptext/io/write_transform/object/write_dictionary_transformer.py
// (queue-then-recurse, duplicate_references insert-before-recurse).
func (c *Context) writeObject(v value.Value) error {
	ref := v.Ref
	if ref == nil {
		return pdfgraph.NewError(pdfgraph.TypeMismatch, "writeObject: composite has no assigned Reference")
	}
	key := ref.Key()
	if c.duplicateRefs[key] {
		return nil
	}
	c.duplicateRefs[key] = true

	var queue []value.Value
	var body value.Value

	switch v.Kind {
	case value.KindDictionary:
		out := value.NewEmptyDictionary()
		for _, k := range v.Dict.Keys() {
			child, _ := v.Dict.Get(k)
			rewritten, err := c.transformChild(child, &queue)
			if err != nil {
				return err
			}
			out.Set(k, rewritten)
		}
		body = value.Value{Kind: value.KindDictionary, Dict: out}

	case value.KindArray:
		elems := make([]value.Value, len(v.Array.Elems))
		for i, el := range v.Array.Elems {
			rewritten, err := c.transformChild(el, &queue)
			if err != nil {
				return err
			}
			elems[i] = rewritten
		}
		body = value.Value{Kind: value.KindArray, Array: &value.Array{Elems: elems}}

	case value.KindStream:
		out := value.NewEmptyDictionary()
		for _, k := range v.Stream.Dict.Keys() {
			if k == "Length" {
				continue
			}
			child, _ := v.Stream.Dict.Get(k)
			rewritten, err := c.transformChild(child, &queue)
			if err != nil {
				return err
			}
			out.Set(k, rewritten)
		}
		// /Length is rewritten to the exact raw byte count (spec.md §4.6).
		out.Set("Length", value.NewInt(int64(len(v.Stream.Raw))))
		body = value.Value{Kind: value.KindStream, Stream: value.NewStream(out, v.Stream.Raw)}

	default:
		return pdfgraph.NewError(pdfgraph.TypeMismatch, "writeObject: unsupported top-level kind %s", v.Kind)
	}

	c.objectLocations[ref.ObjectNumber] = objectLocation{offset: c.pos, generation: ref.GenerationNumber}
	if err := c.writeString(fmt.Sprintf("%d %d obj\n", ref.ObjectNumber, ref.GenerationNumber)); err != nil {
		return err
	}
	if err := c.writeBody(body); err != nil {
		return err
	}
	if err := c.writeString("\nendobj\n"); err != nil {
		return err
	}

	for _, child := range queue {
		if err := c.writeObject(child); err != nil {
			return err
		}
	}
	return nil
}

// writeBody renders a post-transform dictionary, array, or stream body
// directly (its children are already either scalars or Indirect
// placeholders, so value.Value.WriteTo's plain dispatch is sufficient).
// Byte counts from WriteTo are folded into c.pos so object offsets recorded
// around writeBody stay accurate.
func (c *Context) writeBody(v value.Value) error {
	switch v.Kind {
	case value.KindStream:
		dictVal := value.Value{Kind: value.KindDictionary, Dict: v.Stream.Dict}
		n, err := dictVal.WriteTo(c.dest)
		c.pos += n
		if err != nil {
			return err
		}
		if err := c.writeString("\nstream\n"); err != nil {
			return err
		}
		if err := c.writeBytes(v.Stream.Raw); err != nil {
			return err
		}
		return c.writeString("\nendstream")
	default:
		n, err := v.WriteTo(c.dest)
		c.pos += n
		return err
	}
}
