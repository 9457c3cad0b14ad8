/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package document

import (
	"github.com/pdfgraph/pdfgraph/value"
	"github.com/pdfgraph/pdfgraph/xref"
)

// materializer deep-resolves every KindIndirect value reachable from a root
// value into the composite it points at, so the writer package (which never
// holds a Resolver and cannot dereference references itself) is handed a
// fully self-contained graph to walk. Grounded on xref.Resolver's own
// cycle-safe resolution (resolver.go's in-progress cache placeholder);
// materialize mirrors that "mark before recursing" approach at the
// composite-pointer level, since a resolved graph can still contain cycles
// (e.g. a page's /Parent pointing back through /Kids).
type materializer struct {
	resolver *xref.Resolver

	dicts  map[*value.Dictionary]bool
	arrays map[*value.Array]bool
}

// materializeGraph fills in every reachable KindIndirect value in place with
// the composite it resolves to (the resolver's own cache hands back the
// same *Dictionary/*Array/*Stream pointer on repeat resolution, so this also
// memoizes materialization across multiple writes of the same Document).
// The returned Value's composites keep their original Ref back-edge, so the
// writer's identity-assignment rule
// (spec.md §4.6) still retains its original object number.
func materializeGraph(r *xref.Resolver, v value.Value) (value.Value, error) {
	m := &materializer{
		resolver: r,
		dicts:    map[*value.Dictionary]bool{},
		arrays:   map[*value.Array]bool{},
	}
	return m.walk(v)
}

func (m *materializer) walk(v value.Value) (value.Value, error) {
	if v.Kind == value.KindIndirect {
		resolved, err := m.resolver.Resolve(v.Indirect)
		if err != nil {
			return value.Value{}, err
		}
		return m.walk(resolved)
	}

	switch v.Kind {
	case value.KindDictionary:
		if err := m.fillDict(v.Dict); err != nil {
			return value.Value{}, err
		}
	case value.KindArray:
		if err := m.fillArray(v.Array); err != nil {
			return value.Value{}, err
		}
	case value.KindStream:
		if err := m.fillDict(v.Stream.Dict); err != nil {
			return value.Value{}, err
		}
	}
	return v, nil
}

func (m *materializer) fillDict(d *value.Dictionary) error {
	if m.dicts[d] {
		return nil
	}
	m.dicts[d] = true

	for _, k := range d.Keys() {
		child, _ := d.Get(k)
		resolved, err := m.walk(child)
		if err != nil {
			return err
		}
		d.Set(k, resolved)
	}
	return nil
}

func (m *materializer) fillArray(a *value.Array) error {
	if m.arrays[a] {
		return nil
	}
	m.arrays[a] = true

	for i, el := range a.Elems {
		resolved, err := m.walk(el)
		if err != nil {
			return err
		}
		a.Elems[i] = resolved
	}
	return nil
}
