package types

import (
	"sort"
	"strings"
)

// KeyedStore abstracts string-keyed storage shared by dicts and sets.
// Keys are canonical renderings (see Canonical). Modifying methods return a
// new store (COW).
type KeyedStore interface {
	Len() int
	Get(key string) (Value, bool)
	Set(key string, val Value) KeyedStore
	Delete(key string) KeyedStore
	Keys() []string // in insertion order
}

// orderedMap is the concrete implementation (private).
// Go map iteration is random, so insertion order is tracked separately to
// make rendering stable; overwriting a key keeps its original slot.
type orderedMap struct {
	order []string
	items map[string]Value
}

func newOrderedMap(capacity int) *orderedMap {
	return &orderedMap{
		order: make([]string, 0, capacity),
		items: make(map[string]Value, capacity),
	}
}

func (m *orderedMap) Len() int {
	return len(m.order)
}

func (m *orderedMap) Get(k string) (Value, bool) {
	v, ok := m.items[k]
	return v, ok
}

func (m *orderedMap) clone(extra int) *orderedMap {
	c := newOrderedMap(len(m.order) + extra)
	c.order = append(c.order, m.order...)
	for k, v := range m.items {
		c.items[k] = v
	}
	return c
}

// put mutates m; only used on freshly built or cloned maps
func (m *orderedMap) put(k string, v Value) {
	if _, exists := m.items[k]; !exists {
		m.order = append(m.order, k)
	}
	m.items[k] = v
}

func (m *orderedMap) Set(k string, v Value) KeyedStore {
	c := m.clone(1)
	c.put(k, v)
	return c
}

func (m *orderedMap) Delete(k string) KeyedStore {
	if _, exists := m.items[k]; !exists {
		return m // Key doesn't exist, return unchanged
	}
	c := newOrderedMap(len(m.order) - 1)
	for _, key := range m.order {
		if key != k {
			c.order = append(c.order, key)
			c.items[key] = m.items[key]
		}
	}
	return c
}

func (m *orderedMap) Keys() []string {
	return m.order
}

var emptyStore KeyedStore = newOrderedMap(0)

// DictValue represents a mapping from canonical string keys to values
type DictValue struct {
	data KeyedStore
}

// NewDict creates a dict from a pre-built string-keyed mapping.
// Go maps carry no order, so keys are inserted sorted.
func NewDict(entries map[string]Value) DictValue {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := newOrderedMap(len(keys))
	for _, k := range keys {
		m.put(k, entries[k])
	}
	return DictValue{data: m}
}

// NewDictFromPairs creates a dict from key/value pairs, canonicalizing each
// key; later duplicates overwrite earlier ones.
func NewDictFromPairs(pairs [][2]Value) DictValue {
	m := newOrderedMap(len(pairs))
	for _, p := range pairs {
		m.put(Canonical(p[0]), p[1])
	}
	return DictValue{data: m}
}

// NewEmptyDict creates an empty dict
func NewEmptyDict() DictValue {
	return DictValue{data: emptyStore}
}

func (d DictValue) store() KeyedStore {
	if d.data == nil {
		return emptyStore
	}
	return d.data
}

// String returns "{k0: v0, k1: v1}" with keys rendered as raw text
func (d DictValue) String() string {
	s := d.store()
	parts := make([]string, 0, s.Len())
	for _, k := range s.Keys() {
		v, _ := s.Get(k)
		parts = append(parts, k+": "+Canonical(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Type returns the type code for dicts
func (d DictValue) Type() TypeCode {
	return TYPE_DICT
}

// Truthy returns whether the dict is non-empty
func (d DictValue) Truthy() bool {
	return d.Len() > 0
}

// Len returns the number of entries
func (d DictValue) Len() int {
	return d.store().Len()
}

// Get returns the value for a key
func (d DictValue) Get(key Value) (Value, bool) {
	return d.store().Get(Canonical(key))
}

// Has reports whether the canonical form of key is present
func (d DictValue) Has(key Value) bool {
	_, ok := d.Get(key)
	return ok
}

// Set returns a new dict with the key-value pair set (COW)
func (d DictValue) Set(key, val Value) DictValue {
	return DictValue{data: d.store().Set(Canonical(key), val)}
}

// Delete returns a new dict with the key removed (COW)
func (d DictValue) Delete(key Value) DictValue {
	return DictValue{data: d.store().Delete(Canonical(key))}
}

// Keys returns the canonical keys in insertion order
func (d DictValue) Keys() []string {
	return d.store().Keys()
}

// SetValue represents a collection of values keyed by their rendering.
// Values that render identically collide and the last one written wins.
type SetValue struct {
	data KeyedStore
}

// NewSetOf builds a set from members, deduplicating by rendering
func NewSetOf(members []Value) SetValue {
	m := newOrderedMap(len(members))
	for _, v := range members {
		m.put(Canonical(v), v)
	}
	return SetValue{data: m}
}

func (s SetValue) store() KeyedStore {
	if s.data == nil {
		return emptyStore
	}
	return s.data
}

// String returns "{m0, m1}"
func (s SetValue) String() string {
	st := s.store()
	parts := make([]string, 0, st.Len())
	for _, k := range st.Keys() {
		v, _ := st.Get(k)
		parts = append(parts, Canonical(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Type returns the type code for sets
func (s SetValue) Type() TypeCode {
	return TYPE_SET
}

// Truthy returns whether the set is non-empty
func (s SetValue) Truthy() bool {
	return s.Len() > 0
}

// Len returns the number of distinct renderings held
func (s SetValue) Len() int {
	return s.store().Len()
}

// Has reports whether a member with the same rendering is present
func (s SetValue) Has(v Value) bool {
	_, ok := s.store().Get(Canonical(v))
	return ok
}

// Add returns a new set containing v (COW), replacing any member with the
// same rendering
func (s SetValue) Add(v Value) SetValue {
	return SetValue{data: s.store().Set(Canonical(v), v)}
}

// Delete returns a new set without the member rendering like v (COW)
func (s SetValue) Delete(v Value) SetValue {
	return SetValue{data: s.store().Delete(Canonical(v))}
}

// Members returns the stored values in insertion order
func (s SetValue) Members() []Value {
	st := s.store()
	out := make([]Value, 0, st.Len())
	for _, k := range st.Keys() {
		v, _ := st.Get(k)
		out = append(out, v)
	}
	return out
}
