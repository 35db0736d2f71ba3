package types

import "strings"

// Seq abstracts ordered storage shared by lists and tuples.
// Every modifying method returns a new Seq (COW); the receiver is never
// changed, which is what keeps two Values from ever aliasing.
type Seq interface {
	Len() int
	Get(index int) Value // 0-based
	Append(v Value) Seq
	DeleteAt(index int) Seq
	Slice(start, end int) Seq
	Elements() []Value // For iteration; callers must not modify
}

// sliceSeq is the concrete implementation (private)
type sliceSeq struct {
	elements []Value
}

func (s *sliceSeq) Len() int {
	return len(s.elements)
}

func (s *sliceSeq) Get(i int) Value {
	if i < 0 || i >= len(s.elements) {
		return nil
	}
	return s.elements[i]
}

func (s *sliceSeq) Append(v Value) Seq {
	newElems := make([]Value, len(s.elements)+1)
	copy(newElems, s.elements)
	newElems[len(s.elements)] = v
	return &sliceSeq{elements: newElems}
}

func (s *sliceSeq) DeleteAt(i int) Seq {
	if i < 0 || i >= len(s.elements) {
		return s // Out of bounds - return unchanged
	}
	newElems := make([]Value, len(s.elements)-1)
	copy(newElems[:i], s.elements[:i])
	copy(newElems[i:], s.elements[i+1:])
	return &sliceSeq{elements: newElems}
}

func (s *sliceSeq) Slice(start, end int) Seq {
	// Half-open [start, end), clamped to the actual bounds
	if start < 0 {
		start = 0
	}
	if end > len(s.elements) {
		end = len(s.elements)
	}
	if start >= end {
		return &sliceSeq{elements: []Value{}}
	}
	newElems := make([]Value, end-start)
	copy(newElems, s.elements[start:end])
	return &sliceSeq{elements: newElems}
}

func (s *sliceSeq) Elements() []Value {
	return s.elements
}

func newSeq(elements []Value) Seq {
	owned := make([]Value, len(elements))
	copy(owned, elements)
	return &sliceSeq{elements: owned}
}

var emptySeq Seq = &sliceSeq{elements: []Value{}}

// joinElements renders each element and joins them with ", "
func joinElements(elements []Value) string {
	parts := make([]string, len(elements))
	for i, elem := range elements {
		parts[i] = Canonical(elem)
	}
	return strings.Join(parts, ", ")
}

// ListValue represents an ordered, resizable sequence of values
type ListValue struct {
	data Seq
}

// NewList creates a new list value holding a copy of elements
func NewList(elements []Value) ListValue {
	return ListValue{data: newSeq(elements)}
}

// NewEmptyList creates an empty list
func NewEmptyList() ListValue {
	return ListValue{data: emptySeq}
}

func (l ListValue) seq() Seq {
	if l.data == nil {
		return emptySeq
	}
	return l.data
}

// String returns "[e0, e1, ...]"
func (l ListValue) String() string {
	return "[" + joinElements(l.seq().Elements()) + "]"
}

// Type returns the type code for lists
func (l ListValue) Type() TypeCode {
	return TYPE_LIST
}

// Truthy returns whether the list is non-empty
func (l ListValue) Truthy() bool {
	return l.Len() > 0
}

// Len returns the length of the list
func (l ListValue) Len() int {
	return l.seq().Len()
}

// Get returns the element at index (0-based), nil when out of range
func (l ListValue) Get(index int) Value {
	return l.seq().Get(index)
}

// Append returns a new list with the value appended (COW)
func (l ListValue) Append(value Value) ListValue {
	return ListValue{data: l.seq().Append(value)}
}

// DeleteAt returns a new list with element at index removed (COW)
func (l ListValue) DeleteAt(index int) ListValue {
	return ListValue{data: l.seq().DeleteAt(index)}
}

// Slice returns a new list containing elements in [start, end), clamped
func (l ListValue) Slice(start, end int) ListValue {
	return ListValue{data: l.seq().Slice(start, end)}
}

// Elements returns the internal slice for iteration
func (l ListValue) Elements() []Value {
	return l.seq().Elements()
}

// TupleValue represents a fixed-arity ordered sequence of values
type TupleValue struct {
	data Seq
}

// NewTuple creates a tuple holding a copy of elements
func NewTuple(elements []Value) TupleValue {
	return TupleValue{data: newSeq(elements)}
}

func (t TupleValue) seq() Seq {
	if t.data == nil {
		return emptySeq
	}
	return t.data
}

// String returns "(e0, e1)"; a one-element tuple keeps its trailing comma
func (t TupleValue) String() string {
	elements := t.seq().Elements()
	if len(elements) == 1 {
		return "(" + Canonical(elements[0]) + ",)"
	}
	return "(" + joinElements(elements) + ")"
}

// Type returns the type code for tuples
func (t TupleValue) Type() TypeCode {
	return TYPE_TUPLE
}

// Truthy returns whether the tuple is non-empty
func (t TupleValue) Truthy() bool {
	return t.Len() > 0
}

// Len returns the arity of the tuple
func (t TupleValue) Len() int {
	return t.seq().Len()
}

// Get returns the element at index (0-based), nil when out of range
func (t TupleValue) Get(index int) Value {
	return t.seq().Get(index)
}

// Elements returns the internal slice for iteration
func (t TupleValue) Elements() []Value {
	return t.seq().Elements()
}
