package value

// Array is an ordered, growable sequence of Values.
//
// The wire format bounds an Array's encoded element count to 255 (§4.2);
// Array itself does not enforce that bound at construction time, only the
// encoder does (errs.ErrContainerTooLarge), so Arrays can be built up
// freely and validated once at serialize time.
type Array struct {
	elems []Value
}

// Append adds v as the next element of the array.
func (a *Array) Append(v Value) {
	a.elems = append(a.elems, v)
}

// Len returns the number of elements currently in the array.
func (a *Array) Len() int {
	return len(a.elems)
}

// At returns the element at index i. Panics if i is out of range.
func (a *Array) At(i int) Value {
	return a.elems[i]
}

// Elements returns the array's elements in order. The returned slice
// shares storage with the array and must not be mutated by the caller.
func (a *Array) Elements() []Value {
	return a.elems
}
