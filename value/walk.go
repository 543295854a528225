package value

// Walk performs a depth-first traversal of v, calling fn for v and every
// Value transitively reachable from it (Array elements and Object values,
// not Object keys). Traversal stops early, without descending into the
// current container, when fn returns false for it.
func Walk(v Value, fn func(Value) bool) {
	if !fn(v) {
		return
	}

	switch v.kind {
	case KindArray:
		for _, e := range v.arr.Elements() {
			Walk(e, fn)
		}
	case KindObject:
		v.obj.Entries(func(_ string, val Value) bool {
			Walk(val, fn)
			return true
		})
	}
}
