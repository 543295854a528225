package value

// Equal reports whether a and b are structurally equal: same Kind, same
// payload, and for containers, same children in the same order with equal
// keys for Object.
//
// Integer comparison is by numeric value regardless of which wire width the
// classifier would pick for it (§8 property 1, "integer values compare by
// numeric equality regardless of chosen wire width"); Equal operates purely
// on the in-memory value.Value tree, so that guarantee falls out for free.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInteger:
		return a.i == b.i
	case KindReal:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindBytes:
		return bytesEqual(a.buf, b.buf)
	case KindArray:
		return arrayEqual(a.arr, b.arr)
	case KindObject:
		return objectEqual(a.obj, b.obj)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func arrayEqual(a, b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !Equal(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

func objectEqual(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}

	aKeys, bKeys := a.Keys(), b.Keys()
	for i, k := range aKeys {
		if k != bKeys[i] {
			return false
		}

		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !Equal(av, bv) {
			return false
		}
	}

	return true
}
