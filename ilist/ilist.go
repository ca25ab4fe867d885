package ilist

// List is an append-by-copy list of integer indices.
//
// The zero value is an empty, ready-to-use list. All combining operations
// copy element storage; two lists never share a backing array, so mutating
// one list is never observable through another.
type List []int

// New returns a list holding copies of the given items.
// Complexity: O(len(items)).
func New(items ...int) List {
	if len(items) == 0 {
		return nil
	}
	l := make(List, len(items))
	copy(l, items)

	return l
}

// Clone returns an independent copy of l.
// Complexity: O(len(l)).
func (l List) Clone() List {
	if len(l) == 0 {
		return nil
	}
	c := make(List, len(l))
	copy(c, l)

	return c
}

// Append returns a list holding l's items followed by copies of src's items.
// The result never aliases l or src, even when one of them is empty: the
// caller may keep mutating either input without affecting the result.
// Complexity: O(len(l) + len(src)).
func (l List) Append(src List) List {
	if len(l) == 0 && len(src) == 0 {
		return nil
	}
	out := make(List, 0, len(l)+len(src))
	out = append(out, l...)
	out = append(out, src...)

	return out
}

// Contains reports whether v occurs in l.
// Complexity: O(len(l)).
func (l List) Contains(v int) bool {
	for _, x := range l {
		if x == v {
			return true
		}
	}

	return false
}
