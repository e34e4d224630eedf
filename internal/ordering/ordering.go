package ordering

import "sort"

// Key is the stable ordering key every diagnostic sorts by: policy name,
// then physical line, then column.
type Key struct {
	Policy string
	Line   int
	Column int
}

// Less reports whether k sorts before other.
func (k Key) Less(other Key) bool {
	if k.Policy != other.Policy {
		return k.Policy < other.Policy
	}
	if k.Line != other.Line {
		return k.Line < other.Line
	}
	return k.Column < other.Column
}

// SortByKey sorts items in place using keyOf to extract each item's sort
// key. The sort is stable, so items sharing a key keep their discovery
// order — mirroring the teacher corpus's preference for an explicit,
// named sort function per ordering strategy rather than one inline
// comparator trying to do everything.
func SortByKey[T any](items []T, keyOf func(T) Key) {
	sort.SliceStable(items, func(i, j int) bool {
		return keyOf(items[i]).Less(keyOf(items[j]))
	})
}
