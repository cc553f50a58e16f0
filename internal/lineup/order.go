package lineup

import (
	"cmp"
	"slices"
)

// Order selects how groups are listed in the output.
type Order int

const (
	// OrderByName lists groups alphabetically; used when no timing is emitted
	// so the website shows a directory.
	OrderByName Order = iota
	// OrderByPosition lists groups in on-air order.
	OrderByPosition
)

// OrderFor returns the ordering used for a lineup with or without timing.
func OrderFor(withTime bool) Order {
	if withTime {
		return OrderByPosition
	}
	return OrderByName
}

func (o Order) String() string {
	switch o {
	case OrderByName:
		return "name"
	case OrderByPosition:
		return "position"
	default:
		return "unknown"
	}
}

func (o Order) compare(a, b Group) int {
	if o == OrderByPosition {
		return cmp.Compare(a.position, b.position)
	}
	return cmp.Compare(a.Name, b.Name)
}

// SortGroups orders groups in place. The sort is stable: groups that compare
// equal keep their relative order.
func SortGroups(groups []Group, order Order) {
	slices.SortStableFunc(groups, order.compare)
}
