package vic

// Cell is a cell position relative to the top-left of the crop.
type Cell struct {
	Column, Row int
}

// Traversal selects the order in which cells are visited when writing
// the video and color sections, and which cell each output position
// refers to for the visitation-dependent bitmap orders.
type Traversal struct {
	// ColumnMajor walks columns in the outer loop instead of rows.
	ColumnMajor bool

	// ReverseColumns walks columns right to left.
	ReverseColumns bool

	// ReverseRows walks rows bottom to top.
	ReverseRows bool
}

func indices(n int, reverse bool) []int {
	if n < 0 {
		n = 0
	}
	s := make([]int, n)
	for i := range s {
		if reverse {
			s[i] = n - 1 - i
		} else {
			s[i] = i
		}
	}
	return s
}

// CellOrder returns every cell of a width x height grid exactly once,
// in the order given by t.
func CellOrder(width, height int, t Traversal) []Cell {
	cols := indices(width, t.ReverseColumns)
	rows := indices(height, t.ReverseRows)

	order := make([]Cell, 0, len(cols)*len(rows))
	if t.ColumnMajor {
		for _, c := range cols {
			for _, r := range rows {
				order = append(order, Cell{c, r})
			}
		}
	} else {
		for _, r := range rows {
			for _, c := range cols {
				order = append(order, Cell{c, r})
			}
		}
	}
	return order
}
