// Package layout computes positions for new nodes and column headers.
// Columns behave like swimlanes laid out left to right; nodes stack
// downward within their column. All functions are pure: they inspect the
// diagram and return a position without mutating anything.
package layout

import "flowboard/diagram"

// Grid constants, in model units.
const (
	ColumnWidth = 200
	Gap         = 80
	NodeWidth   = 180

	HeaderY   = 10  // Fixed row for column headers
	FirstRowY = 100 // First node row in an empty column
	RowStep   = 120 // Vertical distance between stacked rows
)

// ColumnX returns the x coordinate for a node in the column at ordinal i.
func ColumnX(i int) float64 {
	return float64(i*(ColumnWidth+Gap)) + float64(ColumnWidth-NodeWidth)/2
}

// NodePosition returns the placement for a new node in the given column.
// The first node lands at FirstRowY; subsequent nodes go one RowStep below
// the current maximum. Placement only ever inspects the current maximum y,
// so gaps left by deleted nodes are not reclaimed.
func NodePosition(d *diagram.Diagram, columnID string) diagram.Point {
	x := ColumnX(d.ColumnIndex(columnID))

	existing := d.ColumnNodes(columnID)
	if len(existing) == 0 {
		return diagram.Point{X: x, Y: FirstRowY}
	}

	maxY := existing[0].Position.Y
	for _, n := range existing[1:] {
		if n.Position.Y > maxY {
			maxY = n.Position.Y
		}
	}
	return diagram.Point{X: x, Y: maxY + RowStep}
}

// HeaderPosition returns the placement for the header of a column about to
// be appended: the slot to the right of the current last column, at the
// fixed header row.
func HeaderPosition(d *diagram.Diagram) diagram.Point {
	return diagram.Point{X: ColumnX(len(d.Columns)), Y: HeaderY}
}
