package layout

import (
	"testing"

	"flowboard/diagram"
)

func col(ids ...string) *diagram.Diagram {
	d := &diagram.Diagram{}
	for i, id := range ids {
		d.AddColumn(diagram.Column{ID: id}, diagram.Point{X: ColumnX(i), Y: HeaderY})
	}
	return d
}

func TestNodePositionStacksDownward(t *testing.T) {
	d := col("a")

	first := NodePosition(d, "a")
	if first.Y != 100 {
		t.Errorf("First node in empty column should land at y=100, got %v", first.Y)
	}
	d.AddNode(diagram.Node{ID: "n1", Column: "a", Position: first})

	second := NodePosition(d, "a")
	if second.Y != 220 {
		t.Errorf("Second node should land at y=220, got %v", second.Y)
	}
	d.AddNode(diagram.Node{ID: "n2", Column: "a", Position: second})

	third := NodePosition(d, "a")
	if third.Y != 340 {
		t.Errorf("Third node should land at y=340, got %v", third.Y)
	}
}

func TestNodePositionXSlot(t *testing.T) {
	d := col("a", "b")

	// x = i*(200+80) + (200-180)/2
	pos := NodePosition(d, "a")
	if pos.X != 10 {
		t.Errorf("Column 0 x-slot should be 10, got %v", pos.X)
	}
	pos = NodePosition(d, "b")
	if pos.X != 290 {
		t.Errorf("Column 1 x-slot should be 290, got %v", pos.X)
	}
}

func TestNodePositionIgnoresHeaders(t *testing.T) {
	d := col("a")
	// Only the header exists, so the column counts as empty.
	if pos := NodePosition(d, "a"); pos.Y != FirstRowY {
		t.Errorf("Headers must not count as occupants, got y=%v", pos.Y)
	}
}

func TestNodePositionDoesNotCompactGaps(t *testing.T) {
	d := col("a")
	d.AddNode(diagram.Node{ID: "n1", Column: "a", Position: diagram.Point{X: 10, Y: 100}})
	d.AddNode(diagram.Node{ID: "n2", Column: "a", Position: diagram.Point{X: 10, Y: 220}})
	d.RemoveNode("n1")

	// The gap at y=100 is not reclaimed; placement tracks the max only.
	if pos := NodePosition(d, "a"); pos.Y != 340 {
		t.Errorf("Expected y=340 below the remaining max, got %v", pos.Y)
	}
}

func TestHeaderPositionAppendsToTheRight(t *testing.T) {
	d := col("a", "b")

	pos := HeaderPosition(d)
	if pos.X != ColumnX(2) {
		t.Errorf("New header should take slot 2, got x=%v", pos.X)
	}
	if pos.Y != HeaderY {
		t.Errorf("Headers sit at the fixed row y=%d, got %v", HeaderY, pos.Y)
	}
}
