package diagram

import "testing"

func TestHeaderID(t *testing.T) {
	if got := HeaderID("reviews"); got != "header-reviews" {
		t.Errorf("Expected header-reviews, got %s", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := &Diagram{
		Nodes: []Node{
			{ID: "n1", Kind: KindGeneric, Data: NodeData{Label: "one", Attrs: map[string]string{"k": "v"}}},
		},
		Edges: []Edge{
			{ID: "e1", Source: "n1", Target: "n1", Style: map[string]string{"stroke": "red"}},
		},
		Columns: []Column{{ID: "a", Title: "A"}},
	}

	clone := d.Clone()

	d.Nodes[0].Data.Label = "changed"
	d.Nodes[0].Data.Attrs["k"] = "changed"
	d.Edges[0].Style["stroke"] = "blue"
	d.Columns[0].Title = "changed"

	if clone.Nodes[0].Data.Label != "one" {
		t.Error("Clone shares node data with the original")
	}
	if clone.Nodes[0].Data.Attrs["k"] != "v" {
		t.Error("Clone shares node attrs map with the original")
	}
	if clone.Edges[0].Style["stroke"] != "red" {
		t.Error("Clone shares edge style map with the original")
	}
	if clone.Columns[0].Title != "A" {
		t.Error("Clone shares columns with the original")
	}
}

func TestCloneNil(t *testing.T) {
	var d *Diagram
	if d.Clone() != nil {
		t.Error("Cloning nil should return nil")
	}
}

func TestColumnIndex(t *testing.T) {
	d := &Diagram{Columns: []Column{{ID: "a"}, {ID: "b"}}}

	if i := d.ColumnIndex("b"); i != 1 {
		t.Errorf("Expected index 1, got %d", i)
	}
	if i := d.ColumnIndex("missing"); i != -1 {
		t.Errorf("Expected -1 for missing column, got %d", i)
	}
}

func TestColumnNodesExcludesHeaders(t *testing.T) {
	d := &Diagram{
		Nodes: []Node{
			{ID: "header-a", Column: "a", IsHeader: true},
			{ID: "n1", Column: "a"},
			{ID: "n2", Column: "b"},
		},
	}

	nodes := d.ColumnNodes("a")
	if len(nodes) != 1 || nodes[0].ID != "n1" {
		t.Errorf("Expected only n1, got %v", nodes)
	}
}
