// Package diagram contains the fundamental types used throughout the flowboard editor.
package diagram

// Point represents a 2D coordinate in model units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeKind identifies the shape a node renders as.
type NodeKind string

const (
	KindGeneric    NodeKind = "generic"
	KindTerminator NodeKind = "terminator"
	KindDecision   NodeKind = "decision"
	KindDocument   NodeKind = "document"
	KindHeader     NodeKind = "header"
)

// NodeData is the free-form payload attached to a node. Data is replaced
// wholesale on update, never merged.
type NodeData struct {
	Label string            `json:"label"`
	Color string            `json:"color,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Node represents a placed element in the diagram.
type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Position Point    `json:"position"`
	Column   string   `json:"column,omitempty"`   // Owning column ID, empty for free nodes
	IsHeader bool     `json:"isHeader,omitempty"` // Header nodes are non-draggable
	Data     NodeData `json:"data"`
}

// Edge represents a directed connection between two nodes.
type Edge struct {
	ID       string            `json:"id"`
	Source   string            `json:"source"`
	Target   string            `json:"target"`
	Label    string            `json:"label,omitempty"`
	Animated bool              `json:"animated,omitempty"`
	Arrow    bool              `json:"arrow,omitempty"`
	Style    map[string]string `json:"style,omitempty"` // Opaque presentation attributes
}

// Column is a vertical swimlane. Columns are ordered by creation sequence;
// the order determines the horizontal layout slot. There is no
// delete-column operation.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
}

// Viewport describes the visible region for export purposes.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// Diagram represents a complete diagram: nodes, edges and columns.
type Diagram struct {
	Nodes   []Node   `json:"nodes"`
	Edges   []Edge   `json:"edges"`
	Columns []Column `json:"columns"`
}

// HeaderID derives the header node id for a column. The derivation is
// deterministic so duplicate headers cannot collide silently.
func HeaderID(columnID string) string {
	return "header-" + columnID
}

// Clone creates a deep copy of the diagram. The copy shares no memory with
// the original; history entries depend on this.
func (d *Diagram) Clone() *Diagram {
	if d == nil {
		return nil
	}

	clone := &Diagram{
		Nodes:   make([]Node, len(d.Nodes)),
		Edges:   make([]Edge, len(d.Edges)),
		Columns: make([]Column, len(d.Columns)),
	}

	for i, node := range d.Nodes {
		clone.Nodes[i] = node
		if node.Data.Attrs != nil {
			attrs := make(map[string]string, len(node.Data.Attrs))
			for k, v := range node.Data.Attrs {
				attrs[k] = v
			}
			clone.Nodes[i].Data.Attrs = attrs
		}
	}

	for i, edge := range d.Edges {
		clone.Edges[i] = edge
		if edge.Style != nil {
			style := make(map[string]string, len(edge.Style))
			for k, v := range edge.Style {
				style[k] = v
			}
			clone.Edges[i].Style = style
		}
	}

	copy(clone.Columns, d.Columns)

	return clone
}

// FindNode returns a pointer to the node with the given id, or nil.
func (d *Diagram) FindNode(id string) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// HasNode reports whether a node with the given id exists.
func (d *Diagram) HasNode(id string) bool {
	return d.FindNode(id) != nil
}

// ColumnIndex returns the ordinal slot of a column, or -1 if absent.
func (d *Diagram) ColumnIndex(id string) int {
	for i, col := range d.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// ColumnNodes returns the non-header nodes belonging to a column.
func (d *Diagram) ColumnNodes(columnID string) []Node {
	var nodes []Node
	for _, n := range d.Nodes {
		if n.Column == columnID && !n.IsHeader {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
