package diagram

import (
	"fmt"

	"github.com/google/uuid"
)

// AddNode appends a node to the diagram. The id must be unique.
func (d *Diagram) AddNode(n Node) error {
	if d.HasNode(n.ID) {
		return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateID)
	}
	d.Nodes = append(d.Nodes, n)
	return nil
}

// AddHeaderNode creates the header node for a column at the given position.
// The header id is derived from the column id, so adding a header twice for
// the same column fails with ErrDuplicateID.
func (d *Diagram) AddHeaderNode(col Column, pos Point) error {
	header := Node{
		ID:       HeaderID(col.ID),
		Kind:     KindHeader,
		Position: pos,
		Column:   col.ID,
		IsHeader: true,
		Data: NodeData{
			Label: col.Title,
			Color: col.Color,
		},
	}
	return d.AddNode(header)
}

// UpdateNodeData replaces a node's payload. The node's id, kind, position
// and column membership are preserved; Data is a full replace, not a merge.
func (d *Diagram) UpdateNodeData(id string, data NodeData) error {
	node := d.FindNode(id)
	if node == nil {
		return fmt.Errorf("node %q: %w", id, ErrNotFound)
	}
	node.Data = data
	return nil
}

// RemoveNode removes a node and, atomically, every edge whose source or
// target is that node. Removing an absent node is a no-op; deletion is
// idempotent.
func (d *Diagram) RemoveNode(id string) {
	for i, node := range d.Nodes {
		if node.ID == id {
			d.Nodes = append(d.Nodes[:i], d.Nodes[i+1:]...)
			break
		}
	}

	edges := d.Edges[:0]
	for _, e := range d.Edges {
		if e.Source != id && e.Target != id {
			edges = append(edges, e)
		}
	}
	d.Edges = edges
}

// RemoveEdge removes an edge by id. Removing an absent edge is a no-op.
func (d *Diagram) RemoveEdge(id string) {
	for i, e := range d.Edges {
		if e.ID == id {
			d.Edges = append(d.Edges[:i], d.Edges[i+1:]...)
			return
		}
	}
}

// DefaultEdge returns an edge between source and target carrying the
// default presentation: animated, with an arrowhead and no label. Callers
// building their own Edge override these.
func DefaultEdge(source, target string) Edge {
	return Edge{
		Source:   source,
		Target:   target,
		Animated: true,
		Arrow:    true,
	}
}

// AddEdge appends an edge after validating that both endpoints exist. An id
// is generated when none is given. The decorated edge is returned.
func (d *Diagram) AddEdge(e Edge) (Edge, error) {
	if !d.HasNode(e.Source) {
		return Edge{}, fmt.Errorf("edge source %q: %w", e.Source, ErrNotFound)
	}
	if !d.HasNode(e.Target) {
		return Edge{}, fmt.Errorf("edge target %q: %w", e.Target, ErrNotFound)
	}
	if e.ID == "" {
		e.ID = "edge-" + uuid.NewString()
	}
	d.Edges = append(d.Edges, e)
	return e, nil
}

// AddColumn appends a column and creates its header node at headerPos.
// Column order is append-only; the new column takes the next ordinal slot.
func (d *Diagram) AddColumn(col Column, headerPos Point) error {
	if d.ColumnIndex(col.ID) >= 0 {
		return fmt.Errorf("column %q: %w", col.ID, ErrDuplicateID)
	}
	if err := d.AddHeaderNode(col, headerPos); err != nil {
		return err
	}
	d.Columns = append(d.Columns, col)
	return nil
}
