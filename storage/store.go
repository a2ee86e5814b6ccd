// Package storage persists the editing session under a fixed key with
// overwrite semantics: no merge, no versioning. Header nodes are derived
// state and are stripped on save, then rebuilt from the column list on load.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flowboard/diagram"
	"flowboard/layout"
)

// Key is the fixed storage key for the diagram document.
const Key = "flowboard:diagram"

// ErrNotSaved indicates no document exists under the key yet.
var ErrNotSaved = errors.New("no saved diagram")

// Store persists and restores a diagram document.
type Store interface {
	Save(ctx context.Context, d *diagram.Diagram) error
	Load(ctx context.Context) (*diagram.Diagram, error)
}

// document is the persisted shape: nodes excluding headers, edges, columns.
type document struct {
	Nodes   []diagram.Node   `json:"nodes"`
	Edges   []diagram.Edge   `json:"edges"`
	Columns []diagram.Column `json:"columns"`
}

// Marshal serializes a diagram for storage, excluding header nodes.
func Marshal(d *diagram.Diagram) ([]byte, error) {
	doc := document{
		Nodes:   make([]diagram.Node, 0, len(d.Nodes)),
		Edges:   d.Edges,
		Columns: d.Columns,
	}
	for _, n := range d.Nodes {
		if !n.IsHeader {
			doc.Nodes = append(doc.Nodes, n)
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal diagram: %w", err)
	}
	return data, nil
}

// Unmarshal restores a diagram from storage, rebuilding one header node per
// column at its layout slot.
func Unmarshal(data []byte) (*diagram.Diagram, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal diagram: %w", err)
	}

	d := &diagram.Diagram{
		Nodes: doc.Nodes,
		Edges: doc.Edges,
	}
	for _, col := range doc.Columns {
		if err := d.AddColumn(col, layout.HeaderPosition(d)); err != nil {
			return nil, fmt.Errorf("rebuilding column %q: %w", col.ID, err)
		}
	}
	return d, nil
}
