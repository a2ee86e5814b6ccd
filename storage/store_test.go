package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowboard/diagram"
	"flowboard/layout"
	"flowboard/storage"
)

func buildDiagram(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := &diagram.Diagram{}
	require.NoError(t, d.AddColumn(diagram.Column{ID: "a", Title: "Backlog"}, layout.HeaderPosition(d)))
	require.NoError(t, d.AddColumn(diagram.Column{ID: "b", Title: "Done"}, layout.HeaderPosition(d)))
	require.NoError(t, d.AddNode(diagram.Node{
		ID: "n1", Kind: diagram.KindGeneric, Column: "a",
		Position: layout.NodePosition(d, "a"),
		Data:     diagram.NodeData{Label: "task"},
	}))
	_, err := d.AddEdge(diagram.Edge{ID: "e1", Source: "n1", Target: "header-b"})
	require.NoError(t, err)
	return d
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	require.NoError(t, store.Save(ctx, buildDiagram(t)))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Len(t, loaded.Columns, 2)
	assert.True(t, loaded.HasNode("n1"))
	assert.Len(t, loaded.Edges, 1)
}

func TestLoadBeforeSave(t *testing.T) {
	store := storage.NewMemoryStore()
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotSaved)
}

func TestMarshalStripsHeaders(t *testing.T) {
	data, err := storage.Marshal(buildDiagram(t))
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"isHeader"`)
	assert.Contains(t, string(data), `"n1"`)
}

func TestUnmarshalRebuildsHeaders(t *testing.T) {
	data, err := storage.Marshal(buildDiagram(t))
	require.NoError(t, err)

	loaded, err := storage.Unmarshal(data)
	require.NoError(t, err)

	// One header per column, rebuilt at its layout slot.
	ha := loaded.FindNode("header-a")
	hb := loaded.FindNode("header-b")
	require.NotNil(t, ha)
	require.NotNil(t, hb)
	assert.True(t, ha.IsHeader)
	assert.Equal(t, layout.ColumnX(0), ha.Position.X)
	assert.Equal(t, layout.ColumnX(1), hb.Position.X)
	assert.Equal(t, float64(layout.HeaderY), ha.Position.Y)
	assert.Equal(t, "Backlog", ha.Data.Label)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	require.NoError(t, store.Save(ctx, buildDiagram(t)))
	require.NoError(t, store.Save(ctx, &diagram.Diagram{}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Nodes)
	assert.Empty(t, loaded.Columns)
}
