package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDescriptor() GridDescriptor {
	middle := Branch(700,
		Leaf(PartActivityBar, 48, true),
		Leaf(PartSideBar, 300, true),
		Branch(800,
			Leaf(PartEditor, 500, true),
			Leaf(PartPanel, 200, false),
		),
		Leaf(PartAuxiliaryBar, 300, false),
	)
	return GridDescriptor{
		Root: Branch(1200,
			Leaf(PartTitleBar, 35, true),
			Leaf(PartBanner, 26, false),
			middle,
			Leaf(PartStatusBar, 22, true),
		),
		Orientation: OrientationVertical,
		Width:       1200,
		Height:      800,
	}
}

func TestGridDescriptor_Validate(t *testing.T) {
	desc := sampleDescriptor()
	require.NoError(t, desc.Validate())

	desc.Root.Children = desc.Root.Children[:3]
	err := desc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statusbar")

	dup := sampleDescriptor()
	dup.Root.Children = append(dup.Root.Children, Leaf(PartEditor, 1, true))
	assert.Error(t, dup.Validate())

	assert.Error(t, GridDescriptor{}.Validate())
}

func TestGridNode_WalkAndFind(t *testing.T) {
	desc := sampleDescriptor()

	leaves := desc.Root.Leaves()
	assert.Len(t, leaves, 8)

	panel := desc.Root.FindLeaf(PartPanel)
	require.NotNil(t, panel)
	assert.False(t, panel.Visible)

	depths := map[Part]int{}
	desc.Root.Walk(func(n *GridNode, depth int) bool {
		if n.IsLeaf() {
			depths[n.Part] = depth
		}
		return true
	})
	assert.Equal(t, 1, depths[PartTitleBar])
	assert.Equal(t, 2, depths[PartSideBar])
	assert.Equal(t, 3, depths[PartEditor])
}

func TestGridNode_JSONRoundTrip(t *testing.T) {
	desc := sampleDescriptor()

	data, err := json.Marshal(desc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"part":"workbench.parts.sidebar"`)
	assert.Contains(t, string(data), `"orientation":"vertical"`)

	var root GridNode
	raw, err := json.Marshal(desc.Root)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &root))

	restored := GridDescriptor{Root: &root}
	require.NoError(t, restored.Validate())
	assert.False(t, root.FindLeaf(PartBanner).Visible)
	assert.Equal(t, 300.0, root.FindLeaf(PartSideBar).Size)
}
