// Package core_test verifies the tree invariants enforced by Maze.AddRoom
// and Maze.Seal, and the read-only views handed to callers.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazetree/core"
)

// buildVee builds a root with two leaf children and seals it with exit 2:
//
//	  0
//	 / \
//	1   2
func buildVee(t *testing.T) (*core.Maze, []*core.Room) {
	t.Helper()
	m := core.NewMaze(3)
	root, err := m.AddRoom(nil, core.SideNone, core.Point{})
	require.NoError(t, err)
	l, err := m.AddRoom(root, core.SideLeft, core.Point{X: 1})
	require.NoError(t, err)
	r, err := m.AddRoom(root, core.SideRight, core.Point{X: 2})
	require.NoError(t, err)
	require.NoError(t, m.Seal([]*core.Room{l, r}, r))

	return m, []*core.Room{root, l, r}
}

func TestAddRoom_LinksAndIDs(t *testing.T) {
	m, rs := buildVee(t)
	root, l, r := rs[0], rs[1], rs[2]

	assert.Equal(t, 3, m.Len())
	for i, room := range m.Rooms() {
		assert.Equal(t, i, room.ID())
	}
	assert.Same(t, root, m.Start())
	assert.True(t, root.IsRoot())
	assert.Same(t, l, root.Left())
	assert.Same(t, r, root.Right())
	assert.Same(t, root, l.Back())
	assert.Same(t, root, r.Back())
	assert.Same(t, l, root.Child(core.SideLeft))
	assert.Nil(t, root.Child(core.SideNone))
	assert.True(t, l.IsLeaf())
	assert.False(t, root.IsLeaf())
	assert.Equal(t, core.Point{X: 2}, r.Spawn())
	assert.Equal(t, []*core.Room{l, r}, root.Children())
	assert.Equal(t, []*core.Room{root}, l.Neighbors())
	assert.Equal(t, []*core.Room{l, r}, root.Neighbors())
}

func TestAddRoom_Errors(t *testing.T) {
	m := core.NewMaze(-1)
	root, err := m.AddRoom(nil, core.SideNone, core.Point{})
	require.NoError(t, err)

	_, err = m.AddRoom(nil, core.SideNone, core.Point{})
	assert.ErrorIs(t, err, core.ErrRootExists)

	_, err = m.AddRoom(root, core.SideNone, core.Point{})
	assert.ErrorIs(t, err, core.ErrBadSide)

	_, err = m.AddRoom(root, core.SideLeft, core.Point{})
	require.NoError(t, err)
	_, err = m.AddRoom(root, core.SideLeft, core.Point{})
	assert.ErrorIs(t, err, core.ErrSlotTaken)

	other := core.NewMaze(1)
	foreign, err := other.AddRoom(nil, core.SideNone, core.Point{})
	require.NoError(t, err)
	_, err = m.AddRoom(foreign, core.SideRight, core.Point{})
	assert.ErrorIs(t, err, core.ErrRoomNotInTree)

	assert.Equal(t, 2, m.Len(), "failed AddRoom calls must not create rooms")
}

func TestSeal(t *testing.T) {
	m := core.NewMaze(2)
	root, _ := m.AddRoom(nil, core.SideNone, core.Point{})
	leaf, _ := m.AddRoom(root, core.SideRight, core.Point{})

	assert.Nil(t, m.Leaves())
	assert.Nil(t, m.Exit())
	assert.ErrorIs(t, core.Validate(m), core.ErrMazeNotSealed)

	assert.ErrorIs(t, m.Seal([]*core.Room{leaf}, nil), core.ErrNilRoom)
	assert.ErrorIs(t, m.Seal([]*core.Room{root}, root), core.ErrNotLeaf)
	assert.ErrorIs(t, m.Seal([]*core.Room{leaf}, root), core.ErrExitNotLeaf)
	assert.ErrorIs(t, m.Seal([]*core.Room{nil}, leaf), core.ErrNilRoom)
	assert.False(t, m.Sealed())

	require.NoError(t, m.Seal([]*core.Room{leaf}, leaf))
	assert.True(t, m.Sealed())
	assert.Same(t, leaf, m.Exit())
	assert.Equal(t, []*core.Room{leaf}, m.Leaves())

	_, err := m.AddRoom(leaf, core.SideLeft, core.Point{})
	assert.ErrorIs(t, err, core.ErrMazeSealed)
	assert.ErrorIs(t, m.Seal([]*core.Room{leaf}, leaf), core.ErrMazeSealed)
}

func TestViewsAreCopies(t *testing.T) {
	m, rs := buildVee(t)

	rooms := m.Rooms()
	rooms[0] = nil
	assert.Same(t, rs[0], m.Rooms()[0])

	leaves := m.Leaves()
	leaves[0] = nil
	assert.NotNil(t, m.Leaves()[0])
}

func TestRoomLookupAndValidate(t *testing.T) {
	m, rs := buildVee(t)

	got, err := m.Room(2)
	require.NoError(t, err)
	assert.Same(t, rs[2], got)

	_, err = m.Room(3)
	assert.ErrorIs(t, err, core.ErrRoomNotInTree)
	_, err = m.Room(-1)
	assert.ErrorIs(t, err, core.ErrRoomNotInTree)

	other, _ := buildVee(t)
	assert.NoError(t, core.Validate(m, rs...))
	assert.ErrorIs(t, core.Validate(nil), core.ErrNilMaze)
	assert.ErrorIs(t, core.Validate(m, nil), core.ErrNilRoom)
	assert.ErrorIs(t, core.Validate(m, other.Start()), core.ErrRoomNotInTree)
	assert.False(t, m.Contains(other.Start()))

	unsealed := core.NewMaze(1)
	root, _ := unsealed.AddRoom(nil, core.SideNone, core.Point{})
	assert.ErrorIs(t, core.Validate(unsealed, root), core.ErrMazeNotSealed)
	assert.NoError(t, core.CheckRooms(unsealed, root))
	assert.ErrorIs(t, core.CheckRooms(nil), core.ErrNilMaze)
	assert.ErrorIs(t, core.CheckRooms(unsealed, rs[0]), core.ErrRoomNotInTree)
}

func TestVisitedFlags(t *testing.T) {
	m, rs := buildVee(t)

	rs[1].SetVisited(true)
	rs[2].SetVisited(true)
	assert.True(t, rs[1].Visited())
	assert.False(t, rs[0].Visited())

	m.ClearVisited()
	for _, r := range m.Rooms() {
		assert.False(t, r.Visited())
	}
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "none", core.SideNone.String())
	assert.Equal(t, "left", core.SideLeft.String())
	assert.Equal(t, "right", core.SideRight.String())
	assert.Equal(t, "Side(9)", core.Side(9).String())
}
