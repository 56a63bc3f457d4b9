package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazetree/bfs"
	"github.com/katalvlaran/mazetree/builder"
	"github.com/katalvlaran/mazetree/core"
)

// buildSample creates the maze
//
//	    0
//	   / \
//	  1   4
//	 / \
//	2   3
func buildSample(t *testing.T) *core.Maze {
	t.Helper()
	m := core.NewMaze(5)
	r0, _ := m.AddRoom(nil, core.SideNone, core.Point{})
	r1, _ := m.AddRoom(r0, core.SideLeft, core.Point{})
	r2, _ := m.AddRoom(r1, core.SideLeft, core.Point{})
	r3, _ := m.AddRoom(r1, core.SideRight, core.Point{})
	r4, _ := m.AddRoom(r0, core.SideRight, core.Point{})
	require.NoError(t, m.Seal([]*core.Room{r2, r3, r4}, r3))

	return m
}

func ids(rs []*core.Room) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.ID()
	}
	return out
}

func TestBFS_Errors(t *testing.T) {
	m := buildSample(t)
	other := buildSample(t)

	_, err := bfs.BFS(nil, nil)
	assert.ErrorIs(t, err, core.ErrNilMaze)
	_, err = bfs.BFS(m, nil)
	assert.ErrorIs(t, err, core.ErrNilRoom)
	_, err = bfs.BFS(m, other.Start())
	assert.ErrorIs(t, err, core.ErrRoomNotInTree)
	_, err = bfs.BFS(m, m.Start(), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_LevelOrder(t *testing.T) {
	m := buildSample(t)

	res, err := bfs.BFS(m, m.Start())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 2, 3}, ids(res.Order))
	assert.Equal(t, map[int]int{0: 0, 1: 1, 4: 1, 2: 2, 3: 2}, res.Depth)
	assert.Equal(t, map[int]int{1: 0, 4: 0, 2: 1, 3: 1}, res.Parent)

	levels := res.Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, []int{0}, ids(levels[0]))
	assert.Equal(t, []int{1, 4}, ids(levels[1]))
	assert.Equal(t, []int{2, 3}, ids(levels[2]))
}

func TestBFS_ChildrenOnlyFromSubtree(t *testing.T) {
	m := buildSample(t)
	r1, _ := m.Room(1)

	res, err := bfs.BFS(m, r1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(res.Order))
}

func TestBFS_Undirected(t *testing.T) {
	m := buildSample(t)
	r3, _ := m.Room(3)

	res, err := bfs.BFS(m, r3, bfs.WithUndirected())
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
	assert.Equal(t, 3, res.Depth[4], "3 → 1 → 0 → 4")
	assert.Equal(t, 2, res.Depth[2], "3 → 1 → 2")

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 0, 4}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	m := buildSample(t)

	res, err := bfs.BFS(m, m.Start(), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, ids(res.Order))

	_, err = res.PathTo(3)
	assert.Error(t, err)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	m := buildSample(t)
	stop := errors.New("stop")

	res, err := bfs.BFS(m, m.Start(), bfs.WithOnVisit(func(r *core.Room, depth int) error {
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, ids(res.Order))
}

func TestBFS_CoversBuiltMaze(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		m, err := builder.BuildMaze(60, builder.WithSeed(seed))
		require.NoError(t, err)

		res, err := bfs.BFS(m, m.Start())
		require.NoError(t, err)
		assert.Len(t, res.Order, 60)

		// Depth from the root equals the number of Back steps.
		for _, r := range m.Rooms() {
			steps := 0
			for q := r; q.Back() != nil; q = q.Back() {
				steps++
			}
			assert.Equal(t, steps, res.Depth[r.ID()])
		}
	}
}
