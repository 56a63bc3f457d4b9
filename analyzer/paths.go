package analyzer

import (
	"fmt"

	"github.com/katalvlaran/mazetree/bfs"
	"github.com/katalvlaran/mazetree/core"
	"github.com/katalvlaran/mazetree/dfs"
	"github.com/katalvlaran/mazetree/dijkstra"
)

// ShortestPathLength returns the number of rooms on the unique path from
// the start room to the exit, both included.
// Complexity: O(depth of exit).
func ShortestPathLength(m *core.Maze) (int, error) {
	if err := core.Validate(m); err != nil {
		return 0, fmt.Errorf("%s: %w", methodShortestPathLength, err)
	}

	return depthOf(m.Exit()), nil
}

// DepthOf counts the rooms from r back to the start room, both included.
// The start room has depth 1.
func DepthOf(m *core.Maze, r *core.Room) (int, error) {
	if err := core.Validate(m, r); err != nil {
		return 0, fmt.Errorf("%s: %w", methodDepthOf, err)
	}

	return depthOf(r), nil
}

func depthOf(r *core.Room) int {
	n := 0
	for ; r != nil; r = r.Back() {
		n++
	}

	return n
}

// ShortestPathLengthDijkstra computes ShortestPathLength with a unit-weight
// Dijkstra run over the symmetric room links. On a tree both must agree.
// Complexity: O(V log V).
func ShortestPathLengthDijkstra(m *core.Maze) (int, error) {
	if err := core.Validate(m); err != nil {
		return 0, fmt.Errorf("%s: %w", methodShortestPathLengthDijkstra, err)
	}

	dist, _, err := dijkstra.Dijkstra(m, dijkstra.Source(m.Start().ID()))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodShortestPathLengthDijkstra, err)
	}

	return int(dist[m.Exit().ID()]) + 1, nil
}

// CountVisitedRooms returns how many rooms have their Visited flag set.
// Complexity: O(V).
func CountVisitedRooms(m *core.Maze) (int, error) {
	if err := core.Validate(m); err != nil {
		return 0, fmt.Errorf("%s: %w", methodCountVisitedRooms, err)
	}

	n, err := dfs.CountVisited(m.Start())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodCountVisitedRooms, err)
	}

	return n, nil
}

// Depths returns the depth in edges of every room, keyed by room ID.
// Depths(m)[id]+1 == DepthOf(m, room id).
func Depths(m *core.Maze) (map[int]int, error) {
	if err := core.Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodDepths, err)
	}

	res, err := bfs.BFS(m, m.Start())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDepths, err)
	}

	return res.Depth, nil
}
