package analyzer

import (
	"fmt"

	"github.com/katalvlaran/mazetree/core"
)

// RootPath returns r followed by each ancestor up to the start room.
func RootPath(m *core.Maze, r *core.Room) ([]*core.Room, error) {
	if err := core.Validate(m, r); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRootPath, err)
	}

	return rootPath(r), nil
}

func rootPath(r *core.Room) []*core.Room {
	var path []*core.Room
	for ; r != nil; r = r.Back() {
		path = append(path, r)
	}

	return path
}

// LowestCommonAncestor returns the deepest room that has both a and b in
// its subtree. A room is its own ancestor.
func LowestCommonAncestor(m *core.Maze, a, b *core.Room) (*core.Room, error) {
	if err := core.Validate(m, a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLowestCommonAncestor, err)
	}

	lca, _, _ := splitAtAncestor(rootPath(a), rootPath(b))

	return lca, nil
}

// splitAtAncestor pops the shared tail of two root paths. It returns the
// last popped room (the LCA) and what remains of each path: the rooms
// strictly below the LCA, nearest first.
func splitAtAncestor(pa, pb []*core.Room) (*core.Room, []*core.Room, []*core.Room) {
	var lca *core.Room
	for len(pa) > 0 && len(pb) > 0 && pa[len(pa)-1] == pb[len(pb)-1] {
		lca = pa[len(pa)-1]
		pa = pa[:len(pa)-1]
		pb = pb[:len(pb)-1]
	}

	return lca, pa, pb
}

// NextRoomToward returns the neighbor of current that lies on the unique
// path to the exit, or current itself when it is the exit.
//
// Implementation:
//   - Stage 1: Build the root paths of current and exit.
//   - Stage 2: Pop their common tail; the last popped room is the LCA.
//   - Stage 3: If current is below the LCA, step back (the next entry of its
//     path, or the LCA itself). Otherwise current is the LCA, so step down
//     into the far end of the exit's remaining path.
//
// Complexity: O(depth).
func NextRoomToward(m *core.Maze, current *core.Room) (*core.Room, error) {
	if err := core.Validate(m, current); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNextRoomToward, err)
	}

	return nextRoomToward(current, m.Exit()), nil
}

func nextRoomToward(current, exit *core.Room) *core.Room {
	lca, curPath, exitPath := splitAtAncestor(rootPath(current), rootPath(exit))
	switch {
	case len(curPath) > 1:
		return curPath[1]
	case len(curPath) == 1:
		return lca
	case len(exitPath) > 0:
		return exitPath[len(exitPath)-1]
	default:
		return current
	}
}

// HintPath follows NextRoomToward from `from` until the exit and returns
// every room on the way, both ends included. From the start room its
// length equals ShortestPathLength.
// Complexity: O(len(path) × depth).
func HintPath(m *core.Maze, from *core.Room) ([]*core.Room, error) {
	if err := core.Validate(m, from); err != nil {
		return nil, fmt.Errorf("%s: %w", methodHintPath, err)
	}

	exit := m.Exit()
	path := []*core.Room{from}
	for cur := from; cur != exit; {
		cur = nextRoomToward(cur, exit)
		path = append(path, cur)
	}

	return path, nil
}
