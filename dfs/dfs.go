package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazetree/core"
)

// frame is one pending room on the explicit walk stack.
type frame struct {
	room   *core.Room
	depth  int
	parent *core.Room
}

// dfsWalker encapsulates state during a walk.
type dfsWalker struct {
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS walks the subtree rooted at start in pre-order: the room itself, then
// its left subtree, then its right subtree.
// Returns the partial result together with the error if a hook aborts.
func DFS(start *core.Room, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if start == nil {
		return nil, ErrStartNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	w := &dfsWalker{
		opts: dopts,
		res: &DFSResult{
			Order:  make([]*core.Room, 0),
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
		stack: []frame{{room: start}},
	}

	return w.res, w.run()
}

// run pops frames until the stack drains. Children are pushed right first so
// the left child is popped first, which keeps the recursive pre-order.
func (w *dfsWalker) run() error {
	var f frame
	for len(w.stack) > 0 {
		f = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Depth limit: skip rooms below the cut
		if w.opts.MaxDepth >= 0 && f.depth > w.opts.MaxDepth {
			continue
		}

		w.res.Order = append(w.res.Order, f.room)
		w.res.Depth[f.room.ID()] = f.depth
		if f.parent != nil {
			w.res.Parent[f.room.ID()] = f.parent.ID()
		}

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.room, f.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for room %d: %w", f.room.ID(), err)
			}
		}

		if r := f.room.Right(); r != nil {
			w.stack = append(w.stack, frame{room: r, depth: f.depth + 1, parent: f.room})
		}
		if l := f.room.Left(); l != nil {
			w.stack = append(w.stack, frame{room: l, depth: f.depth + 1, parent: f.room})
		}
	}

	return nil
}

// PreOrder returns every room of the subtree rooted at start, current room
// first, then the left subtree, then the right subtree. nil start yields nil.
func PreOrder(start *core.Room) []*core.Room {
	res, err := DFS(start)
	if err != nil {
		return nil
	}

	return res.Order
}

// Leaves returns the rooms of the subtree rooted at start that have neither
// a left nor a right child, in pre-order. nil start yields an empty slice.
// Complexity: O(V).
func Leaves(start *core.Room) []*core.Room {
	leaves := make([]*core.Room, 0)
	if start == nil {
		return leaves
	}

	// The hook never fails, so the error is always nil.
	_, _ = DFS(start, WithOnVisit(func(r *core.Room, _ int) error {
		if r.IsLeaf() {
			leaves = append(leaves, r)
		}
		return nil
	}))

	return leaves
}
