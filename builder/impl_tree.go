// SPDX-License-Identifier: MIT
// Package: mazetree/builder
//
// impl_tree.go - the two tree constructions behind BuildMaze.
//
// Canonical model:
//   - For a subtree of n ≥ 1 rooms: draw leftSize ~ U[0, n-1], create the
//     subtree root, build leftSize rooms on its left, then n-1-leftSize on
//     its right. n == 0 creates nothing.
//
// Determinism:
//   - Both constructions visit subtrees in the same pre-order, so rng draws
//     (and room IDs) happen in the same sequence.

package builder

import "github.com/katalvlaran/mazetree/core"

// recursive builds size rooms under parent on the given side.
func (b *mazeBuild) recursive(parent *core.Room, side core.Side, size int) error {
	if size == 0 {
		return nil
	}

	leftSize, rightSize := b.splitSize(size)
	room, err := b.addRoom(parent, side)
	if err != nil {
		return err
	}
	if err = b.recursive(room, core.SideLeft, leftSize); err != nil {
		return err
	}

	return b.recursive(room, core.SideRight, rightSize)
}

// buildTask is one pending subtree on the iterative work stack.
type buildTask struct {
	parent *core.Room
	side   core.Side
	size   int
}

// iterative builds size rooms with an explicit LIFO of pending subtrees.
// The right task is pushed before the left one so the left subtree is
// completed first, matching the recursive order.
func (b *mazeBuild) iterative(size int) error {
	stack := make([]buildTask, 0, 16)
	stack = append(stack, buildTask{parent: nil, side: core.SideNone, size: size})

	var t buildTask
	for len(stack) > 0 {
		t = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.size == 0 {
			continue
		}

		leftSize, rightSize := b.splitSize(t.size)
		room, err := b.addRoom(t.parent, t.side)
		if err != nil {
			return err
		}
		stack = append(stack,
			buildTask{parent: room, side: core.SideRight, size: rightSize},
			buildTask{parent: room, side: core.SideLeft, size: leftSize},
		)
	}

	return nil
}
