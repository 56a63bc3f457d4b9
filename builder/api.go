// SPDX-License-Identifier: MIT
// Package: mazetree/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMaze(size, opts...). Resolves cfg, builds the
//     tree with the selected strategy, collects leaves, picks the exit, seals.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same size/options/seed ⇒ identical maze.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mazetree/core"
	"github.com/katalvlaran/mazetree/dfs"
)

const (
	methodBuildMaze = "BuildMaze"
	minMazeSize     = 1
)

// BuildMaze generates a sealed maze of exactly size rooms.
//
// Validation order:
//  1. size ≥ 1 (ErrInvalidSize).
//  2. rng configured (ErrNeedRandSource).
//
// Then the tree is built, leaves are collected in pre-order and the exit is
// drawn uniformly from them (ErrEmptyLeafSet if none).
//
// Complexity: O(size) time; O(size) extra space for the iterative work stack
// or O(depth) call frames for the recursive strategy.
func BuildMaze(size int, opts ...BuilderOption) (*core.Maze, error) {
	if size < minMazeSize {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", methodBuildMaze, size, minMazeSize, ErrInvalidSize)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodBuildMaze, ErrNeedRandSource)
	}

	b := &mazeBuild{cfg: cfg, maze: core.NewMaze(size)}

	var err error
	switch cfg.strategy {
	case StrategyRecursive:
		err = b.recursive(nil, core.SideNone, size)
	default:
		err = b.iterative(size)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildMaze, err)
	}

	leaves := dfs.Leaves(b.maze.Start())
	exit, err := pickExit(leaves, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildMaze, err)
	}
	if err = b.maze.Seal(leaves, exit); err != nil {
		return nil, fmt.Errorf("%s: Seal: %v: %w", methodBuildMaze, err, ErrConstructFailed)
	}

	return b.maze, nil
}

// pickExit draws the exit uniformly from leaves.
func pickExit(leaves []*core.Room, cfg builderConfig) (*core.Room, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeafSet
	}

	return leaves[cfg.rng.Intn(len(leaves))], nil
}

// mazeBuild carries the state of one BuildMaze call.
type mazeBuild struct {
	cfg  builderConfig
	maze *core.Maze
}

// splitSize draws the left subtree size for a subtree of size rooms
// (size ≥ 1); the right subtree gets the remainder.
func (b *mazeBuild) splitSize(size int) (left, right int) {
	left = b.cfg.rng.Intn(size)

	return left, size - 1 - left
}

// addRoom creates the next room under parent. The room ID is known before
// creation (it equals the current room count), so spawnFn sees it.
func (b *mazeBuild) addRoom(parent *core.Room, side core.Side) (*core.Room, error) {
	spawn := b.cfg.spawnFn(b.cfg.rng, b.maze.Len())
	r, err := b.maze.AddRoom(parent, side, spawn)
	if err != nil {
		return nil, fmt.Errorf("AddRoom: %v: %w", err, ErrConstructFailed)
	}

	return r, nil
}
