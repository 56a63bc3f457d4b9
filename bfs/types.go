// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Maze.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazetree/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Undirected makes the search follow Back links too.
	Undirected bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// OnVisit is called when visiting a room. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(r *core.Room, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns children-only search, no depth limit, no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Undirected: false,
		MaxDepth:   0,
		OnVisit:    func(*core.Room, int) error { return nil },
	}
}

// WithUndirected follows Back links as well as child links.
func WithUndirected() Option {
	return func(o *BFSOptions) {
		o.Undirected = true
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback to run on visit; nil is ignored.
func WithOnVisit(fn func(r *core.Room, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a search, keyed by room ID:
//   - Order: rooms in visit sequence.
//   - Depth: distance (in edges) from the start room.
//   - Parent: predecessor in the BFS tree; the start room has none.
type BFSResult struct {
	Order  []*core.Room
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the room IDs from the start room to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to room %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Levels groups Order by depth: Levels()[d] lists the rooms at depth d in
// visit order.
func (r *BFSResult) Levels() [][]*core.Room {
	var levels [][]*core.Room
	for _, room := range r.Order {
		d := r.Depth[room.ID()]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], room)
	}

	return levels
}
