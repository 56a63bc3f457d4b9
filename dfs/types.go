package dfs

import (
	"errors"

	"github.com/katalvlaran/mazetree/core"
)

// ErrStartNil is returned when a walk is started from a nil room.
var ErrStartNil = errors.New("dfs: start room is nil")

// Option configures optional behavior of DFS.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a room is first reached (pre-order),
	// with its depth in edges below the start room.
	// Returning an error aborts the walk with that error.
	OnVisit func(r *core.Room, depth int) error

	// MaxDepth, if non-negative, stops descending below the given depth.
	// A depth of 0 visits only the start room. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns DFSOptions with no hook and no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(r *core.Room, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits the walk to rooms at most limit edges below the start.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a walk. Maps are keyed by room ID.
type DFSResult struct {
	// Order records rooms in the sequence they were reached (pre-order).
	Order []*core.Room

	// Depth maps each room ID to its distance (#edges) from the start room.
	Depth map[int]int

	// Parent maps each room ID to the ID of the room it was reached from.
	// The start room does not appear in this map.
	Parent map[int]int
}
