// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a maze.
//
// Every link of the tree is walked in both directions (back, left, right).
// Edge costs come from a WeightFn; the default charges 1 per link, which
// turns distances into hop counts.
//
// Complexity:
//
//	– Time:  O(V log V)   a tree has V-1 links, each relaxed twice.
//	– Space: O(V)         distance and predecessor maps plus the lazy heap.
//
// Options:
//
//	– Source:       ID of the starting room (required).
//	– ReturnPath:   if true, return the predecessor map for path reconstruction.
//	– MaxDistance:  optional cap on distances to explore; rooms beyond are skipped.
//	– WeightFn:     cost of stepping from one room to a neighbor.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no source room was given.
//	– ErrNilMaze         if the provided maze pointer is nil.
//	– ErrVertexNotFound  if the source room does not exist in the maze.
//	– ErrNegativeWeight  if the WeightFn returns a negative cost.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in the option constructor).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/mazetree/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source room ID was provided.
	ErrNoSource = errors.New("dijkstra: source room not set")

	// ErrNilMaze indicates that a nil *core.Maze was passed to Dijkstra.
	ErrNilMaze = errors.New("dijkstra: maze is nil")

	// ErrVertexNotFound indicates that the source room does not exist in the maze.
	ErrVertexNotFound = errors.New("dijkstra: source room not found in maze")

	// ErrNegativeWeight indicates that the weight function produced a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoPredecessor marks rooms without a predecessor in the prev map: the
// source itself and rooms that were never reached.
const NoPredecessor = -1

// WeightFn returns the cost of moving from one room to an adjacent one.
type WeightFn func(from, to *core.Room) int64

// UnitWeight charges 1 per link.
func UnitWeight(_, _ *core.Room) int64 { return 1 }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting room ID; negative means unset.
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – rooms farther than this are not explored. Default math.MaxInt64.
// Weight      – link cost function. Default UnitWeight.
type Options struct {
	Source      int
	ReturnPath  bool
	MaxDistance int64
	Weight      WeightFn
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting room ID.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithWeightFn replaces the unit link cost; nil is ignored.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// DefaultOptions returns an Options struct with no source, no path map,
// no distance cap and unit weights.
func DefaultOptions() Options {
	return Options{
		Source:      NoPredecessor,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		Weight:      UnitWeight,
	}
}
