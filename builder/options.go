// SPDX-License-Identifier: MIT
// Package: mazetree/builder
//
// options.go - functional options for BuildMaze.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazetree/core"
)

// Strategy selects how the tree is constructed.
type Strategy int

const (
	// StrategyIterative builds the tree with an explicit work stack.
	StrategyIterative Strategy = iota
	// StrategyRecursive builds the tree with plain recursion (depth ≤ size).
	StrategyRecursive
)

// String returns "iterative" or "recursive".
func (s Strategy) String() string {
	switch s {
	case StrategyIterative:
		return "iterative"
	case StrategyRecursive:
		return "recursive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "iterative" / "recursive" (and "" as the default) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "iterative":
		return StrategyIterative, nil
	case "recursive":
		return StrategyRecursive, nil
	default:
		return 0, fmt.Errorf("builder: unknown strategy %q", s)
	}
}

// SpawnFn produces the spawn coordinate of the room with the given ID.
// It may draw from rng; doing so changes the tree shape for a given seed,
// since room sizes and spawn points share one stream.
type SpawnFn func(rng *rand.Rand, id int) core.Point

// BuilderOption customizes BuildMaze by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStrategy selects the construction strategy. Panics on unknown values.
func WithStrategy(s Strategy) BuilderOption {
	if s != StrategyIterative && s != StrategyRecursive {
		panic(fmt.Sprintf("builder: WithStrategy(%d)", int(s)))
	}
	return func(c *builderConfig) {
		c.strategy = s
	}
}

// WithSpawnFn overrides the spawn coordinate generator. Panics on nil.
func WithSpawnFn(fn SpawnFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSpawnFn(nil)")
	}
	return func(c *builderConfig) {
		c.spawnFn = fn
	}
}

// GridSpawn returns a SpawnFn that places each room at a uniformly random
// cell of a cols×rows grid, scaled by cell, centered in the cell. It draws
// two numbers from rng per room.
func GridSpawn(cols, rows int, cell float64) SpawnFn {
	if cols < 1 || rows < 1 || cell <= 0 {
		panic("builder: GridSpawn(cols<1 || rows<1 || cell<=0)")
	}
	return func(rng *rand.Rand, _ int) core.Point {
		return core.Point{
			X: (float64(rng.Intn(cols)) + 0.5) * cell,
			Y: (float64(rng.Intn(rows)) + 0.5) * cell,
		}
	}
}
