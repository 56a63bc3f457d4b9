// SPDX-License-Identifier: MIT
// Package: mazetree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil            (BuildMaze rejects it with ErrNeedRandSource)
//   • strategy  = StrategyIterative
//   • spawnFn   = zeroSpawn      (never touches rng)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazetree/core"
)

// builderConfig aggregates all knobs used by the constructions.
// It is passed by value.
type builderConfig struct {
	rng      *rand.Rand
	strategy Strategy
	spawnFn  SpawnFn
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		strategy: StrategyIterative,
		spawnFn:  zeroSpawn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// zeroSpawn places every room at the origin.
func zeroSpawn(*rand.Rand, int) core.Point { return core.Point{} }
