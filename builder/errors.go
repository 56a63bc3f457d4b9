// SPDX-License-Identifier: MIT
// Package: mazetree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.
//   • Runtime code never panics; validation panics are confined to WithX options.

package builder

import "errors"

// ErrInvalidSize indicates that BuildMaze was asked for fewer than one room.
// Usage: if errors.Is(err, ErrInvalidSize) { /* ask for a positive size */ }.
var ErrInvalidSize = errors.New("builder: size must be at least 1")

// ErrNeedRandSource indicates that no *rand.Rand was configured
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptyLeafSet indicates that a built tree produced no leaves. A tree with
// at least one room always has a leaf, so this signals a broken invariant.
var ErrEmptyLeafSet = errors.New("builder: tree has no leaf rooms")

// ErrConstructFailed indicates that linking rooms in the core maze failed.
var ErrConstructFailed = errors.New("builder: construction failed")
