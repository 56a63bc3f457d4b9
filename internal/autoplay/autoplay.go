// Package autoplay drives a headless player through a sealed maze.
//
// The player starts in the start room, marks every room it enters as
// visited and, at each step, either follows the analyzer's hint or, with
// probability Detour, takes a uniformly random link. The run ends at the
// exit or after MaxSteps moves.
package autoplay

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazetree/analyzer"
	"github.com/katalvlaran/mazetree/core"
	"github.com/katalvlaran/mazetree/internal/logger"
)

// ErrBadDetour is returned for a detour probability outside [0,1].
var ErrBadDetour = errors.New("autoplay: detour must be within [0,1]")

// ErrBadMaxSteps is returned for a negative step limit.
var ErrBadMaxSteps = errors.New("autoplay: max steps must not be negative")

// Option configures a Play run.
type Option func(*options)

type options struct {
	detour   float64
	maxSteps int
	rng      *rand.Rand
}

// WithDetour sets the probability of ignoring the hint at each step.
func WithDetour(p float64) Option {
	return func(o *options) { o.detour = p }
}

// WithMaxSteps bounds the number of moves. 0 means 100 × room count.
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

// WithRand sets the random source used for detours; nil is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// Result summarizes one run.
type Result struct {
	// Route lists the room IDs in the order they were entered, start first.
	Route []int
	// Steps is the number of moves, len(Route)-1.
	Steps int
	// Reached reports whether the player stood on the exit at the end.
	Reached bool
	// Visited is the number of distinct rooms entered.
	Visited int
	// ShortestPath is analyzer.ShortestPathLength of the maze.
	ShortestPath int
	// Score is analyzer.Score(ShortestPath, Visited).
	Score int
}

// Play resets the Visited flags of m and runs one game on it.
func Play(m *core.Maze, opts ...Option) (*Result, error) {
	o := options{detour: 0, maxSteps: 0, rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(&o)
	}
	if o.detour < 0 || o.detour > 1 {
		return nil, fmt.Errorf("Play: detour=%g: %w", o.detour, ErrBadDetour)
	}
	if o.maxSteps < 0 {
		return nil, fmt.Errorf("Play: maxSteps=%d: %w", o.maxSteps, ErrBadMaxSteps)
	}
	if err := core.Validate(m); err != nil {
		return nil, fmt.Errorf("Play: %w", err)
	}
	if o.maxSteps == 0 {
		o.maxSteps = 100 * m.Len()
	}

	m.ClearVisited()
	cur := m.Start()
	cur.SetVisited(true)
	res := &Result{Route: []int{cur.ID()}}

	for cur != m.Exit() && res.Steps < o.maxSteps {
		next, err := step(m, cur, o)
		if err != nil {
			return nil, fmt.Errorf("Play: %w", err)
		}
		logger.Debug("move", "from", cur.ID(), "to", next.ID(), "step", res.Steps+1)

		cur = next
		cur.SetVisited(true)
		res.Route = append(res.Route, cur.ID())
		res.Steps++
	}
	res.Reached = cur == m.Exit()

	var err error
	if res.Visited, err = analyzer.CountVisitedRooms(m); err != nil {
		return nil, fmt.Errorf("Play: %w", err)
	}
	if res.ShortestPath, err = analyzer.ShortestPathLength(m); err != nil {
		return nil, fmt.Errorf("Play: %w", err)
	}
	if res.Score, err = analyzer.Score(res.ShortestPath, res.Visited); err != nil {
		return nil, fmt.Errorf("Play: %w", err)
	}
	if !res.Reached {
		logger.Warning("step limit reached before the exit", "steps", res.Steps, "room", cur.ID())
	}

	return res, nil
}

// step picks the next room: a random neighbor with probability detour,
// otherwise the hinted one.
func step(m *core.Maze, cur *core.Room, o options) (*core.Room, error) {
	if o.detour > 0 && o.rng.Float64() < o.detour {
		nbrs := cur.Neighbors()
		if len(nbrs) > 0 {
			return nbrs[o.rng.Intn(len(nbrs))], nil
		}
	}

	return analyzer.NextRoomToward(m, cur)
}
