// Command mazetree builds a random binary-tree maze, lets a headless player
// walk it and prints a YAML report with the analysis and the score.
//
// Usage:
//
//	mazetree [-config path] [-size n] [-seed s] [-strategy recursive|iterative]
//	         [-detour p] [-max-steps n] [-log-level L]
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/mazetree/builder"
	"github.com/katalvlaran/mazetree/internal/autoplay"
	"github.com/katalvlaran/mazetree/internal/config"
	"github.com/katalvlaran/mazetree/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Error("mazetree failed", "error", err)
		fmt.Fprintln(os.Stderr, "mazetree:", err)
		os.Exit(1)
	}
}

// run parses args, loads the configuration and writes the report to out.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mazetree", flag.ContinueOnError)
	configPath := fs.String("config", "mazetree.yaml", "path to the YAML configuration file")
	size := fs.Int("size", 0, "number of rooms")
	seed := fs.Int64("seed", 0, "generator seed (0 = from clock)")
	strategy := fs.String("strategy", "", "build strategy: iterative or recursive")
	detour := fs.Float64("detour", 0, "probability of ignoring the hint at each step")
	maxSteps := fs.Int("max-steps", 0, "maximum number of moves (0 = 100 × size)")
	logLevel := fs.String("log-level", "", "DEBUG, INFO, WARN or ERROR")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	// Flags given on the command line win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Maze.Size = *size
		case "seed":
			cfg.Maze.Seed = *seed
		case "strategy":
			cfg.Maze.Strategy = *strategy
		case "detour":
			cfg.Play.Detour = *detour
		case "max-steps":
			cfg.Play.MaxSteps = *maxSteps
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})
	cfg.Logging.ApplyEnv()

	if err = cfg.Validate(); err != nil {
		return err
	}
	if err = logger.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logger.Close()

	if cfg.Maze.Seed == 0 {
		cfg.Maze.Seed = time.Now().UnixNano()
	}
	strat, _ := builder.ParseStrategy(cfg.Maze.Strategy)
	cfg.Maze.Strategy = strat.String()

	logger.Info("building maze", "size", cfg.Maze.Size, "seed", cfg.Maze.Seed, "strategy", strat.String())
	m, err := builder.BuildMaze(cfg.Maze.Size,
		builder.WithSeed(cfg.Maze.Seed),
		builder.WithStrategy(strat),
		builder.WithSpawnFn(builder.GridSpawn(16, 12, 32)),
	)
	if err != nil {
		return err
	}

	res, err := autoplay.Play(m,
		autoplay.WithDetour(cfg.Play.Detour),
		autoplay.WithMaxSteps(cfg.StepLimit()),
		autoplay.WithRand(rand.New(rand.NewSource(cfg.Maze.Seed+1))),
	)
	if err != nil {
		return err
	}
	logger.Info("run finished", "steps", res.Steps, "visited", res.Visited, "score", res.Score)

	rep, err := newReport(m, cfg, res)
	if err != nil {
		return err
	}

	return rep.write(out)
}
