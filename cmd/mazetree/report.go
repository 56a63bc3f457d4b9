package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazetree/analyzer"
	"github.com/katalvlaran/mazetree/core"
	"github.com/katalvlaran/mazetree/dfs"
	"github.com/katalvlaran/mazetree/internal/autoplay"
	"github.com/katalvlaran/mazetree/internal/config"
)

// report is the YAML document printed at the end of a run.
type report struct {
	Size             int    `yaml:"size"`
	Seed             int64  `yaml:"seed"`
	Strategy         string `yaml:"strategy"`
	Start            int    `yaml:"start"`
	Exit             int    `yaml:"exit"`
	Leaves           []int  `yaml:"leaves"`
	ShortestPath     int    `yaml:"shortest_path"`
	ShortestDijkstra int    `yaml:"shortest_path_dijkstra"`
	HintPath         []int  `yaml:"hint_path,flow"`
	Steps            int    `yaml:"steps"`
	Reached          bool   `yaml:"reached_exit"`
	Visited          int    `yaml:"visited"`
	Score            int    `yaml:"score"`
	Tree             string `yaml:"tree"`
}

func newReport(m *core.Maze, cfg *config.Config, res *autoplay.Result) (*report, error) {
	spd, err := analyzer.ShortestPathLengthDijkstra(m)
	if err != nil {
		return nil, err
	}
	hint, err := analyzer.HintPath(m, m.Start())
	if err != nil {
		return nil, err
	}

	return &report{
		Size:             m.Len(),
		Seed:             cfg.Maze.Seed,
		Strategy:         cfg.Maze.Strategy,
		Start:            m.Start().ID(),
		Exit:             m.Exit().ID(),
		Leaves:           roomIDs(m.Leaves()),
		ShortestPath:     res.ShortestPath,
		ShortestDijkstra: spd,
		HintPath:         roomIDs(hint),
		Steps:            res.Steps,
		Reached:          res.Reached,
		Visited:          res.Visited,
		Score:            res.Score,
		Tree:             renderTree(m),
	}, nil
}

func (r *report) write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return enc.Close()
}

func roomIDs(rs []*core.Room) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.ID()
	}

	return out
}

// renderTree draws one line per room in pre-order, indented by depth.
// Markers: S start, E exit, * visited.
func renderTree(m *core.Maze) string {
	var sb strings.Builder
	_, _ = dfs.DFS(m.Start(), dfs.WithOnVisit(func(r *core.Room, depth int) error {
		sb.WriteString(strings.Repeat("  ", depth))
		switch {
		case r.IsRoot():
			sb.WriteString("S ")
		case r.Back().Left() == r:
			sb.WriteString("L ")
		default:
			sb.WriteString("R ")
		}
		fmt.Fprintf(&sb, "%d", r.ID())
		if r == m.Exit() {
			sb.WriteString(" E")
		}
		if r.Visited() {
			sb.WriteString(" *")
		}
		sb.WriteByte('\n')
		return nil
	}))

	return sb.String()
}
