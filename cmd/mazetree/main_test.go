package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazetree/builder"
)

func TestRun_FlagsProduceReport(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{
		"-config", filepath.Join(t.TempDir(), "missing.yaml"),
		"-size", "40",
		"-seed", "8",
		"-strategy", "recursive",
		"-log-level", "ERROR",
	}, &out)
	require.NoError(t, err)

	var rep report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, 40, rep.Size)
	assert.Equal(t, int64(8), rep.Seed)
	assert.Equal(t, "recursive", rep.Strategy)
	assert.Equal(t, 0, rep.Start)
	assert.Equal(t, rep.ShortestPath, rep.ShortestDijkstra)
	assert.Len(t, rep.HintPath, rep.ShortestPath)
	assert.Equal(t, rep.Exit, rep.HintPath[len(rep.HintPath)-1])
	assert.Contains(t, rep.Leaves, rep.Exit)
	assert.True(t, rep.Reached)
	assert.Equal(t, rep.ShortestPath, rep.Visited)
	assert.Equal(t, 100, rep.Score)
	assert.Len(t, strings.Split(strings.TrimSpace(rep.Tree), "\n"), 40)
	assert.True(t, strings.HasPrefix(rep.Tree, "S 0"))
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazetree.yaml")
	content := `
maze:
  size: 12
  seed: 99
play:
  detour: 0.5
logging:
  level: ERROR
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-size", "30"}, &out))

	var rep report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, 30, rep.Size)
	assert.Equal(t, int64(99), rep.Seed)
	assert.Equal(t, "iterative", rep.Strategy)
	assert.GreaterOrEqual(t, rep.Visited, rep.ShortestPath)
}

func TestRun_InvalidInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	var out bytes.Buffer
	assert.Error(t, run([]string{"-config", missing, "-size", "0"}, &out))
	assert.Error(t, run([]string{"-config", missing, "-strategy", "spiral"}, &out))
	assert.Error(t, run([]string{"-config", missing, "-detour", "2"}, &out))
	assert.Error(t, run([]string{"-no-such-flag"}, &out))
	assert.Empty(t, out.String())
}

func TestRenderTree(t *testing.T) {
	m, err := builder.BuildMaze(3, builder.WithSeed(1))
	require.NoError(t, err)
	m.Start().SetVisited(true)

	lines := strings.Split(strings.TrimSpace(renderTree(m)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "S 0 *", lines[0])
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, "  "), l)
	}
	assert.Contains(t, renderTree(m), " E")
}
