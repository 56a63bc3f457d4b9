package builder_test

import (
	"testing"

	"github.com/katalvlaran/mazetree/builder"
)

// BenchmarkBuildMaze_Iterative measures construction of a 10,000-room maze
// with the default explicit-stack strategy.
func BenchmarkBuildMaze_Iterative(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := builder.BuildMaze(10000, builder.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildMaze_Recursive measures the same workload with plain recursion.
func BenchmarkBuildMaze_Recursive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := builder.BuildMaze(10000, builder.WithSeed(int64(i)), builder.WithStrategy(builder.StrategyRecursive)); err != nil {
			b.Fatal(err)
		}
	}
}
