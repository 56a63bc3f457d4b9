// Package builder generates random binary-tree mazes.
//
// BuildMaze(size, opts...) partitions size into a random binary tree of
// exactly size rooms: each room draws leftSize uniformly from [0, size-1],
// gives rightSize = size-1-leftSize to its right subtree, and recurses left
// then right. A size of 0 produces no room. Afterwards the leaves are
// collected in pre-order (dfs.Leaves) and one of them is chosen uniformly at
// random as the exit; the maze is then sealed.
//
// Components:
//
//   - BuilderOption / builderConfig: functional options resolved once per call.
//   - WithSeed, WithRand: the random source. One of them is required.
//   - WithStrategy: StrategyIterative (default, explicit work stack) or
//     StrategyRecursive (textbook recursion). Both draw from the rng in the
//     same pre-order, so they build identical mazes for the same seed.
//   - WithSpawnFn: per-room spawn coordinate generator.
//
// Guarantees:
//
//   - Determinism: same size, seed, strategy and spawn function ⇒ identical maze.
//   - Option constructors panic on meaningless input (WithRand(nil),
//     WithSpawnFn(nil), unknown strategy); BuildMaze itself never panics and
//     returns sentinel errors wrapped with the method name.
//
// Errors:
//
//   - ErrInvalidSize     size < 1.
//   - ErrNeedRandSource  no rng configured.
//   - ErrEmptyLeafSet    a built tree had no leaves (unreachable for size ≥ 1).
//   - ErrConstructFailed a core mutation failed while linking rooms.
package builder
