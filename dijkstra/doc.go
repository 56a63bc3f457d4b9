// Package dijkstra computes weighted shortest paths between rooms of a maze.
//
// A maze is a tree, so every pair of rooms is joined by exactly one simple
// path; Dijkstra is used as an independent cross-check of the walk-based
// analyzer and as the hook for non-uniform link costs (WithWeightFn).
//
// API reference:
//
//	func Dijkstra(
//	    m *core.Maze,
//	    opts ...Option,
//	) (dist map[int]int64, prev map[int]int, err error)
//
//	  - opts:
//	      • Source(int):            required, the starting room ID.
//	      • WithReturnPath():       if set, returns a predecessor map; otherwise prev == nil.
//	      • WithMaxDistance(int64): explore only rooms with distance ≤ given value.
//	      • WithWeightFn(fn):       link cost; default UnitWeight.
//	  - dist: dist[v] = minimal distance from Source to v, or math.MaxInt64 if not reached.
//	  - prev: prev[v] = predecessor of v, or NoPredecessor for the source and
//	    rooms that were not reached. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - Dijkstra only reads links; it never touches Visited flags.
package dijkstra
