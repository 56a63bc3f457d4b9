// Package analyzer answers the scoring and hint queries of a game over a
// sealed maze.
//
// All queries are read-only except for the Visited flags, which belong to
// the caller's game loop. They reject a nil maze, an unsealed maze and rooms
// that belong to another maze.
//
// Path lengths are counted in rooms, start and exit included: a one-room
// maze has ShortestPathLength 1. This matches the visited-room tally used by
// Score, so a player walking the optimal route scores exactly 100.
//
//   - ShortestPathLength / DepthOf:   back-pointer walk to the start room.
//   - ShortestPathLengthDijkstra:     the same value via dijkstra.Dijkstra.
//   - CountVisitedRooms:              LIFO walk tallying Visited flags.
//   - NextRoomToward / HintPath:      one-step and full hints via the lowest common ancestor.
//   - Depths:                         BFS depth (in edges) of every room.
//   - Score:                          floor(100 × minLen / visited).
package analyzer
