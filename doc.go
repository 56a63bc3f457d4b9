// Package mazetree generates random binary-tree mazes and scores a player's
// walk through them against the optimal route.
//
// A maze is a strict binary tree of rooms. The start room is the root, the
// exit is one of the leaves, and every room links back to its parent and
// forward to at most two children. Because there is exactly one path between
// any two rooms, the shortest route to the exit is the exit's depth.
//
// Everything lives in subpackages:
//
//	core/         Room and Maze types, construction (AddRoom, Seal) and validation
//	builder/      BuildMaze: random subtree sizes, iterative or recursive strategy
//	dfs/          pre-order walks, leaf collection, visited-room counting
//	bfs/          level-order search, children-only or undirected
//	dijkstra/     weighted shortest paths over the symmetric room links
//	analyzer/     shortest path length, next-room hints, hint paths, Score
//	cmd/mazetree  headless run that prints a YAML report
//
// Quick start:
//
//	m, err := builder.BuildMaze(50, builder.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, _ := analyzer.ShortestPathLength(m)
//	next, _ := analyzer.NextRoomToward(m, m.Start())
//
// The game loop that renders rooms and moves the player is not part of
// this module; it calls into analyzer and flips Room.SetVisited as the player
// enters rooms.
package mazetree
