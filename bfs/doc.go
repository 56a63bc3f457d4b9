// Package bfs implements breadth-first (level-order) search over a maze.
//
// By default the search follows child links only, so from the start room it
// yields rooms level by level with their depth in edges. WithUndirected also
// follows Back links, which turns the search into a hop-count shortest path
// from any room to every other room of the tree.
//
// Options:
//
//   - WithUndirected()     follow Back as well as Left/Right.
//   - WithMaxDepth(d)      stop at depth d (d > 0), 0 = no limit, d < 0 → ErrOptionViolation.
//   - WithOnVisit(fn)      per-room hook; an error aborts the search.
//
// Complexity: Time O(V), Memory O(V).
//
// Errors:
//
//   - core.ErrNilMaze, core.ErrNilRoom, core.ErrRoomNotInTree (wrapped).
//   - ErrOptionViolation for invalid options.
//   - hook errors, wrapped with the room ID.
package bfs
