// Package dfs implements depth-first walks over a maze tree, descending only
// through child links (Left, Right) and never through Back.
//
// What:
//
//   - DFS: pre-order walk (current, left subtree, right subtree) driven by an
//     explicit stack, so deep trees never exhaust the goroutine stack. Supports
//     a pre-order hook and a depth limit.
//   - PreOrder / Leaves: thin helpers on top of DFS; Leaves is the builder's
//     leaf-collection step and returns leaves in pre-order.
//   - CountVisited: LIFO traversal with a seen-set keyed by room ID that
//     tallies rooms whose Visited flag is set. Each room is inspected exactly
//     once even if it is pushed more than once.
//
// Options:
//
//   - WithOnVisit(fn)     pre-order hook; an error aborts the walk.
//   - WithMaxDepth(limit) stop descending below limit (0 = start only).
//
// Complexity:
//
//   - Time O(V), Memory O(V) for the stack and result maps.
//
// Errors:
//
//   - ErrStartNil   the start room is nil.
//   - hook errors   wrapped with the room ID.
package dfs
