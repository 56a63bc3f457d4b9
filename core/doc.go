// Package core defines the Room and Maze types shared by every mazetree
// package: a maze is a strict binary tree of rooms, each room linked to its
// parent (Back) and up to two children (Left, Right).
//
// A Maze owns every Room it creates, in insertion order. Room IDs are
// assigned by the owning maze starting at 0, so an ID is both a stable
// identity and an index into Maze.Rooms().
//
// Lifecycle:
//
//	m := core.NewMaze(n)
//	root, _ := m.AddRoom(nil, core.SideNone, core.Point{})  // start room
//	l, _ := m.AddRoom(root, core.SideLeft, core.Point{})
//	_ = m.Seal([]*core.Room{l}, l)                          // leaves + exit
//
// AddRoom enforces the tree invariant: exactly one root, a parent must belong
// to the same maze, and a child slot can be filled once. Seal fixes the leaf
// set and the exit; after that the structure is immutable and only the
// Visited flag of a room may change.
//
// Errors:
//
//	ErrNilMaze        – maze pointer is nil.
//	ErrNilRoom        – room pointer is nil.
//	ErrRoomNotInTree  – room belongs to another maze (or none).
//	ErrRootExists     – a second parentless room was requested.
//	ErrSlotTaken      – the parent's left/right slot is already filled.
//	ErrBadSide        – side is not SideLeft or SideRight for a child room.
//	ErrMazeSealed     – structural mutation after Seal.
//	ErrMazeNotSealed  – a query needs leaves/exit before Seal.
//	ErrNotLeaf        – Seal was given a room that has children.
//	ErrExitNotLeaf    – Seal was given an exit outside the leaf set.
//
// Concurrency: a Maze is built and queried from a single goroutine. Visited
// flags are written by the caller between queries, never concurrently.
package core
