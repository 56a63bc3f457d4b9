package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and room lookups.
var (
	// ErrNilMaze indicates that a nil *Maze was passed to an operation.
	ErrNilMaze = errors.New("core: maze is nil")

	// ErrNilRoom indicates that a nil *Room was passed to an operation.
	ErrNilRoom = errors.New("core: room is nil")

	// ErrRoomNotInTree indicates that a room does not belong to the maze it was queried against.
	ErrRoomNotInTree = errors.New("core: room not in tree")

	// ErrRootExists indicates a second parentless room was requested.
	ErrRootExists = errors.New("core: start room already exists")

	// ErrSlotTaken indicates the requested child slot of the parent is already filled.
	ErrSlotTaken = errors.New("core: child slot already taken")

	// ErrBadSide indicates an invalid Side for the requested operation.
	ErrBadSide = errors.New("core: invalid side")

	// ErrMazeSealed indicates a structural mutation after Seal.
	ErrMazeSealed = errors.New("core: maze is sealed")

	// ErrMazeNotSealed indicates that leaves and exit have not been fixed yet.
	ErrMazeNotSealed = errors.New("core: maze is not sealed")

	// ErrNotLeaf indicates that a room passed as leaf has at least one child.
	ErrNotLeaf = errors.New("core: room is not a leaf")

	// ErrExitNotLeaf indicates that the exit is not one of the sealed leaves.
	ErrExitNotLeaf = errors.New("core: exit is not a leaf")
)

// Side selects a child slot of a room.
type Side int

const (
	// SideNone is used for the start room, which hangs under no parent.
	SideNone Side = iota
	// SideLeft selects Room.Left.
	SideLeft
	// SideRight selects Room.Right.
	SideRight
)

// String returns "none", "left" or "right".
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Point is a spawn coordinate pair. The core never interprets it; it is
// carried through for the presentation layer.
type Point struct {
	X float64
	Y float64
}

// Room is a node of the maze tree.
//
// Links are read-only for callers; only the owning Maze sets them, through
// AddRoom. Visited is the single field the game loop is expected to change.
type Room struct {
	id    int
	owner *Maze

	back  *Room // parent, toward the start room
	left  *Room
	right *Room

	visited bool
	spawn   Point
}

// Maze owns a set of rooms forming a strict binary tree.
//
// rooms is indexed by Room.id; leaves keeps the pre-order produced by the
// builder; exit is one of leaves.
type Maze struct {
	rooms  []*Room
	start  *Room
	leaves []*Room
	exit   *Room
	sealed bool
}

// NewMaze creates an empty, unsealed maze. capacity is a hint for the
// expected room count; negative values are treated as zero.
// Complexity: O(capacity) for the preallocation.
func NewMaze(capacity int) *Maze {
	if capacity < 0 {
		capacity = 0
	}

	return &Maze{rooms: make([]*Room, 0, capacity)}
}
