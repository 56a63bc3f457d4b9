// File: methods_maze.go
// Role: Maze construction (AddRoom, Seal) and read-only views.
//
// Determinism:
//   - Rooms() and Leaves() return copies in insertion / sealing order.
//
// Policy:
//   - Mutators validate first and change nothing on error.
//   - Views never expose internal slices.
package core

import "fmt"

// AddRoom creates a room owned by m and links it under parent on side s.
//
// Implementation:
//   - Stage 1: Reject mutation of a sealed maze (ErrMazeSealed).
//   - Stage 2: parent == nil creates the start room; only one is allowed (ErrRootExists).
//   - Stage 3: Otherwise validate ownership of parent (ErrRoomNotInTree), the side
//     (ErrBadSide) and that the slot is free (ErrSlotTaken), then link both ways.
//
// The new room's ID equals the number of rooms created before it, so the
// counter lives in the maze rather than in a process-wide variable.
//
// Complexity: O(1) amortized.
func (m *Maze) AddRoom(parent *Room, s Side, spawn Point) (*Room, error) {
	if m.sealed {
		return nil, fmt.Errorf("AddRoom: %w", ErrMazeSealed)
	}

	if parent == nil {
		if m.start != nil {
			return nil, fmt.Errorf("AddRoom: start=%d: %w", m.start.id, ErrRootExists)
		}
		r := m.newRoom(spawn)
		m.start = r

		return r, nil
	}

	if !m.Contains(parent) {
		return nil, fmt.Errorf("AddRoom: parent=%d: %w", parent.id, ErrRoomNotInTree)
	}
	if s != SideLeft && s != SideRight {
		return nil, fmt.Errorf("AddRoom: side=%s: %w", s, ErrBadSide)
	}
	if parent.Child(s) != nil {
		return nil, fmt.Errorf("AddRoom: parent=%d side=%s: %w", parent.id, s, ErrSlotTaken)
	}

	r := m.newRoom(spawn)
	r.back = parent
	if s == SideLeft {
		parent.left = r
	} else {
		parent.right = r
	}

	return r, nil
}

// newRoom allocates the next room and registers it in insertion order.
func (m *Maze) newRoom(spawn Point) *Room {
	r := &Room{id: len(m.rooms), owner: m, spawn: spawn}
	m.rooms = append(m.rooms, r)

	return r
}

// Seal fixes the leaf set and the exit room and freezes the structure.
//
// Every leaf must belong to m and have no children; exit must be one of the
// leaves. On error the maze stays unsealed and unchanged.
// Complexity: O(len(leaves)).
func (m *Maze) Seal(leaves []*Room, exit *Room) error {
	if m.sealed {
		return fmt.Errorf("Seal: %w", ErrMazeSealed)
	}
	if exit == nil {
		return fmt.Errorf("Seal: exit: %w", ErrNilRoom)
	}

	found := false
	for i, r := range leaves {
		if r == nil {
			return fmt.Errorf("Seal: leaves[%d]: %w", i, ErrNilRoom)
		}
		if !m.Contains(r) {
			return fmt.Errorf("Seal: leaves[%d]=%d: %w", i, r.id, ErrRoomNotInTree)
		}
		if !r.IsLeaf() {
			return fmt.Errorf("Seal: leaves[%d]=%d: %w", i, r.id, ErrNotLeaf)
		}
		if r == exit {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("Seal: exit=%d: %w", exit.id, ErrExitNotLeaf)
	}

	m.leaves = append(make([]*Room, 0, len(leaves)), leaves...)
	m.exit = exit
	m.sealed = true

	return nil
}

// Contains reports whether r was created by m.
// Complexity: O(1).
func (m *Maze) Contains(r *Room) bool {
	if m == nil || r == nil || r.owner != m {
		return false
	}

	return r.id >= 0 && r.id < len(m.rooms) && m.rooms[r.id] == r
}

// Sealed reports whether Seal succeeded.
func (m *Maze) Sealed() bool { return m.sealed }

// Len returns the number of rooms.
func (m *Maze) Len() int { return len(m.rooms) }

// Rooms returns all rooms in insertion order (a copy).
func (m *Maze) Rooms() []*Room {
	return append(make([]*Room, 0, len(m.rooms)), m.rooms...)
}

// Room returns the room with the given ID.
func (m *Maze) Room(id int) (*Room, error) {
	if id < 0 || id >= len(m.rooms) {
		return nil, fmt.Errorf("Room(%d): %w", id, ErrRoomNotInTree)
	}

	return m.rooms[id], nil
}

// Start returns the tree root, or nil for an empty maze.
func (m *Maze) Start() *Room { return m.start }

// Exit returns the sealed exit room, or nil before Seal.
func (m *Maze) Exit() *Room { return m.exit }

// Leaves returns the sealed leaf rooms (a copy), or nil before Seal.
func (m *Maze) Leaves() []*Room {
	if !m.sealed {
		return nil
	}

	return append(make([]*Room, 0, len(m.leaves)), m.leaves...)
}

// ClearVisited resets every Visited flag, for replaying the same layout.
// Complexity: O(V).
func (m *Maze) ClearVisited() {
	for _, r := range m.rooms {
		r.visited = false
	}
}

// Validate checks that m is non-nil, sealed, and, when rooms are given,
// that each of them belongs to m. It is the common admission check for the
// query packages.
// Complexity: O(len(rooms)).
func Validate(m *Maze, rooms ...*Room) error {
	if m == nil {
		return ErrNilMaze
	}
	if !m.sealed {
		return ErrMazeNotSealed
	}

	return CheckRooms(m, rooms...)
}

// CheckRooms is Validate without the seal requirement, for walks that make
// sense on a maze still under construction.
func CheckRooms(m *Maze, rooms ...*Room) error {
	if m == nil {
		return ErrNilMaze
	}
	for _, r := range rooms {
		if r == nil {
			return ErrNilRoom
		}
		if !m.Contains(r) {
			return fmt.Errorf("room %d: %w", r.id, ErrRoomNotInTree)
		}
	}

	return nil
}
