// File: methods_room.go
// Role: read-only Room accessors plus the Visited flag.
//
// Determinism:
//   - Neighbors() always yields back, left, right (absent links skipped).
package core

// ID returns the identity assigned by the owning maze (insertion index).
func (r *Room) ID() int { return r.id }

// Back returns the parent room, or nil for the start room.
func (r *Room) Back() *Room { return r.back }

// Left returns the left child, or nil.
func (r *Room) Left() *Room { return r.left }

// Right returns the right child, or nil.
func (r *Room) Right() *Room { return r.right }

// Child returns the child on the given side; SideNone and unknown sides yield nil.
func (r *Room) Child(s Side) *Room {
	switch s {
	case SideLeft:
		return r.left
	case SideRight:
		return r.right
	default:
		return nil
	}
}

// Spawn returns the presentation coordinate attached at creation.
func (r *Room) Spawn() Point { return r.spawn }

// Visited reports whether the player has entered this room.
func (r *Room) Visited() bool { return r.visited }

// SetVisited records the player's presence. It is the only mutation allowed
// on a sealed maze.
func (r *Room) SetVisited(v bool) { r.visited = v }

// IsLeaf reports whether the room has neither a left nor a right child.
func (r *Room) IsLeaf() bool { return r.left == nil && r.right == nil }

// IsRoot reports whether the room has no parent.
func (r *Room) IsRoot() bool { return r.back == nil }

// Neighbors returns the rooms directly linked to r, treating every link as
// bidirectional: parent first, then left, then right.
// Complexity: O(1).
func (r *Room) Neighbors() []*Room {
	out := make([]*Room, 0, 3)
	if r.back != nil {
		out = append(out, r.back)
	}
	if r.left != nil {
		out = append(out, r.left)
	}
	if r.right != nil {
		out = append(out, r.right)
	}

	return out
}

// Children returns the non-nil children of r, left before right.
func (r *Room) Children() []*Room {
	out := make([]*Room, 0, 2)
	if r.left != nil {
		out = append(out, r.left)
	}
	if r.right != nil {
		out = append(out, r.right)
	}

	return out
}
