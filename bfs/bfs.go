package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazetree/core"
)

// queueItem pairs a room with its BFS depth.
type queueItem struct {
	room  *core.Room
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on m starting from start.
// The maze does not need to be sealed; start must belong to it.
func BFS(m *core.Maze, start *core.Room, opts ...Option) (*BFSResult, error) {
	if err := core.CheckRooms(m, start); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := m.Len()
	w := &walker{
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]*core.Room, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks r visited at depth d, records its parent and queues it.
func (w *walker) enqueue(r *core.Room, d int, parent *core.Room) {
	w.visited[r.ID()] = true
	w.res.Depth[r.ID()] = d
	if parent != nil {
		w.res.Parent[r.ID()] = parent.ID()
	}
	w.queue = append(w.queue, queueItem{room: r, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	var item queueItem
	for len(w.queue) > 0 {
		item = w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.room)
		if err := w.opts.OnVisit(item.room, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at room %d: %w", item.room.ID(), err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.neighbors(item.room) {
			if !w.visited[nbr.ID()] {
				w.enqueue(nbr, next, item.room)
			}
		}
	}

	return nil
}

// neighbors returns the rooms reachable in one step under the current mode.
func (w *walker) neighbors(r *core.Room) []*core.Room {
	if w.opts.Undirected {
		return r.Neighbors()
	}

	return r.Children()
}
