// Package dijkstra implements Dijkstra's shortest-path algorithm on a maze.
//
// Notes on implementation choices:
//
//   - Links are symmetric: from any room we may step back, left or right.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mazetree/core"
)

// Dijkstra computes shortest distances from the source room (Options.Source)
// to every room of m.
//
// Returns:
//
//   - dist: map from room ID to minimum distance (math.MaxInt64 if not reached).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The source and unreached rooms map to NoPredecessor.
//   - err:  error if inputs are invalid or a negative weight is produced.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. m must be non-nil (ErrNilMaze).
//  3. m must contain Source (ErrVertexNotFound).
//
// The maze does not need to be sealed.
func Dijkstra(m *core.Maze, opts ...Option) (map[int]int64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if m == nil {
		return nil, nil, ErrNilMaze
	}
	src, err := m.Room(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	V := m.Len()
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make(map[int]int64, V),
		prev:    make(map[int]int, V),
		visited: make(map[int]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init(src)
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *core.Maze
	options Options
	dist    map[int]int64 // room ID → best distance from Source
	prev    map[int]int   // room ID → predecessor on the shortest path
	visited map[int]bool  // finalized rooms
	pq      nodePQ
}

// init sets every distance to +∞ and pushes the source at 0.
func (r *runner) init(src *core.Room) {
	for _, room := range r.m.Rooms() {
		r.dist[room.ID()] = math.MaxInt64
		r.prev[room.ID()] = NoPredecessor
	}
	r.dist[src.ID()] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{room: src, dist: 0})
}

// process pops rooms by increasing distance until the heap is empty or the
// smallest distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.room
		if r.visited[u.ID()] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u.ID()] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of each neighbor of u.
func (r *runner) relax(u *core.Room) error {
	for _, v := range u.Neighbors() {
		if r.visited[v.ID()] {
			continue
		}
		w := r.options.Weight(u, v)
		if w < 0 {
			return fmt.Errorf("%w: link %d→%d weight=%d", ErrNegativeWeight, u.ID(), v.ID(), w)
		}

		newDist := r.dist[u.ID()] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v.ID()] {
			continue
		}

		r.dist[v.ID()] = newDist
		r.prev[v.ID()] = u.ID()
		heap.Push(&r.pq, &nodeItem{room: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a room and its tentative distance.
type nodeItem struct {
	room *core.Room
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by room ID so pops are deterministic.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].room.ID() < pq[j].room.ID()
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the room IDs from the source to dest using a prev map
// returned with WithReturnPath. It returns nil if dest was not reached.
func PathTo(prev map[int]int, source, dest int) []int {
	if _, ok := prev[dest]; !ok {
		return nil
	}
	var path []int
	for cur := dest; cur != NoPredecessor; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
	}
	if path[len(path)-1] != source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
