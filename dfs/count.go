package dfs

import "github.com/katalvlaran/mazetree/core"

// CountVisited performs a LIFO traversal from start through child links and
// returns how many rooms have their Visited flag set.
//
// The seen-set guards against double counting: a room pushed twice is
// inspected once. The traversal order does not affect the count.
// Complexity: O(V) time, O(V) memory.
func CountVisited(start *core.Room) (int, error) {
	if start == nil {
		return 0, ErrStartNil
	}

	var (
		stack = []*core.Room{start}
		seen  = make(map[int]struct{})
		count int
		r     *core.Room
	)
	for len(stack) > 0 {
		r = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[r.ID()]; ok {
			continue
		}
		seen[r.ID()] = struct{}{}

		if r.Visited() {
			count++
		}
		for _, c := range r.Children() {
			if _, ok := seen[c.ID()]; !ok {
				stack = append(stack, c)
			}
		}
	}

	return count, nil
}
