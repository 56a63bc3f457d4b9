package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/mazetree/core"
	"github.com/katalvlaran/mazetree/dijkstra"
)

// ExampleDijkstra computes hop distances from a leaf and rebuilds the path
// to the other branch.
func ExampleDijkstra() {
	m := core.NewMaze(4)
	r0, _ := m.AddRoom(nil, core.SideNone, core.Point{})
	r1, _ := m.AddRoom(r0, core.SideLeft, core.Point{})
	r2, _ := m.AddRoom(r0, core.SideRight, core.Point{})
	r3, _ := m.AddRoom(r2, core.SideLeft, core.Point{})
	_ = m.Seal([]*core.Room{r1, r3}, r3)

	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(r1.ID()), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[3]=%d path=%v\n", dist[r3.ID()], dijkstra.PathTo(prev, r1.ID(), r3.ID()))
	// Output: dist[3]=3 path=[1 0 2 3]
}
