package mapgen

import (
	"math"
	"slices"

	"github.com/automoto/dungeonrush/config"
	astar "github.com/beefsack/go-astar"
	"github.com/zyedidia/generic/mapset"
)

// PathNeighbors returns rooms reachable through a door (implements astar.Pather)
func (r *Room) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range config.Directions {
		if !r.Doors[d] {
			continue
		}
		if n := r.m.Neighbor(r, d); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// PathNeighborCost is one per door crossed (implements astar.Pather)
func (r *Room) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost is the grid manhattan distance (implements astar.Pather)
func (r *Room) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Room)
	return math.Abs(float64(t.GridX-r.GridX)) + math.Abs(float64(t.GridY-r.GridY))
}

// CriticalPath returns the shortest door path from Begin to Exit, inclusive.
func (m *Map) CriticalPath() ([]*Room, bool) {
	if m.Begin == nil || m.Exit == nil {
		return nil, false
	}
	if m.Begin == m.Exit {
		return []*Room{m.Begin}, true
	}
	path, _, found := astar.Path(m.Begin, m.Exit)
	if !found {
		return nil, false
	}
	result := make([]*Room, len(path))
	for i, p := range path {
		result[i] = p.(*Room)
	}
	if result[0] != m.Begin {
		slices.Reverse(result)
	}
	return result, true
}

// Reachable returns every room reachable from start through doors.
func (m *Map) Reachable(start *Room) mapset.Set[*Room] {
	visited := mapset.New[*Room]()
	queue := []*Room{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == nil || visited.Has(cur) {
			continue
		}
		visited.Put(cur)
		for _, n := range cur.PathNeighbors() {
			if r := n.(*Room); !visited.Has(r) {
				queue = append(queue, r)
			}
		}
	}
	return visited
}
