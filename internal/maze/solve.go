package maze

import "github.com/zyedidia/generic/mapset"

// Reachable returns every non-Wall cell connected to from, from included.
// An empty set is returned when from itself is not walkable.
func Reachable(g *Grid, from Point) mapset.Set[Point] {
	seen := mapset.New[Point]()
	if !g.CanMove(from.X, from.Y) {
		return seen
	}
	seen.Put(from)
	q := []Point{from}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		for _, d := range neighbors4 {
			nb := cur.Add(d)
			if !g.CanMove(nb.X, nb.Y) || seen.Has(nb) {
				continue
			}
			seen.Put(nb)
			q = append(q, nb)
		}
	}
	return seen
}

// ShortestPath returns the cells walked from from to to, both ends included,
// or nil when to cannot be reached.
func ShortestPath(g *Grid, from, to Point) []Point {
	if !g.CanMove(from.X, from.Y) || !g.CanMove(to.X, to.Y) {
		return nil
	}
	parent := map[Point]Point{from: from}
	q := []Point{from}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if cur == to {
			break
		}
		for _, d := range neighbors4 {
			nb := cur.Add(d)
			if !g.CanMove(nb.X, nb.Y) {
				continue
			}
			if _, ok := parent[nb]; ok {
				continue
			}
			parent[nb] = cur
			q = append(q, nb)
		}
	}
	if _, ok := parent[to]; !ok {
		return nil
	}

	// backtrack, then reverse to be from->to
	path := []Point{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// IsPerfect reports whether the open region around from is a tree, i.e. there
// is exactly one simple path between any two of its cells.
func IsPerfect(g *Grid, from Point) bool {
	region := Reachable(g, from)
	if region.Size() == 0 {
		return false
	}
	edges := 0
	region.Each(func(p Point) {
		// count each edge once, from its left/top end
		if region.Has(Point{X: p.X + 1, Y: p.Y}) {
			edges++
		}
		if region.Has(Point{X: p.X, Y: p.Y + 1}) {
			edges++
		}
	})
	return edges == region.Size()-1
}
