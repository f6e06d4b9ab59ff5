package proximity

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/osuushi/planar/geom"
)

// R-tree branching factors
const (
	indexMinChildren = 25
	indexMaxChildren = 50
)

// Node entry in the spatial index. Points are stored as tiny boxes, since the
// tree never reports zero sized boxes as intersecting anything.
type indexedNode struct {
	index int
	rect  rtreego.Rect
}

func (n indexedNode) Bounds() rtreego.Rect {
	return n.rect
}

func padding(p geom.Point) float64 {
	return 1e-9 * math.Max(1, math.Max(math.Abs(p.X), math.Abs(p.Y)))
}

func newIndexedNode(index int, p geom.Point) indexedNode {
	return indexedNode{
		index: index,
		rect:  rtreego.Point{p.X, p.Y}.ToRect(padding(p)),
	}
}

func (g *Graph) rebuildIndex() {
	entries := make([]rtreego.Spatial, len(g.Nodes))
	for i, node := range g.Nodes {
		entries[i] = newIndexedNode(i, node.Point)
	}
	g.index = rtreego.NewTree(2, indexMinChildren, indexMaxChildren, entries...)
}

func (g *Graph) indexNode(i int) {
	if g.index == nil {
		g.rebuildIndex()
		return
	}
	g.index.Insert(newIndexedNode(i, g.Nodes[i].Point))
}

// Lowest index among the nodes within radius of p.
func (g *Graph) searchWithin(p geom.Point, radius float64) (int, bool) {
	g.sync()
	if g.index == nil || radius < 0 {
		return -1, false
	}
	box := rtreego.Point{p.X, p.Y}.ToRect(radius + padding(p))
	best := -1
	for _, found := range g.index.SearchIntersect(box) {
		i := found.(indexedNode).index
		if geom.Distance(g.Nodes[i].Point, p) <= radius && (best < 0 || i < best) {
			best = i
		}
	}
	return best, best >= 0
}

// First node within radius of p, by index order.
func (g *Graph) NodeNear(p geom.Point, radius float64) (int, bool) {
	return g.searchWithin(p, radius)
}

// The node closest to p. Ties go to the lowest index. False for an empty
// graph.
func (g *Graph) Nearest(p geom.Point) (int, bool) {
	g.sync()
	if g.index == nil {
		return -1, false
	}
	candidate := g.index.NearestNeighbor(rtreego.Point{p.X, p.Y})
	if candidate == nil {
		return -1, false
	}
	// The tree measures distance to the padded boxes, so settle exact ties
	// and near misses among everything at most as far as the candidate.
	radius := geom.Distance(g.Nodes[candidate.(indexedNode).index].Point, p)
	best := -1
	bestDistance := math.Inf(1)
	box := rtreego.Point{p.X, p.Y}.ToRect(radius + padding(p))
	for _, found := range g.index.SearchIntersect(box) {
		i := found.(indexedNode).index
		d := geom.Distance(g.Nodes[i].Point, p)
		if d < bestDistance || (d == bestDistance && i < best) {
			best, bestDistance = i, d
		}
	}
	return best, true
}
