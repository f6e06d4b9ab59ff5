// Proximity graphs: one node per point, with undirected edges between points
// whose Voronoi cells touch.
package proximity

import (
	"github.com/dhconnelly/rtreego"
	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
)

// A node's index in Graph.Nodes is its identity. There is no separate ID.
type Node struct {
	Point geom.Point
}

// Undirected edge between two node indices. The weight is fixed when the edge
// is added, and the graph is rebuilt wholesale rather than reweighted when
// points change.
type Edge struct {
	A, B   int
	Weight float64
}

type Neighbor struct {
	Node   int
	Weight float64
}

// The zero value is an empty graph ready to use. Nodes and Edges may also be
// filled or appended to directly; the next method call picks the changes up.
// Editing an existing node or edge in place is not noticed.
//
// Reads can run concurrently as long as nothing changes the graph, including
// direct changes to Nodes or Edges that no method call has seen yet.
type Graph struct {
	Nodes []Node
	Edges []Edge
	// Voronoi cell of each node, clipped to the bounds the graph was built
	// with. Empty for nodes whose point duplicates an earlier node.
	Cells []geom.Polygon

	// Edge indices by node, covering the first indexedEdges edges
	adjacency    [][]int
	edgeIndex    map[edgeKey]int
	indexedEdges int
	// Spatial index over node positions, nil until the first node
	index *rtreego.Rtree
}

type edgeKey struct {
	low, high int
}

func newEdgeKey(a, b int) edgeKey {
	if b < a {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func New() *Graph {
	return &Graph{}
}

// Remove every node and edge.
func (g *Graph) Clear() {
	g.Nodes = g.Nodes[:0]
	g.Edges = g.Edges[:0]
	g.Cells = g.Cells[:0]
	g.adjacency = g.adjacency[:0]
	g.edgeIndex = nil
	g.indexedEdges = 0
	g.index = nil
}

// Bring the caches up to date with Nodes and Edges.
func (g *Graph) sync() {
	if len(g.adjacency) != len(g.Nodes) || g.indexedEdges > len(g.Edges) {
		g.adjacency = make([][]int, len(g.Nodes))
		g.edgeIndex = nil
		g.indexedEdges = 0
	}
	for g.indexedEdges < len(g.Edges) {
		g.indexEdge(g.indexedEdges)
		g.indexedEdges++
	}
	for len(g.Cells) < len(g.Nodes) {
		g.Cells = append(g.Cells, geom.Polygon{})
	}

	switch {
	case len(g.Nodes) == 0:
		g.index = nil
	case g.index == nil || g.index.Size() != len(g.Nodes):
		g.rebuildIndex()
	}
}

// Endpoints out of range are left out of the adjacency lists.
func (g *Graph) indexEdge(index int) {
	edge := g.Edges[index]
	if g.edgeIndex == nil {
		g.edgeIndex = make(map[edgeKey]int)
	}
	key := newEdgeKey(edge.A, edge.B)
	if _, ok := g.edgeIndex[key]; !ok {
		g.edgeIndex[key] = index
	}
	for _, node := range []int{edge.A, edge.B} {
		if node >= 0 && node < len(g.adjacency) {
			g.adjacency[node] = append(g.adjacency[node], index)
		}
	}
}

func (g *Graph) Len() int {
	return len(g.Nodes)
}

// Add a node and return its index.
func (g *Graph) AddNode(p geom.Point) int {
	g.sync()
	g.Nodes = append(g.Nodes, Node{Point: p})
	g.Cells = append(g.Cells, geom.Polygon{})
	g.adjacency = append(g.adjacency, nil)
	g.indexNode(len(g.Nodes) - 1)
	return len(g.Nodes) - 1
}

func (g *Graph) Position(node int) geom.Point {
	return g.Nodes[node].Point
}

// Add an edge weighted by the distance between its endpoints. This does not
// check for an existing edge; use HasEdge first to avoid parallel edges.
func (g *Graph) AddEdge(a, b int) error {
	if err := g.checkEdge(a, b); err != nil {
		return err
	}
	return g.AddWeightedEdge(a, b, geom.Distance(g.Nodes[a].Point, g.Nodes[b].Point))
}

// Add an edge with an explicit weight. Weights must not be negative.
func (g *Graph) AddWeightedEdge(a, b int, weight float64) error {
	if err := g.checkEdge(a, b); err != nil {
		return err
	}
	if weight < 0 {
		return errors.Errorf("negative edge weight %v between %d and %d", weight, a, b)
	}
	g.sync()
	g.Edges = append(g.Edges, Edge{A: a, B: b, Weight: weight})
	g.sync()
	return nil
}

func (g *Graph) checkEdge(a, b int) error {
	for _, node := range []int{a, b} {
		if node < 0 || node >= len(g.Nodes) {
			return errors.Errorf("node %d out of range for graph with %d nodes", node, len(g.Nodes))
		}
	}
	if a == b {
		return errors.Errorf("self loop on node %d", a)
	}
	return nil
}

// True if an edge connects a and b, in either direction.
func (g *Graph) HasEdge(a, b int) bool {
	g.sync()
	_, ok := g.edgeIndex[newEdgeKey(a, b)]
	return ok
}

// The edge connecting a and b, if any. When parallel edges were added, this
// is the first of them.
func (g *Graph) EdgeBetween(a, b int) (Edge, bool) {
	g.sync()
	index, ok := g.edgeIndex[newEdgeKey(a, b)]
	if !ok {
		return Edge{}, false
	}
	return g.Edges[index], true
}

// Edges touching node, in the order they were added.
func (g *Graph) EdgesOf(node int) []Edge {
	g.sync()
	edges := make([]Edge, 0, len(g.adjacency[node]))
	for _, index := range g.adjacency[node] {
		edges = append(edges, g.Edges[index])
	}
	return edges
}

// Nodes adjacent to node, in edge insertion order.
func (g *Graph) Neighbors(node int) []Neighbor {
	g.sync()
	neighbors := make([]Neighbor, 0, len(g.adjacency[node]))
	for _, index := range g.adjacency[node] {
		edge := g.Edges[index]
		neighbors = append(neighbors, Neighbor{Node: edge.Other(node), Weight: edge.Weight})
	}
	return neighbors
}

// The endpoint that isn't node. Assumes node is one of the endpoints.
func (e Edge) Other(node int) int {
	if e.A == node {
		return e.B
	}
	return e.A
}

func (e Edge) Connects(a, b int) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}
