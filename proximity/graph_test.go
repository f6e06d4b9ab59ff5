package proximity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/osuushi/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wideBounds = geom.BBox{MinX: -20, MinY: -20, MaxX: 20, MaxY: 20}

func edgeSet(g *Graph) map[edgeKey]struct{} {
	set := make(map[edgeKey]struct{})
	for _, edge := range g.Edges {
		set[newEdgeKey(edge.A, edge.B)] = struct{}{}
	}
	return set
}

func assertWellFormed(t *testing.T, g *Graph, points []geom.Point) {
	t.Helper()
	require.Len(t, g.Nodes, len(points))
	for i, p := range points {
		assert.Equal(t, p, g.Nodes[i].Point)
	}
	seen := make(map[edgeKey]struct{})
	for _, edge := range g.Edges {
		key := newEdgeKey(edge.A, edge.B)
		_, duplicate := seen[key]
		require.False(t, duplicate, "duplicate edge %v", edge)
		seen[key] = struct{}{}
		assert.NotEqual(t, edge.A, edge.B)
		assert.Equal(t, geom.Distance(points[edge.A], points[edge.B]), edge.Weight)
	}
}

func TestGraph_AddEdge(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Point{X: 0, Y: 0})
	b := g.AddNode(geom.Point{X: 3, Y: 4})
	c := g.AddNode(geom.Point{X: 3, Y: 0})
	assert.Equal(t, 3, g.Len())

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddWeightedEdge(c, a, 10))
	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))
	assert.False(t, g.HasEdge(b, c))

	edge, ok := g.EdgeBetween(b, a)
	require.True(t, ok)
	assert.Equal(t, 5.0, edge.Weight)
	assert.True(t, edge.Connects(b, a))
	assert.Equal(t, b, edge.Other(a))

	assert.Equal(t, []Neighbor{{Node: b, Weight: 5}, {Node: c, Weight: 10}}, g.Neighbors(a))
	assert.Equal(t, []Neighbor{{Node: a, Weight: 10}}, g.Neighbors(c))
	assert.Len(t, g.EdgesOf(a), 2)

	assert.Error(t, g.AddEdge(a, 7), "out of range")
	assert.Error(t, g.AddEdge(-1, a), "out of range")
	assert.Error(t, g.AddEdge(a, a), "self loop")
	assert.Error(t, g.AddWeightedEdge(a, b, -1), "negative weight")
	assert.Len(t, g.Edges, 2)
}

func TestGraph_Clear(t *testing.T) {
	var g Graph
	g.AddNode(geom.Point{X: 1, Y: 1})
	g.AddNode(geom.Point{X: 2, Y: 2})
	require.NoError(t, g.AddEdge(0, 1))

	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Edges)
	assert.False(t, g.HasEdge(0, 1))

	g.AddNode(geom.Point{X: 5, Y: 5})
	assert.Empty(t, g.Neighbors(0), "adjacency must not survive a clear")
}

func TestGraph_NodeNear(t *testing.T) {
	g := New()
	g.AddNode(geom.Point{X: 0, Y: 0})
	g.AddNode(geom.Point{X: 1, Y: 0})
	g.AddNode(geom.Point{X: 1.2, Y: 0})

	node, ok := g.NodeNear(geom.Point{X: 1.1, Y: 0.1}, 0.5)
	require.True(t, ok)
	assert.Equal(t, 1, node, "first node in range wins")

	_, ok = g.NodeNear(geom.Point{X: 5, Y: 5}, 0.5)
	assert.False(t, ok)
}

func TestBuild_Triangle(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}
	g, err := Build(points, wideBounds)
	require.NoError(t, err)
	assertWellFormed(t, g, points)
	assert.Equal(t, map[edgeKey]struct{}{{0, 1}: {}, {0, 2}: {}, {1, 2}: {}}, edgeSet(g))
}

func TestBuild_Rhombus(t *testing.T) {
	// The short diagonal is a Delaunay edge, the long one is not
	points := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 0}, {X: 2, Y: -1}}
	g, err := Build(points, wideBounds)
	require.NoError(t, err)
	assertWellFormed(t, g, points)
	assert.Equal(t, map[edgeKey]struct{}{{0, 1}: {}, {1, 2}: {}, {2, 3}: {}, {0, 3}: {}, {1, 3}: {}}, edgeSet(g))
	assert.False(t, g.HasEdge(0, 2))
}

func TestBuild_BoundsRestrictAdjacency(t *testing.T) {
	// The cells of (0, 0) and (10, 0) only meet along x = 5 below y = -12
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 1}}

	g, err := Build(points, wideBounds)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1))
	assert.Len(t, g.Edges, 3)

	g, err = Build(points, geom.BBox{MinX: -2, MinY: -2, MaxX: 12, MaxY: 3})
	require.NoError(t, err)
	assert.False(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(1, 2))
	assert.Len(t, g.Edges, 2)
}

func TestBuild_Duplicates(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 0}}
	g, err := Build(points, wideBounds)
	require.NoError(t, err)
	assertWellFormed(t, g, points)
	assert.Len(t, g.Edges, 3)
	assert.Empty(t, g.Neighbors(3), "duplicate point is isolated")
	assert.Empty(t, g.Cells[3].Points)
	assert.NotEmpty(t, g.Cells[1].Points)
}

func TestBuild_TooFewPoints(t *testing.T) {
	g, err := Build([]geom.Point{{X: 1, Y: 1}}, wideBounds)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Empty(t, g.Edges)

	g, err = Build(nil, wideBounds)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestBuild_EmptyBounds(t *testing.T) {
	_, err := Build(geom.SamplePoints(), geom.BBox{MinX: 1, MaxX: 1, MinY: 0, MaxY: 5})
	assert.Error(t, err)
}

func TestRebuild_ReplacesEverything(t *testing.T) {
	g, err := Build(geom.SamplePoints(), geom.BBox{MinX: -15, MinY: -15, MaxX: 15, MaxY: 15})
	require.NoError(t, err)
	assertWellFormed(t, g, geom.SamplePoints())
	require.NotEmpty(t, g.Edges)

	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}
	require.NoError(t, g.Rebuild(points, wideBounds))
	assertWellFormed(t, g, points)
	assert.Len(t, g.Edges, 3)
}

func TestBuild_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iteration := 0; iteration < 20; iteration++ {
		points := geom.RandomPoints(rng, 5+rng.Intn(50), 10)
		g, err := Build(points, geom.BBox{MinX: -15, MinY: -15, MaxX: 15, MaxY: 15})
		require.NoError(t, err)
		assertWellFormed(t, g, points)

		// A planar graph has at most 3n - 6 edges
		assert.LessOrEqual(t, len(g.Edges), 3*len(points)-6)

		// Every point's nearest neighbor shares a Voronoi edge with it
		for i, p := range points {
			nearest, best := -1, math.Inf(1)
			for j, q := range points {
				if d := geom.Distance(p, q); j != i && d < best {
					nearest, best = j, d
				}
			}
			assert.True(t, g.HasEdge(i, nearest), "point %d should neighbor its nearest point %d", i, nearest)
		}
	}
}

func TestGraph_Nearest(t *testing.T) {
	g := New()
	_, ok := g.Nearest(geom.Point{})
	assert.False(t, ok)

	g.AddNode(geom.Point{X: 0, Y: 0})
	g.AddNode(geom.Point{X: 2, Y: 0})
	g.AddNode(geom.Point{X: 2, Y: 0})
	g.AddNode(geom.Point{X: -2, Y: 0})

	node, ok := g.Nearest(geom.Point{X: 1.5, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 1, node, "duplicates resolve to the lowest index")

	node, _ = g.Nearest(geom.Point{X: 1, Y: 0})
	assert.Equal(t, 0, node, "equidistant nodes resolve to the lowest index")

	node, _ = g.Nearest(geom.Point{X: -100, Y: 3})
	assert.Equal(t, 3, node)
}

func TestGraph_NearestMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	points := geom.RandomPoints(rng, 300, 10)
	g, err := Build(points, geom.BBox{MinX: -15, MinY: -15, MaxX: 15, MaxY: 15})
	require.NoError(t, err)

	for iteration := 0; iteration < 200; iteration++ {
		query := geom.Point{X: rng.Float64()*30 - 15, Y: rng.Float64()*30 - 15}
		expected, best := -1, math.Inf(1)
		for i, p := range points {
			if d := geom.Distance(p, query); d < best {
				expected, best = i, d
			}
		}
		node, ok := g.Nearest(query)
		require.True(t, ok)
		assert.Equal(t, expected, node)

		near, ok := g.NodeNear(query, best)
		require.True(t, ok)
		assert.Equal(t, expected, near)
	}
}

func TestGraph_FieldsSetDirectly(t *testing.T) {
	g := &Graph{Nodes: []Node{
		{Point: geom.Point{X: 0, Y: 0}},
		{Point: geom.Point{X: 3, Y: 4}},
		{Point: geom.Point{X: 6, Y: 0}},
	}}
	assert.Empty(t, g.Neighbors(0))
	require.NoError(t, g.AddEdge(0, 1))
	assert.Equal(t, []Neighbor{{Node: 1, Weight: 5}}, g.Neighbors(0))
	assert.Len(t, g.Cells, 3)

	// Appended behind the graph's back
	g.Edges = append(g.Edges, Edge{A: 1, B: 2, Weight: 5})
	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, []Neighbor{{Node: 0, Weight: 5}, {Node: 2, Weight: 5}}, g.Neighbors(1))
	assert.Equal(t, []Edge{{A: 1, B: 2, Weight: 5}}, g.EdgesOf(2))

	g.Nodes = append(g.Nodes, Node{Point: geom.Point{X: 6, Y: 1}})
	node, ok := g.Nearest(geom.Point{X: 6, Y: 2})
	require.True(t, ok)
	assert.Equal(t, 3, node)
	assert.Equal(t, 4, g.AddNode(geom.Point{X: 9, Y: 9}))
	require.NoError(t, g.AddEdge(3, 4))
	assert.True(t, g.HasEdge(1, 2), "edges survive the adjacency rebuild")
	assert.Equal(t, []Neighbor{{Node: 3, Weight: geom.Distance(geom.Point{X: 6, Y: 1}, geom.Point{X: 9, Y: 9})}}, g.Neighbors(4))

	// Truncated edges
	g.Edges = g.Edges[:1]
	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, []Neighbor{{Node: 0, Weight: 5}}, g.Neighbors(1))

	// Out of range endpoints are ignored
	g.Edges = append(g.Edges, Edge{A: 2, B: 7, Weight: 1})
	assert.Empty(t, g.Neighbors(2))
}
