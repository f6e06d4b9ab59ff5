package proximity

import (
	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
	"github.com/pzsz/voronoi"
)

// Build a proximity graph for points. See Rebuild.
func Build(points []geom.Point, bounds geom.BBox) (*Graph, error) {
	g := New()
	if err := g.Rebuild(points, bounds); err != nil {
		return nil, err
	}
	return g, nil
}

// Clear the graph and fill it from points. Node i is points[i]. Two nodes are
// connected when their Voronoi cells share a boundary inside bounds, so
// neighbors whose shared boundary lies entirely outside the box stay
// disconnected.
//
// The Voronoi diagram has one cell per distinct site. A point that repeats an
// earlier one gets a node, but no cell and no edges.
func (g *Graph) Rebuild(points []geom.Point, bounds geom.BBox) error {
	if bounds.MaxX <= bounds.MinX || bounds.MaxY <= bounds.MinY {
		return errors.Errorf("empty bounds %+v", bounds)
	}

	g.Clear()
	siteIndex := make(map[voronoi.Vertex]int, len(points))
	sites := make([]voronoi.Vertex, 0, len(points))
	for _, p := range points {
		i := g.AddNode(p)
		site := voronoi.Vertex{X: p.X, Y: p.Y}
		if _, ok := siteIndex[site]; ok {
			continue
		}
		siteIndex[site] = i
		sites = append(sites, site)
	}
	if len(sites) < 2 {
		return nil
	}

	bbox := voronoi.BBox{Xl: bounds.MinX, Xr: bounds.MaxX, Yt: bounds.MinY, Yb: bounds.MaxY}
	diagram := voronoi.ComputeDiagram(sites, bbox, true)

	cells := make(map[int]*voronoi.Cell, len(diagram.Cells))
	for _, cell := range diagram.Cells {
		cells[siteIndex[cell.Site]] = cell
	}

	// Nodes in index order, each neighbor pair added once
	for i := range g.Nodes {
		cell, ok := cells[i]
		if !ok {
			continue
		}
		g.Cells[i] = cellPolygon(cell)
		for _, halfedge := range cell.Halfedges {
			other := halfedge.Edge.GetOtherCell(cell)
			if other == nil {
				// Border of the bounding box
				continue
			}
			j := siteIndex[other.Site]
			if g.HasEdge(i, j) {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return errors.Wrap(err, "adding voronoi neighbor")
			}
		}
	}
	return nil
}

func cellPolygon(cell *voronoi.Cell) geom.Polygon {
	points := make([]geom.Point, 0, len(cell.Halfedges))
	for _, halfedge := range cell.Halfedges {
		start := halfedge.GetStartpoint()
		points = append(points, geom.Point{X: start.X, Y: start.Y})
	}
	return geom.Polygon{Points: points}
}
