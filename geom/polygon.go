package geom

// Hulls are handed around closed, with the first point repeated at the end.
// Most helpers here accept either form.

func (poly Polygon) Closed() bool {
	n := len(poly.Points)
	return n > 1 && poly.Points[0] == poly.Points[n-1]
}

// Copy of the polygon with the first point repeated at the end. Already closed
// polygons are copied unchanged.
func (poly Polygon) Close() Polygon {
	points := make([]Point, len(poly.Points), len(poly.Points)+1)
	copy(points, poly.Points)
	if len(points) > 0 && !poly.Closed() {
		points = append(points, points[0])
	}
	return Polygon{Points: points}
}

// The polygon without its closing point. The returned points share storage
// with the original.
func (poly Polygon) Open() Polygon {
	if poly.Closed() {
		return Polygon{Points: poly.Points[:len(poly.Points)-1]}
	}
	return poly
}

// Number of distinct vertices, ignoring the closing point.
func (poly Polygon) VertexCount() int {
	return len(poly.Open().Points)
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area, positive when the polygon winds counterclockwise.
func (poly Polygon) SignedArea() float64 {
	points := poly.Open().Points
	var sum float64
	for i, p := range points {
		sum += p.Cross(points[CircularIndex(i+1, len(points))])
	}
	return sum / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// True if p is one of the polygon's vertices.
func (poly Polygon) HasVertex(p Point) bool {
	for _, vertex := range poly.Points {
		if vertex == p {
			return true
		}
	}
	return false
}

// Boundary test: p lies on one of the polygon's edges, endpoints included.
func (poly Polygon) OnBoundary(p Point) bool {
	points := poly.Open().Points
	for i, a := range points {
		b := points[CircularIndex(i+1, len(points))]
		if Orientation(a, b, p) != 0 {
			continue
		}
		if p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
			p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y) {
			return true
		}
	}
	return false
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
