// Points, polygons and the small set of predicates that the hull, closest
// pair and graph packages are built from.
package geom

// Points are plain values. Equality is exact: two points are the same point
// only if both coordinates compare equal with ==. Nothing in this module
// rounds or snaps coordinates.
type Point struct {
	X float64
	Y float64
}

type Polygon struct {
	Points []Point
}

// Axis aligned bounding box. Min values are expected to be below max values.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

type PointStack []Point
