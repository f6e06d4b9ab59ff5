package astar

import (
	"fmt"
	"math"

	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
)

// Estimate of the remaining cost from a to b.
type HeuristicFunc func(a, b geom.Point) float64

type Heuristic int

const (
	// Straight line distance. Admissible for edges weighted by Euclidean
	// distance, which is what proximity graphs use.
	Euclidean Heuristic = iota
	// Sum of the axis distances. Overestimates diagonal edges.
	Manhattan
	// Largest axis distance.
	Chebyshev
)

var heuristicNames = map[Heuristic]string{
	Euclidean: "euclidean",
	Manhattan: "manhattan",
	Chebyshev: "chebyshev",
}

func HeuristicNames() []string {
	return []string{"euclidean", "manhattan", "chebyshev"}
}

func (h Heuristic) String() string {
	if name, ok := heuristicNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

func ParseHeuristic(name string) (Heuristic, error) {
	for heuristic, heuristicName := range heuristicNames {
		if heuristicName == name {
			return heuristic, nil
		}
	}
	return 0, errors.Errorf("unknown heuristic %q", name)
}

func (h Heuristic) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Heuristic) UnmarshalText(text []byte) error {
	parsed, err := ParseHeuristic(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (h Heuristic) Func() (HeuristicFunc, error) {
	switch h {
	case Euclidean:
		return EuclideanDistance, nil
	case Manhattan:
		return ManhattanDistance, nil
	case Chebyshev:
		return ChebyshevDistance, nil
	}
	return nil, errors.Errorf("unknown heuristic %v", h)
}

func EuclideanDistance(a, b geom.Point) float64 {
	return geom.Distance(a, b)
}

func ManhattanDistance(a, b geom.Point) float64 {
	return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
}

func ChebyshevDistance(a, b geom.Point) float64 {
	return math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))
}
