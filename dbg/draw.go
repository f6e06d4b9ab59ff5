package dbg

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
)

// This is for debugging purposes only

// Padding around the drawing, in pixels
const drawPadding = 40

// Everything a debug drawing can show. Empty fields are skipped.
type Scene struct {
	Points []geom.Point
	// Voronoi cells, filled faintly behind everything else
	Cells []geom.Polygon
	// Graph edges
	Segments [][2]geom.Point
	Hull     geom.Polygon
	Path     []geom.Point
	// Drawn larger, e.g. the closest pair
	Highlight []geom.Point
	// Pixels per unit. Zero means 20.
	Scale float64
}

func (s *Scene) bounds() geom.BBox {
	all := append([]geom.Point{}, s.Points...)
	for _, cell := range s.Cells {
		all = append(all, cell.Points...)
	}
	all = append(all, s.Hull.Points...)
	all = append(all, s.Path...)
	all = append(all, s.Highlight...)
	box := geom.Bounds(all)
	if box.Width() == 0 {
		box.MinX--
		box.MaxX++
	}
	if box.Height() == 0 {
		box.MinY--
		box.MaxY++
	}
	return box
}

// Render the scene with y pointing up.
func (s *Scene) Render() *gg.Context {
	scale := s.Scale
	if scale == 0 {
		scale = 20
	}
	box := s.bounds()

	width := int(math.Ceil(scale*box.Width())) + drawPadding*2
	height := int(math.Ceil(scale*box.Height())) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-box.MinX, -box.MinY)

	// Line widths are in user units, so divide out the scale
	px := 1 / scale

	for _, cell := range s.Cells {
		if len(cell.Points) < 3 {
			continue
		}
		tracePolygon(c, cell)
		c.SetRGBA(0.3, 0.2, 1, 0.15)
		c.FillPreserve()
		c.SetRGBA(0.3, 0.2, 1, 0.6)
		c.SetLineWidth(px)
		c.Stroke()
	}

	c.SetRGB(0.5, 0.5, 0.5)
	c.SetLineWidth(px)
	for _, segment := range s.Segments {
		c.MoveTo(segment[0].X, segment[0].Y)
		c.LineTo(segment[1].X, segment[1].Y)
		c.Stroke()
	}

	if len(s.Hull.Points) > 1 {
		tracePolygon(c, s.Hull)
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2 * px)
		c.Stroke()
	}

	if len(s.Path) > 1 {
		c.MoveTo(s.Path[0].X, s.Path[0].Y)
		for _, p := range s.Path[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.SetRGB(1, 0.6, 0)
		c.SetLineWidth(3 * px)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range s.Points {
		c.DrawCircle(p.X, p.Y, 3*px)
		c.Fill()
	}
	c.SetRGB(1, 0.2, 0.2)
	for _, p := range s.Highlight {
		c.DrawCircle(p.X, p.Y, 6*px)
		c.Fill()
	}
	return c
}

func tracePolygon(c *gg.Context, poly geom.Polygon) {
	points := poly.Open().Points
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func (s *Scene) EncodePNG(w io.Writer) error {
	return errors.Wrap(s.Render().EncodePNG(w), "encoding scene")
}

func (s *Scene) SavePNG(path string) error {
	return errors.Wrapf(s.Render().SavePNG(path), "saving scene to %s", path)
}

// Save to path and print it to the terminal (iTerm only).
func (s *Scene) Imgcat(path string, w io.Writer) error {
	if err := s.SavePNG(path); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing scene")
}
