package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planar/geom"
	"github.com/osuushi/planar/proximity"
)

type printer struct {
	w  io.Writer
	au aurora.Aurora
}

func (p *printer) heading(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.au.Bold(fmt.Sprintf(format, args...)))
}

func (p *printer) point(index int, pt geom.Point) {
	fmt.Fprintf(p.w, "  %s %s\n", p.au.Cyan(fmt.Sprintf("%3d", index)), formatPoint(pt))
}

func (p *printer) edge(e proximity.Edge) {
	fmt.Fprintf(p.w, "  %s %s %s\n",
		p.au.Cyan(fmt.Sprintf("%3d", e.A)),
		p.au.Cyan(fmt.Sprintf("%3d", e.B)),
		p.au.Faint(strconv.FormatFloat(e.Weight, 'g', 6, 64)))
}

func (p *printer) value(name string, v float64) {
	fmt.Fprintf(p.w, "  %s %s\n", name, p.au.Green(strconv.FormatFloat(v, 'g', 6, 64)))
}

// Filled cells are highlighted.
func (p *printer) grid(grid [][]int, filled int) {
	for _, row := range grid {
		var sb strings.Builder
		for _, v := range row {
			if v == filled {
				sb.WriteString(p.au.Yellow(v).String())
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
		fmt.Fprintln(p.w, sb.String())
	}
}

func formatPoint(pt geom.Point) string {
	return strconv.FormatFloat(pt.X, 'g', -1, 64) + " " + strconv.FormatFloat(pt.Y, 'g', -1, 64)
}
