// Package floodfill repaints connected regions of an integer grid.
package floodfill

import "github.com/pkg/errors"

// Grid position. Rows index the outer slice.
type Cell struct {
	Row, Col int
}

func (c Cell) neighbors() [4]Cell {
	return [4]Cell{
		{c.Row, c.Col - 1},
		{c.Row - 1, c.Col},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col},
	}
}

func inBounds(grid [][]int, c Cell) bool {
	return c.Row >= 0 && c.Row < len(grid) && c.Col >= 0 && c.Col < len(grid[c.Row])
}

// Replace the value of every cell 4-connected to start through cells holding
// start's value with value, in place. Returns the number of cells changed.
//
// Rows may have different lengths. Cells missing from a short row are treated
// as walls.
func Fill(grid [][]int, start Cell, value int) (int, error) {
	if !inBounds(grid, start) {
		return 0, errors.Errorf("start cell %+v outside grid", start)
	}
	original := grid[start.Row][start.Col]
	if original == value {
		return 0, nil
	}

	changed := 0
	stack := []Cell{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if grid[current.Row][current.Col] != original {
			// Pushed twice before being painted
			continue
		}
		grid[current.Row][current.Col] = value
		changed++
		for _, next := range current.neighbors() {
			if inBounds(grid, next) && grid[next.Row][next.Col] == original {
				stack = append(stack, next)
			}
		}
	}
	return changed, nil
}

// Parse a grid from rows of digits, one row per line. Used by the CLI and
// tests to write small grids inline.
func Parse(rows []string) ([][]int, error) {
	grid := make([][]int, 0, len(rows))
	for r, row := range rows {
		cells := make([]int, 0, len(row))
		for c, ch := range row {
			if ch < '0' || ch > '9' {
				return nil, errors.Errorf("row %d column %d: %q is not a digit", r, c, ch)
			}
			cells = append(cells, int(ch-'0'))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
