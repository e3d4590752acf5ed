package display

import "strings"

// Grid is an in-memory Screen. Writes past the end of a row are clipped.
type Grid struct {
	cols, rows int
	cells      []byte
	x, y       int
}

func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows, cells: make([]byte, cols*rows)}
	g.ClearDisplay()
	return g
}

func (g *Grid) ClearDisplay() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
	g.x, g.y = 0, 0
}

func (g *Grid) SetCursor(x, y uint8) { g.x, g.y = int(x), int(y) }

func (g *Grid) Print(data []byte) {
	if g.y >= g.rows {
		return
	}
	row := g.cells[g.y*g.cols : (g.y+1)*g.cols]
	for _, c := range data {
		if g.x >= g.cols {
			return
		}
		row[g.x] = c
		g.x++
	}
}

// Line returns row y without trailing blanks, with the LCD degree glyph
// shown as '°'.
func (g *Grid) Line(y int) string {
	if y < 0 || y >= g.rows {
		return ""
	}
	row := strings.TrimRight(string(g.cells[y*g.cols:(y+1)*g.cols]), " ")
	return strings.ReplaceAll(row, string([]byte{Degree}), "°")
}

func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for y := range lines {
		lines[y] = g.Line(y)
	}
	return strings.Join(lines, "\n")
}
