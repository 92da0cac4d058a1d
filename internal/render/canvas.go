// Package render draws cities and tours onto character grids and images.
package render

import (
	"bufio"
	"io"
)

// Cell values used on a canvas
const (
	Blank byte = ' '
	Edge  byte = '*'
)

// Canvas is a fixed-size character grid indexed by (x, y),
// with (0, 0) at the top-left corner.
type Canvas struct {
	width  int
	height int
	cells  [][]byte // cells[y][x]
}

// NewCanvas creates a blank width x height canvas
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([][]byte, height)
	for y := range cells {
		cells[y] = make([]byte, width)
	}

	c := &Canvas{width: width, height: height, cells: cells}
	c.Clear()
	return c
}

// Width returns the number of columns
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows
func (c *Canvas) Height() int { return c.height }

// Clear blanks every cell
func (c *Canvas) Clear() {
	for _, row := range c.cells {
		for x := range row {
			row[x] = Blank
		}
	}
}

// InBounds reports whether (x, y) is on the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the cell at (x, y); off-canvas reads return Blank, false
func (c *Canvas) At(x, y int) (byte, bool) {
	if !c.InBounds(x, y) {
		return Blank, false
	}
	return c.cells[y][x], true
}

// Set writes the cell at (x, y) and reports whether it was on the canvas
func (c *Canvas) Set(x, y int, v byte) bool {
	if !c.InBounds(x, y) {
		return false
	}
	c.cells[y][x] = v
	return true
}

// Row returns row y as a string
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	return string(c.cells[y])
}

// WriteTo prints the canvas row by row, one line per row
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64

	for _, row := range c.cells {
		n, err := bw.Write(row)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}

	return total, bw.Flush()
}
