package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/tourclimb/internal/tour"
)

// Canvas size the command line uses unless told otherwise
const (
	DefaultWidth  = 70
	DefaultHeight = 40
)

// Separator is printed before every map
const Separator = "----------"

// Label returns the map label for city i
func Label(i int) string {
	return "C_" + strconv.Itoa(i)
}

// Draw builds a canvas with every city labelled and, when route is non-nil,
// the closed tour drawn with Edge cells. Labels are never overwritten.
func Draw(width, height int, cities []tour.City, route []int) *Canvas {
	c := NewCanvas(width, height)

	for i, city := range cities {
		label := Label(i)
		for j := 0; j < len(label); j++ {
			c.Set(city.X+j, city.Y, label[j])
		}
	}

	n := len(route)
	for i := 0; i < n; i++ {
		from := cities[route[i]]
		to := cities[route[(i+1)%n]]
		drawLine(c, from, to)
	}

	return c
}

// drawLine plots Edge on blank cells along the segment a->b.
// The step count is the larger of |dx| and |dy|; a itself is not plotted.
func drawLine(c *Canvas, a, b tour.City) {
	steps := max(abs(b.X-a.X), abs(b.Y-a.Y))

	for i := 1; i <= steps; i++ {
		x := a.X + i*(b.X-a.X)/steps
		y := a.Y + i*(b.Y-a.Y)/steps
		if v, ok := c.At(x, y); ok && v == Blank {
			c.Set(x, y, Edge)
		}
	}
}

// ASCIIRenderer prints maps to a writer
type ASCIIRenderer struct {
	out    io.Writer
	width  int
	height int
}

// NewASCIIRenderer creates a renderer printing width x height maps to out
func NewASCIIRenderer(out io.Writer, width, height int) *ASCIIRenderer {
	return &ASCIIRenderer{out: out, width: width, height: height}
}

// Render prints the separator line and the map of cities.
// A nil route draws the cities alone.
func (r *ASCIIRenderer) Render(cities []tour.City, route []int) error {
	if _, err := fmt.Fprintln(r.out, Separator); err != nil {
		return fmt.Errorf("failed to write map: %w", err)
	}

	c := Draw(r.width, r.height, cities, route)
	if _, err := c.WriteTo(r.out); err != nil {
		return fmt.Errorf("failed to write map: %w", err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
