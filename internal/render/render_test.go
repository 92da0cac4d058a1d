package render

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/tourclimb/internal/tour"
)

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(4, 3)

	assert.True(t, c.Set(3, 2, 'x'))
	assert.False(t, c.Set(4, 0, 'x'))
	assert.False(t, c.Set(0, -1, 'x'))

	v, ok := c.At(3, 2)
	assert.True(t, ok)
	assert.Equal(t, byte('x'), v)

	v, ok = c.At(10, 10)
	assert.False(t, ok)
	assert.Equal(t, Blank, v)

	c.Clear()
	assert.Equal(t, "    ", c.Row(2))
}

func TestCanvasWriteTo(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(1, 0, 'a')
	c.Set(2, 1, 'b')

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, " a \n  b\n", buf.String())
	assert.Equal(t, int64(8), n)
}

func TestDrawLabelPosition(t *testing.T) {
	cities := []tour.City{{X: 5, Y: 5}, {X: 20, Y: 5}}
	c := Draw(30, 10, cities, nil)

	assert.Equal(t, "C_0", c.Row(5)[5:8])
	assert.Equal(t, "C_1", c.Row(5)[20:23])
	assert.NotContains(t, strings.Join(rowsOf(c), ""), "*")
}

func TestDrawLabelsNeverOverwritten(t *testing.T) {
	// Edge from C_1 back to C_0 runs along row 5 through the C_0 label
	cities := []tour.City{{X: 5, Y: 5}, {X: 20, Y: 5}, {X: 12, Y: 9}}
	c := Draw(30, 12, cities, []int{0, 1, 2})

	assert.Equal(t, "C_0", c.Row(5)[5:8])
	assert.Equal(t, "C_1", c.Row(5)[20:23])
	assert.Equal(t, "C_2", c.Row(9)[12:15])

	// Cells between the two labels on row 5 are edge cells
	assert.Equal(t, strings.Repeat("*", 12), c.Row(5)[8:20])
}

func TestDrawLineSteps(t *testing.T) {
	c := NewCanvas(10, 10)
	drawLine(c, tour.City{X: 0, Y: 0}, tour.City{X: 4, Y: 2})

	// Four steps: (1,0) (2,1) (3,1) (4,2); the start cell is left alone
	want := map[[2]int]bool{{1, 0}: true, {2, 1}: true, {3, 1}: true, {4, 2}: true}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v, _ := c.At(x, y)
			assert.Equal(t, want[[2]int{x, y}], v == Edge, "cell (%d,%d)", x, y)
		}
	}
}

func TestDrawLineSamePoint(t *testing.T) {
	c := NewCanvas(5, 5)
	drawLine(c, tour.City{X: 2, Y: 2}, tour.City{X: 2, Y: 2})
	assert.Equal(t, "     ", c.Row(2))
}

func TestDrawClipsOffCanvasLabels(t *testing.T) {
	cities := []tour.City{{X: 8, Y: 1}, {X: 1, Y: 1}}
	c := Draw(10, 3, cities, []int{0, 1})
	assert.Equal(t, "C_", c.Row(1)[8:10])
}

func TestASCIIRendererOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewASCIIRenderer(&buf, 12, 4)

	require.NoError(t, r.Render([]tour.City{{X: 1, Y: 1}, {X: 6, Y: 2}}, nil))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, Separator, lines[0])
	assert.Equal(t, " C_0        ", lines[2])
	assert.Equal(t, "      C_1   ", lines[3])
}

func TestSavePNG(t *testing.T) {
	c := Draw(20, 10, []tour.City{{X: 2, Y: 2}, {X: 12, Y: 7}}, []int{0, 1})
	path := filepath.Join(t.TempDir(), "map.png")

	require.NoError(t, SavePNG(path, c, 4))

	_, err := os.Stat(path)
	require.NoError(t, err)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	// Label cell (2,2) covers pixels 8..11 after scaling
	r, g, b, _ := img.At(9, 9).RGBA()
	assert.Equal(t, labelColor, color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255})
}

func TestDrawScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(30, 12)

	c := Draw(30, 12, []tour.City{{X: 5, Y: 5}, {X: 20, Y: 5}}, []int{0, 1})
	DrawScreen(screen, c)

	mainc, _, _, _ := screen.GetContent(5, 5)
	assert.Equal(t, 'C', mainc)
	mainc, _, _, _ = screen.GetContent(10, 5)
	assert.Equal(t, '*', mainc)
}

func rowsOf(c *Canvas) []string {
	rows := make([]string, c.Height())
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return rows
}
