package render

import (
	"github.com/gdamore/tcell/v2"
)

var (
	edgeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	labelStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// DrawScreen copies the canvas onto a terminal screen and shows it.
// Cells beyond the screen size are clipped by the screen.
func DrawScreen(s tcell.Screen, c *Canvas) {
	s.Clear()

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			v, _ := c.At(x, y)
			style := tcell.StyleDefault
			switch v {
			case Blank:
			case Edge:
				style = edgeStyle
			default:
				style = labelStyle
			}
			s.SetContent(x, y, rune(v), nil, style)
		}
	}

	s.Show()
}

// View shows the canvas on s until a key is pressed or the screen is closed.
// The caller owns s and must Init it before and Fini it after.
func View(s tcell.Screen, c *Canvas) {
	DrawScreen(s, c)

	for {
		switch s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			DrawScreen(s, c)
		case *tcell.EventKey:
			return
		}
	}
}
