package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	blankColor = color.NRGBA{255, 255, 255, 255}
	edgeColor  = color.NRGBA{40, 40, 40, 255}
	labelColor = color.NRGBA{200, 30, 30, 255}
)

// Image rasterises the canvas at one pixel per cell
func Image(c *Canvas) *image.NRGBA {
	img := imaging.New(c.Width(), c.Height(), blankColor)

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			v, _ := c.At(x, y)
			switch v {
			case Blank:
			case Edge:
				img.SetNRGBA(x, y, edgeColor)
			default:
				img.SetNRGBA(x, y, labelColor)
			}
		}
	}

	return img
}

// SavePNG writes the canvas as an image scaled up by scale with sharp cell edges.
// The format follows the path extension.
func SavePNG(path string, c *Canvas, scale int) error {
	if scale < 1 {
		scale = 1
	}

	img := Image(c)
	if scale > 1 {
		img = imaging.Resize(img, c.Width()*scale, c.Height()*scale, imaging.NearestNeighbor)
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save map image: %w", err)
	}
	return nil
}
