package export

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/san-kum/mathmodel/internal/fractal"
)

// Image colors every grid cell through cmap.
func Image(grid *fractal.Grid, cmap *Colormap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			img.SetRGBA(x, y, cmap.At(grid.At(x, y)))
		}
	}
	return img
}

func EncodePNG(w io.Writer, grid *fractal.Grid, cmap *Colormap) error {
	return png.Encode(w, Image(grid, cmap))
}

func WritePNG(path string, grid *fractal.Grid, cmap *Colormap) error {
	return writeFile(path, func(f *os.File) error {
		return EncodePNG(f, grid, cmap)
	})
}

var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// Level converts an intensity to an 8-bit gray level, intensity * 255.
func Level(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Paletted renders grid as a 256-level grayscale frame.
func Paletted(grid *fractal.Grid) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, grid.Width, grid.Height), grayPalette)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			img.SetColorIndex(x, y, Level(grid.At(x, y)))
		}
	}
	return img
}

// EncodeGIF writes frames as a looping animation. delay is in hundredths
// of a second per frame.
func EncodeGIF(w io.Writer, frames []*fractal.Grid, delay int) error {
	anim := &gif.GIF{LoopCount: 0}
	for _, g := range frames {
		anim.Image = append(anim.Image, Paletted(g))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

func WriteGIF(path string, frames []*fractal.Grid, delay int) error {
	return writeFile(path, func(f *os.File) error {
		return EncodeGIF(f, frames, delay)
	})
}
