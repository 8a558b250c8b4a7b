// Package display provides the monochrome CHIP-8 frame buffer.
package display

import (
	"fmt"
	"strings"
)

// Frame buffer dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Display is a fixed 64x32 grid of pixels stored row-major.
// The zero value is a cleared display.
type Display struct {
	pixels [Width * Height]bool
}

// New returns a cleared display.
func New() *Display {
	return &Display{}
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.pixels = [Width * Height]bool{}
}

// Pixel returns the state of the pixel at the given row and column.
// It panics if the coordinates are outside of the grid.
func (d *Display) Pixel(row, col int) bool {
	return d.pixels[index(row, col)]
}

// SetPixel sets the state of the pixel at the given row and column.
// It panics if the coordinates are outside of the grid.
func (d *Display) SetPixel(row, col int, on bool) {
	d.pixels[index(row, col)] = on
}

// Flip XORs the pixel at the given row and column and returns whether
// the pixel was turned from on to off.
func (d *Display) Flip(row, col int) bool {
	i := index(row, col)
	erased := d.pixels[i]
	d.pixels[i] = !erased
	return erased
}

// Pixels returns a copy of the frame buffer in row-major order.
func (d *Display) Pixels() [Width * Height]bool {
	return d.pixels
}

// String renders the frame buffer as text, one line per row.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for row := range Height {
		for col := range Width {
			if d.pixels[row*Width+col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func index(row, col int) int {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		panic(fmt.Sprintf("display coordinate out of range: row %d col %d", row, col))
	}
	return row*Width + col
}
