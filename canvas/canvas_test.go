// seehuhn.de/go/jigsaw - render images as jigsaw puzzles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigsaw/canvas"
	"seehuhn.de/go/jigsaw/raster"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func box(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestNewAndClear(t *testing.T) {
	c := canvas.New(7, 5)
	require.Equal(t, image.Rect(0, 0, 7, 5), c.Bounds())
	require.Equal(t, color.RGBA{}, c.Image().RGBAAt(3, 3), "new canvas must be transparent")

	c.Clear(white)
	for y := range 5 {
		for x := range 7 {
			require.Equal(t, white, c.Image().RGBAAt(x, y))
		}
	}
}

func TestFillRect(t *testing.T) {
	c := canvas.New(10, 10)
	c.Clear(white)
	c.FillRect(rect.Rect{LLx: 2, LLy: 3, URx: 6, URy: 8}, red)

	img := c.Image()
	require.Equal(t, red, img.RGBAAt(2, 3))
	require.Equal(t, red, img.RGBAAt(5, 7))
	require.Equal(t, white, img.RGBAAt(1, 3))
	require.Equal(t, white, img.RGBAAt(6, 7))
	require.Equal(t, white, img.RGBAAt(5, 8))
}

func TestFillPathEvenOdd(t *testing.T) {
	c := canvas.New(10, 10)
	c.Clear(white)
	p := box(0, 0, 10, 10)
	inner := box(3, 3, 7, 7)
	p.Cmds = append(p.Cmds, inner.Cmds...)
	p.Coords = append(p.Coords, inner.Coords...)

	c.FillPath(p, raster.EvenOdd, blue)
	require.Equal(t, blue, c.Image().RGBAAt(1, 1))
	require.Equal(t, white, c.Image().RGBAAt(5, 5))
}

func TestClip(t *testing.T) {
	c := canvas.New(10, 10)
	c.Clear(white)

	c.PushClip(box(2, 2, 6, 6))
	require.Equal(t, 1, c.ClipDepth())
	c.FillRect(rect.Rect{URx: 10, URy: 10}, red)
	c.PopClip()
	require.Equal(t, 0, c.ClipDepth())

	img := c.Image()
	require.Equal(t, red, img.RGBAAt(2, 2))
	require.Equal(t, red, img.RGBAAt(5, 5))
	require.Equal(t, white, img.RGBAAt(1, 1))
	require.Equal(t, white, img.RGBAAt(6, 6))

	// after PopClip, drawing is unrestricted again
	c.FillRect(rect.Rect{URx: 10, URy: 10}, blue)
	require.Equal(t, blue, img.RGBAAt(0, 0))
	require.Equal(t, blue, img.RGBAAt(9, 9))
}

func TestNestedClip(t *testing.T) {
	c := canvas.New(10, 10)
	c.Clear(white)

	c.PushClip(box(0, 0, 6, 6))
	c.PushClip(box(4, 4, 10, 10))
	c.FillRect(rect.Rect{URx: 10, URy: 10}, red)
	c.PopClip()
	c.PopClip()

	img := c.Image()
	require.Equal(t, red, img.RGBAAt(4, 4))
	require.Equal(t, red, img.RGBAAt(5, 5))
	require.Equal(t, white, img.RGBAAt(3, 3))
	require.Equal(t, white, img.RGBAAt(6, 6))
	require.Equal(t, white, img.RGBAAt(8, 8))
}

func TestEmptyClip(t *testing.T) {
	c := canvas.New(10, 10)
	c.Clear(white)

	c.PushClip(box(0, 0, 3, 3))
	c.PushClip(box(5, 5, 8, 8))
	c.FillRect(rect.Rect{URx: 10, URy: 10}, red)
	c.DrawImage(image.NewUniform(blue), rect.Rect{URx: 1, URy: 1}, rect.Rect{URx: 10, URy: 10})
	c.PopClip()
	c.PopClip()

	img := c.Image()
	for y := range 10 {
		for x := range 10 {
			require.Equal(t, white, img.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestPopClipUnbalanced(t *testing.T) {
	c := canvas.New(4, 4)
	require.NotPanics(t, c.PopClip)
	require.Equal(t, 0, c.ClipDepth())
}

func TestDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			col := red
			if x >= 2 {
				col = blue
			}
			src.SetRGBA(x, y, col)
		}
	}

	c := canvas.New(16, 16)
	c.Clear(white)

	// the right half of the source, scaled by 4 into the top-left corner
	c.DrawImage(src, rect.Rect{LLx: 2, LLy: 0, URx: 4, URy: 4}, rect.Rect{URx: 8, URy: 16})

	img := c.Image()
	requireNear(t, blue, img.RGBAAt(1, 1))
	requireNear(t, blue, img.RGBAAt(6, 14))
	require.Equal(t, white, img.RGBAAt(9, 8))
}

func TestDrawImageClipped(t *testing.T) {
	src := image.NewUniform(red)
	c := canvas.New(16, 16)
	c.Clear(white)

	c.PushClip(box(4, 4, 12, 12))
	c.DrawImage(src, rect.Rect{URx: 16, URy: 16}, rect.Rect{URx: 16, URy: 16})
	c.PopClip()

	img := c.Image()
	requireNear(t, red, img.RGBAAt(4, 4))
	requireNear(t, red, img.RGBAAt(11, 11))
	require.Equal(t, white, img.RGBAAt(3, 8))
	require.Equal(t, white, img.RGBAAt(12, 8))
}

func TestStroke(t *testing.T) {
	c := canvas.New(10, 10)
	c.Clear(white)
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 5}).
		LineTo(vec.Vec2{X: 10, Y: 5})
	c.Stroke(line, 2, blue)

	img := c.Image()
	require.Equal(t, blue, img.RGBAAt(3, 4))
	require.Equal(t, blue, img.RGBAAt(3, 5))
	require.Equal(t, white, img.RGBAAt(3, 3))
	require.Equal(t, white, img.RGBAAt(3, 6))
}

func TestStrokeZeroWidth(t *testing.T) {
	c := canvas.New(10, 10)
	c.Clear(white)
	c.Stroke(box(2, 2, 8, 8), 0, blue)
	require.Equal(t, white, c.Image().RGBAAt(2, 2))
}

// requireNear checks that two colours agree up to rounding errors of the
// image interpolation.
func requireNear(t *testing.T, want, got color.RGBA) {
	t.Helper()
	require.InDelta(t, want.R, got.R, 2, "red channel of %v", got)
	require.InDelta(t, want.G, got.G, 2, "green channel of %v", got)
	require.InDelta(t, want.B, got.B, 2, "blue channel of %v", got)
	require.InDelta(t, want.A, got.A, 2, "alpha channel of %v", got)
}
