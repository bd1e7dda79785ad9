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

// Package canvas provides an offscreen RGBA drawing surface with
// anti-aliased fills and strokes, and a stack of clip paths.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigsaw/raster"
)

// Interpolators used for drawing scaled images.
var (
	scaleDown xdraw.Interpolator = xdraw.BiLinear
	scaleUp   xdraw.Interpolator = xdraw.CatmullRom
)

// Canvas is an RGBA image which can be drawn on.
//
// Coordinates are in pixels, with the origin at the top-left corner and the
// y-axis pointing down. For rectangles given as [rect.Rect], LLx and LLy
// describe the top-left corner.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	r   *raster.Rasterizer

	// clips holds one coverage mask per PushClip call. Pixels outside the
	// bounds of the top mask are clipped away.
	clips []*image.Alpha

	mask  *image.Alpha // scratch buffer, kept zero outside of paint
	dirty image.Rectangle
}

// New allocates a transparent canvas of the given size.
func New(w, h int) *Canvas {
	w = max(w, 0)
	h = max(h, 0)
	bounds := image.Rect(0, 0, w, h)
	return &Canvas{
		img:  image.NewRGBA(bounds),
		r:    raster.New(rect.Rect{URx: float64(w), URy: float64(h)}),
		mask: image.NewAlpha(bounds),
	}
}

// Image returns the underlying image. It is not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Clear sets every pixel to col, ignoring the clip region.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect paints the rectangle r.
func (c *Canvas) FillRect(r rect.Rect, col color.Color) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
	c.FillPath(p, raster.NonZero, col)
}

// FillPath paints the interior of p.
func (c *Canvas) FillPath(p *path.Data, rule raster.Rule, col color.Color) {
	if !c.prepare() {
		return
	}
	c.r.Fill(p, rule, c.collect)
	c.paint(col)
}

// Stroke paints the outline of p, using a line of the given width with butt
// caps and miter joins.
func (c *Canvas) Stroke(p *path.Data, width float64, col color.Color) {
	if width <= 0 || !c.prepare() {
		return
	}
	c.r.Width = width
	c.r.Stroke(p, c.collect)
	c.paint(col)
}

// DrawImage draws the part srcRect of src, scaled to fill dstRect.
// Only pixels inside the current clip region are changed.
func (c *Canvas) DrawImage(src image.Image, srcRect, dstRect rect.Rect) {
	sw := srcRect.URx - srcRect.LLx
	sh := srcRect.URy - srcRect.LLy
	dw := dstRect.URx - dstRect.LLx
	dh := dstRect.URy - dstRect.LLy
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return
	}

	sr := image.Rect(
		int(math.Floor(srcRect.LLx)), int(math.Floor(srcRect.LLy)),
		int(math.Ceil(srcRect.URx)), int(math.Ceil(srcRect.URy)),
	).Intersect(src.Bounds())
	if sr.Empty() {
		return
	}

	sx, sy := dw/sw, dh/sh
	s2d := f64.Aff3{
		sx, 0, dstRect.LLx - srcRect.LLx*sx,
		0, sy, dstRect.LLy - srcRect.LLy*sy,
	}

	interp := scaleUp
	if sx < 1 || sy < 1 {
		interp = scaleDown
	}

	var opts *xdraw.Options
	if len(c.clips) > 0 {
		clip := c.clips[len(c.clips)-1]
		if clip.Rect.Empty() {
			return
		}
		opts = &xdraw.Options{DstMask: clip}
	}
	interp.Transform(c.img, s2d, src, sr, xdraw.Over, opts)
}

// PushClip restricts all further drawing to the interior of p, intersected
// with the current clip region. The nonzero winding rule is used.
func (c *Canvas) PushClip(p *path.Data) {
	var prev *image.Alpha
	if len(c.clips) > 0 {
		prev = c.clips[len(c.clips)-1]
	}

	if !c.prepare() {
		c.clips = append(c.clips, image.NewAlpha(image.Rectangle{}))
		return
	}
	c.r.Fill(p, raster.NonZero, c.collect)
	clip := image.NewAlpha(c.dirty)
	for y := c.dirty.Min.Y; y < c.dirty.Max.Y; y++ {
		src := c.mask.Pix[c.mask.PixOffset(c.dirty.Min.X, y):c.mask.PixOffset(c.dirty.Max.X, y)]
		copy(clip.Pix[clip.PixOffset(c.dirty.Min.X, y):], src)
		clear(src)
	}
	c.dirty = image.Rectangle{}

	if prev != nil {
		intersectMask(clip, prev)
	}
	c.clips = append(c.clips, clip)
}

// PopClip restores the clip region which was active before the matching
// PushClip call. Calls without a matching PushClip are ignored.
func (c *Canvas) PopClip() {
	if len(c.clips) == 0 {
		return
	}
	c.clips[len(c.clips)-1] = nil
	c.clips = c.clips[:len(c.clips)-1]
}

// ClipDepth returns the number of active PushClip calls.
func (c *Canvas) ClipDepth() int {
	return len(c.clips)
}

// prepare sets up the rasterizer for the area which can be affected by
// drawing operations. It returns false if this area is empty.
func (c *Canvas) prepare() bool {
	area := c.img.Rect
	if len(c.clips) > 0 {
		area = area.Intersect(c.clips[len(c.clips)-1].Rect)
	}
	if area.Empty() {
		return false
	}
	c.r.Reset(rect.Rect{
		LLx: float64(area.Min.X),
		LLy: float64(area.Min.Y),
		URx: float64(area.Max.X),
		URy: float64(area.Max.Y),
	})
	c.dirty = image.Rectangle{}
	return true
}

// collect stores rasterizer output in the scratch mask.
func (c *Canvas) collect(y, xMin int, coverage []float32) {
	row := c.mask.Pix[c.mask.PixOffset(xMin, y):]
	for i, v := range coverage {
		row[i] = uint8(v*255 + 0.5)
	}
	c.dirty = c.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// paint composites col onto the image through the scratch mask and the
// current clip, and then clears the scratch mask.
func (c *Canvas) paint(col color.Color) {
	if c.dirty.Empty() {
		return
	}
	if len(c.clips) > 0 {
		intersectMask(c.mask.SubImage(c.dirty).(*image.Alpha), c.clips[len(c.clips)-1])
	}
	draw.DrawMask(c.img, c.dirty, image.NewUniform(col), image.Point{},
		c.mask, c.dirty.Min, draw.Over)

	for y := c.dirty.Min.Y; y < c.dirty.Max.Y; y++ {
		clear(c.mask.Pix[c.mask.PixOffset(c.dirty.Min.X, y):c.mask.PixOffset(c.dirty.Max.X, y)])
	}
	c.dirty = image.Rectangle{}
}

// intersectMask multiplies the values of m by the values of clip.
// Pixels outside of clip.Rect are set to zero.
func intersectMask(m, clip *image.Alpha) {
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			i := m.PixOffset(x, y)
			if m.Pix[i] == 0 {
				continue
			}
			var a uint32
			if (image.Point{X: x, Y: y}).In(clip.Rect) {
				a = uint32(clip.Pix[clip.PixOffset(x, y)])
			}
			m.Pix[i] = uint8((uint32(m.Pix[i])*a + 127) / 255)
		}
	}
}
