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

package jigsaw

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigsaw/canvas"
)

// Surface is a drawing target for puzzles.
//
// All coordinates are in pixels, with the y-axis pointing down. For
// rectangles, LLx and LLy give the top-left corner.
type Surface interface {
	// FillRect paints the rectangle r in the given colour, respecting the
	// current clip region.
	FillRect(r rect.Rect, c color.Color)

	// DrawImage draws the part srcRect of src, scaled to fill dstRect.
	// srcRect is given in the coordinate space of src.
	DrawImage(src image.Image, srcRect, dstRect rect.Rect)

	// PushClip intersects the current clip region with the interior of p.
	PushClip(p *path.Data)

	// PopClip restores the clip region which was active before the
	// matching PushClip call.
	PopClip()

	// Stroke draws the outline of p with the given line width and colour.
	Stroke(p *path.Data, width float64, c color.Color)
}

var _ Surface = (*canvas.Canvas)(nil)

// Style controls the colours and line widths used for drawing puzzles.
type Style struct {
	SeamWidth   float64
	SeamColor   color.Color
	BorderWidth float64
	BorderColor color.Color
	Background  color.Color
}

// DefaultStyle is the style used when no other style is configured.
var DefaultStyle = Style{
	SeamWidth:   0.6,
	SeamColor:   color.Black,
	BorderWidth: 1,
	BorderColor: color.Black,
	Background:  color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}, // whitesmoke
}

// DrawPiece paints one puzzle piece onto dst.
//
// The outline of pc is used to clip the image cell (pc.Row, pc.Col) of an
// rows×cols division of src, which is drawn into cell. Both the image cell
// and the destination cell are enlarged by the tab height, so that tabs
// reaching into neighbouring cells show the matching image content.
// Finally the outline is stroked to show the seam.
func DrawPiece(dst Surface, src image.Image, rows, cols int, pc Piece, cell rect.Rect, style Style) {
	rows = max(rows, 1)
	cols = max(cols, 1)

	outline := Outline(pc, cell)
	tabHeight := TabHeight(cell)

	b := src.Bounds()
	cw := float64(b.Dx()) / float64(cols)
	ch := float64(b.Dy()) / float64(rows)
	margin := min(cw, ch) * tabHeightRatio

	sx := float64(b.Min.X) + float64(pc.Col)*cw
	sy := float64(b.Min.Y) + float64(pc.Row)*ch
	srcRect := rect.Rect{
		LLx: sx - margin,
		LLy: sy - margin,
		URx: sx + cw + margin,
		URy: sy + ch + margin,
	}
	dstRect := rect.Rect{
		LLx: cell.LLx - tabHeight,
		LLy: cell.LLy - tabHeight,
		URx: cell.URx + tabHeight,
		URy: cell.URy + tabHeight,
	}

	dst.PushClip(outline)
	dst.DrawImage(src, srcRect, dstRect)
	dst.PopClip()

	dst.Stroke(outline, style.SeamWidth, style.SeamColor)
}

// rectPath returns the outline of r as a closed path.
func rectPath(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// linePath returns the straight line from (x0, y0) to (x1, y1).
func linePath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1})
}
