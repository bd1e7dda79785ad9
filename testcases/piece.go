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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// PieceCase describes the four edge depths of a puzzle piece.
// Positive depths bulge outward, negative depths indent inward and
// zero marks a straight edge.
type PieceCase struct {
	Name                     string
	Top, Right, Bottom, Left float64
}

// Pieces lists piece shapes which exercise every combination of edge kinds
// that can occur in a puzzle grid.
var Pieces = []PieceCase{
	{Name: "single", Top: 0, Right: 0, Bottom: 0, Left: 0},
	{Name: "top_left_corner", Top: 0, Right: 0.5, Bottom: -0.4, Left: 0},
	{Name: "top_right_corner", Top: 0, Right: 0, Bottom: 0.7, Left: -0.3},
	{Name: "bottom_left_corner", Top: 0.45, Right: -0.6, Bottom: 0, Left: 0},
	{Name: "bottom_right_corner", Top: -0.35, Right: 0, Bottom: 0, Left: 0.55},
	{Name: "top_border", Top: 0, Right: 0.3, Bottom: 0.3, Left: -0.7},
	{Name: "left_border", Top: -0.5, Right: -0.5, Bottom: 0.5, Left: 0},
	{Name: "interior_out", Top: 0.7, Right: 0.7, Bottom: 0.7, Left: 0.7},
	{Name: "interior_in", Top: -0.7, Right: -0.7, Bottom: -0.7, Left: -0.7},
	{Name: "interior_mixed", Top: 0.3, Right: -0.45, Bottom: 0.6, Left: -0.65},
	{Name: "one_tab", Top: 0.5, Right: 0, Bottom: 0, Left: 0},
	{Name: "one_blank", Top: 0, Right: 0, Bottom: -0.5, Left: 0},
}

// pieceCases fill and stroke a tabbed shape made from cubic Bézier
// curves, like the outline of a puzzle piece with a single tab on top.
var pieceCases = []TestCase{
	{
		Name:   "tab_fill",
		Path:   tabbed(16, 24, 48, 56, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "blank_fill",
		Path:   tabbed(16, 16, 48, 48, -10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "tab_evenodd",
		Path:   tabbed(16, 24, 48, 56, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "tab_stroke",
		Path:   tabbed(16, 24, 48, 56, 10),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
}

// tabbed builds the rectangle (x0,y0)-(x1,y1) with a rounded tab of height
// h on the top side. The tab points upward for positive h and into the
// rectangle for negative h.
func tabbed(x0, y0, x1, y1, h float64) *path.Data {
	w := x1 - x0
	mid := x0 + w/2
	neck := w / 10
	bulb := w / 6
	up := func(s float64) float64 { return y0 - s*h }

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(pt(mid-neck, y0)).
		CubeTo(pt(mid-neck, up(0.2)), pt(mid-bulb, up(1)), pt(mid, up(1))).
		CubeTo(pt(mid+bulb, up(1)), pt(mid+neck, up(0.2)), pt(mid+neck, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}
