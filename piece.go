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
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Piece is one puzzle piece, together with the depths of its four edges.
type Piece struct {
	Row, Col int

	Top, Right, Bottom, Left Depth
}

func (pc Piece) String() string {
	return fmt.Sprintf("piece (%d,%d) [%.3f %.3f %.3f %.3f]",
		pc.Row, pc.Col, pc.Top, pc.Right, pc.Bottom, pc.Left)
}

// Grid is the placement of an R×C puzzle on a drawing surface.
//
// Coordinates are in pixels, with the y-axis pointing down.
// All cells have the same size.
type Grid struct {
	Rows, Cols    int
	X, Y          float64 // top-left corner
	Width, Height float64
}

// CellSize returns the width and height of a single piece.
func (g Grid) CellSize() (w, h float64) {
	return g.Width / float64(max(g.Cols, 1)), g.Height / float64(max(g.Rows, 1))
}

// Cell returns the rectangle occupied by the piece at (row, col).
// Since the y-axis points down, LLy is the top edge and URy the bottom edge
// of the cell.
func (g Grid) Cell(row, col int) rect.Rect {
	w, h := g.CellSize()
	x := g.X + float64(col)*w
	y := g.Y + float64(row)*h
	return rect.Rect{LLx: x, LLy: y, URx: x + w, URy: y + h}
}

// Bounds returns the rectangle covered by the whole puzzle.
func (g Grid) Bounds() rect.Rect {
	return rect.Rect{LLx: g.X, LLy: g.Y, URx: g.X + g.Width, URy: g.Y + g.Height}
}

// AtOrigin returns a copy of g, moved so that the top-left corner is at
// (0, 0).
func (g Grid) AtOrigin() Grid {
	g.X = 0
	g.Y = 0
	return g
}
