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

// Pattern holds the edge depths of an R×C puzzle.
//
// Every interior edge is stored exactly once, as seen from the piece above
// it (horizontal edges) or to the left of it (vertical edges). The piece on
// the other side of the edge reads the same value, negated.
type Pattern struct {
	rows, cols int

	// horizontal[r*cols+c] is the edge below cell (r, c), for r < rows-1.
	horizontal []Depth

	// vertical[r*(cols-1)+c] is the edge right of cell (r, c), for c < cols-1.
	vertical []Depth
}

// NewPattern draws a new random pattern for a puzzle with the given number
// of rows and columns. Values below 1 are treated as 1.
//
// Depths are drawn in row-major order of the pieces, the bottom edge of
// each piece before its right edge, so that a seeded source always gives
// the same pattern.
func NewPattern(rows, cols int, src Source) *Pattern {
	rows = max(rows, 1)
	cols = max(cols, 1)
	p := &Pattern{
		rows:       rows,
		cols:       cols,
		horizontal: make([]Depth, (rows-1)*cols),
		vertical:   make([]Depth, rows*(cols-1)),
	}
	for r := range rows {
		for c := range cols {
			if r < rows-1 {
				p.horizontal[r*cols+c] = RandomDepth(src)
			}
			if c < cols-1 {
				p.vertical[r*(cols-1)+c] = RandomDepth(src)
			}
		}
	}
	return p
}

// Rows returns the number of rows of the puzzle.
func (p *Pattern) Rows() int {
	return p.rows
}

// Cols returns the number of columns of the puzzle.
func (p *Pattern) Cols() int {
	return p.cols
}

// Len returns the number of pieces.
func (p *Pattern) Len() int {
	return p.rows * p.cols
}

// below returns the depth of the edge below (r, c), seen from (r, c).
func (p *Pattern) below(r, c int) Depth {
	if r >= p.rows-1 {
		return Flat
	}
	return p.horizontal[r*p.cols+c]
}

// rightOf returns the depth of the edge right of (r, c), seen from (r, c).
func (p *Pattern) rightOf(r, c int) Depth {
	if c >= p.cols-1 {
		return Flat
	}
	return p.vertical[r*(p.cols-1)+c]
}

// Piece returns the piece at the given position.
// The function panics if the position is outside the grid.
func (p *Pattern) Piece(row, col int) Piece {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		panic("jigsaw: piece index out of range")
	}
	pc := Piece{
		Row:    row,
		Col:    col,
		Right:  p.rightOf(row, col),
		Bottom: p.below(row, col),
	}
	if row > 0 {
		pc.Top = p.below(row-1, col).Mirror()
	}
	if col > 0 {
		pc.Left = p.rightOf(row, col-1).Mirror()
	}
	return pc
}

// Pieces returns all pieces in row-major order, so that the piece at
// (row, col) has index row*Cols()+col.
func (p *Pattern) Pieces() []Piece {
	res := make([]Piece, 0, p.Len())
	for r := range p.rows {
		for c := range p.cols {
			res = append(res, p.Piece(r, c))
		}
	}
	return res
}
