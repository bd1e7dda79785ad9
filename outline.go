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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape of the bumps, relative to the shorter side of a cell.
const (
	neckRatio      = 0.08 // straight part on either side of the bump centre
	tabWidthRatio  = 0.2  // lateral reach of the bump's control points
	tabHeightRatio = 0.2  // distance of the apex from the edge
)

// metrics holds the bump dimensions for one cell.
type metrics struct {
	neck, tabWidth, tabHeight float64
}

func cellMetrics(cell rect.Rect) metrics {
	sz := min(cell.URx-cell.LLx, cell.URy-cell.LLy)
	return metrics{
		neck:      neckRatio * sz,
		tabWidth:  tabWidthRatio * sz,
		tabHeight: tabHeightRatio * sz,
	}
}

// TabHeight returns the distance by which tabs protrude from a cell of the
// given size.
func TabHeight(cell rect.Rect) float64 {
	return cellMetrics(cell).tabHeight
}

// Outline returns the closed outline of pc, drawn into the given cell.
//
// The path starts at the top-left corner and runs clockwise on screen (with
// the y-axis pointing down) through the top, right, bottom and left sides.
// Absent edges are single straight segments; the left side's segment is
// the one added by closing the path. Present edges consist of a straight
// part, two cubic Bézier curves forming the bump and another straight part.
func Outline(pc Piece, cell rect.Rect) *path.Data {
	m := cellMetrics(cell)
	x0, y0, x1, y1 := cell.LLx, cell.LLy, cell.URx, cell.URy
	w, h := x1-x0, y1-y0

	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: x0, Y: y0})

	// top: left to right, tabs point up
	if pc.Top.Present() {
		c := vec.Vec2{X: x0 + pc.Top.Magnitude()*w, Y: y0}
		m.bump(p, c, vec.Vec2{X: 1}, vec.Vec2{Y: -1}, pc.Top.Sign())
	}
	p.LineTo(vec.Vec2{X: x1, Y: y0})

	// right: top to bottom, tabs point right
	if pc.Right.Present() {
		c := vec.Vec2{X: x1, Y: y0 + pc.Right.Magnitude()*h}
		m.bump(p, c, vec.Vec2{Y: 1}, vec.Vec2{X: 1}, pc.Right.Sign())
	}
	p.LineTo(vec.Vec2{X: x1, Y: y1})

	// bottom: right to left, tabs point down
	if pc.Bottom.Present() {
		c := vec.Vec2{X: x0 + pc.Bottom.Magnitude()*w, Y: y1}
		m.bump(p, c, vec.Vec2{X: -1}, vec.Vec2{Y: 1}, pc.Bottom.Sign())
	}
	p.LineTo(vec.Vec2{X: x0, Y: y1})

	// left: bottom to top, tabs point left
	if pc.Left.Present() {
		c := vec.Vec2{X: x0, Y: y0 + pc.Left.Magnitude()*h}
		m.bump(p, c, vec.Vec2{Y: -1}, vec.Vec2{X: -1}, pc.Left.Sign())
	}
	return p.Close()
}

// bump appends a tab or blank centred at c. The side is traversed in
// direction along, out is the outward normal of the side and s is +1 for
// tabs and -1 for blanks.
func (m metrics) bump(p *path.Data, c, along, out vec.Vec2, s float64) {
	apex := c.Add(out.Mul(m.tabHeight * s))
	start := c.Sub(along.Mul(m.neck))
	end := c.Add(along.Mul(m.neck))
	shoulder := out.Mul(0.2 * m.tabHeight * s)
	lateral := along.Mul(m.tabWidth)

	p.LineTo(start)
	p.CubeTo(start.Add(shoulder), apex.Sub(lateral), apex)
	p.CubeTo(apex.Add(lateral), end.Add(shoulder), end)
}

// Seams returns the cut lines of a whole puzzle placed on g: every interior
// edge once, as an open subpath, followed by the closed border of the grid.
func Seams(p *Pattern, g Grid) *path.Data {
	res := &path.Data{}
	for _, pc := range p.Pieces() {
		cell := g.Cell(pc.Row, pc.Col)
		m := cellMetrics(cell)
		x0, y0, x1, y1 := cell.LLx, cell.LLy, cell.URx, cell.URy

		if pc.Bottom.Present() {
			res.MoveTo(vec.Vec2{X: x0, Y: y1})
			c := vec.Vec2{X: x0 + pc.Bottom.Magnitude()*(x1-x0), Y: y1}
			m.bump(res, c, vec.Vec2{X: 1}, vec.Vec2{Y: 1}, pc.Bottom.Sign())
			res.LineTo(vec.Vec2{X: x1, Y: y1})
		}
		if pc.Right.Present() {
			res.MoveTo(vec.Vec2{X: x1, Y: y0})
			c := vec.Vec2{X: x1, Y: y0 + pc.Right.Magnitude()*(y1-y0)}
			m.bump(res, c, vec.Vec2{Y: 1}, vec.Vec2{X: 1}, pc.Right.Sign())
			res.LineTo(vec.Vec2{X: x1, Y: y1})
		}
	}

	b := rectPath(g.Bounds())
	res.Cmds = append(res.Cmds, b.Cmds...)
	res.Coords = append(res.Coords, b.Coords...)
	return res
}
