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

package jigsaw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jigsaw"
	"seehuhn.de/go/jigsaw/testcases"
)

// segment is one drawing command of a path, with its points.
type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

func segments(p *path.Data) []segment {
	var res []segment
	k := 0
	for _, cmd := range p.Cmds {
		n := 0
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		}
		res = append(res, segment{cmd: cmd, pts: p.Coords[k : k+n]})
		k += n
	}
	return res
}

func count(p *path.Data, cmd path.Command) int {
	n := 0
	for _, c := range p.Cmds {
		if c == cmd {
			n++
		}
	}
	return n
}

func pieceFromCase(pc testcases.PieceCase) jigsaw.Piece {
	return jigsaw.Piece{
		Top:    jigsaw.Depth(pc.Top),
		Right:  jigsaw.Depth(pc.Right),
		Bottom: jigsaw.Depth(pc.Bottom),
		Left:   jigsaw.Depth(pc.Left),
	}
}

var testCell = rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 100}

func TestOutlineRectangle(t *testing.T) {
	p := jigsaw.Outline(jigsaw.Piece{}, testCell)

	require.Equal(t, []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
	}, p.Cmds)
	require.Equal(t, []vec.Vec2{
		{X: 10, Y: 20}, {X: 110, Y: 20}, {X: 110, Y: 100}, {X: 10, Y: 100},
	}, p.Coords)
}

// TestOutlineOneEdge checks a piece with a single present edge, on each of
// the four sides and with both signs.
func TestOutlineOneEdge(t *testing.T) {
	tabHeight := jigsaw.TabHeight(testCell)
	require.InDelta(t, 16, tabHeight, 1e-12) // 0.2 * min(100, 80)

	type sideCase struct {
		name  string
		piece func(d jigsaw.Depth) jigsaw.Piece
		// base returns the bump centre on the edge for depth magnitude m
		base func(m float64) vec.Vec2
		out  vec.Vec2
	}
	sides := []sideCase{
		{
			name:  "top",
			piece: func(d jigsaw.Depth) jigsaw.Piece { return jigsaw.Piece{Top: d} },
			base:  func(m float64) vec.Vec2 { return vec.Vec2{X: 10 + 100*m, Y: 20} },
			out:   vec.Vec2{Y: -1},
		},
		{
			name:  "right",
			piece: func(d jigsaw.Depth) jigsaw.Piece { return jigsaw.Piece{Right: d} },
			base:  func(m float64) vec.Vec2 { return vec.Vec2{X: 110, Y: 20 + 80*m} },
			out:   vec.Vec2{X: 1},
		},
		{
			name:  "bottom",
			piece: func(d jigsaw.Depth) jigsaw.Piece { return jigsaw.Piece{Bottom: d} },
			base:  func(m float64) vec.Vec2 { return vec.Vec2{X: 10 + 100*m, Y: 100} },
			out:   vec.Vec2{Y: 1},
		},
		{
			name:  "left",
			piece: func(d jigsaw.Depth) jigsaw.Piece { return jigsaw.Piece{Left: d} },
			base:  func(m float64) vec.Vec2 { return vec.Vec2{X: 10, Y: 20 + 80*m} },
			out:   vec.Vec2{X: -1},
		},
	}

	for _, side := range sides {
		for _, d := range []jigsaw.Depth{0.35, -0.6} {
			t.Run(side.name, func(t *testing.T) {
				p := jigsaw.Outline(side.piece(d), testCell)
				require.Equal(t, 2, count(p, path.CmdCubeTo))
				require.Equal(t, 1, count(p, path.CmdClose))

				segs := segments(p)
				var cubics []segment
				for _, s := range segs {
					if s.cmd == path.CmdCubeTo {
						cubics = append(cubics, s)
					}
				}

				// the first curve ends at the apex
				apex := cubics[0].pts[2]
				disp := apex.Sub(side.base(d.Magnitude()))
				assert.InDelta(t, tabHeight, disp.Length(), 1e-9)
				assert.InDelta(t, tabHeight*d.Sign(), disp.Dot(side.out), 1e-9,
					"apex must point outward iff d > 0")

				// the second curve returns to the edge line
				end := cubics[1].pts[2]
				assert.InDelta(t, 0, end.Sub(side.base(d.Magnitude())).Dot(side.out), 1e-9)

				// Two straight parts flank the bump, and each of the three
				// flat sides is a single segment. One of the segments is
				// added by Close.
				assert.Equal(t, 4, count(p, path.CmdLineTo))
			})
		}
	}
}

func TestOutlineBumpControlPoints(t *testing.T) {
	cell := rect.Rect{URx: 100, URy: 100}
	p := jigsaw.Outline(jigsaw.Piece{Top: 0.5}, cell)
	segs := segments(p)

	// MoveTo, LineTo to the neck, two cubics
	require.Equal(t, path.CmdLineTo, segs[1].cmd)
	assert.Equal(t, vec.Vec2{X: 42, Y: 0}, segs[1].pts[0])

	require.Equal(t, path.CmdCubeTo, segs[2].cmd)
	assert.InDeltaSlice(t, []float64{42, -4, 30, -20, 50, -20}, flatten(segs[2].pts), 1e-9)
	require.Equal(t, path.CmdCubeTo, segs[3].cmd)
	assert.InDeltaSlice(t, []float64{70, -20, 58, -4, 58, 0}, flatten(segs[3].pts), 1e-9)
}

func flatten(pts []vec.Vec2) []float64 {
	var res []float64
	for _, p := range pts {
		res = append(res, p.X, p.Y)
	}
	return res
}

// TestOutlineCatalogue checks structural properties for a range of piece
// shapes.
func TestOutlineCatalogue(t *testing.T) {
	for _, tc := range testcases.Pieces {
		t.Run(tc.Name, func(t *testing.T) {
			pc := pieceFromCase(tc)
			p := jigsaw.Outline(pc, testCell)

			present := 0
			for _, d := range []jigsaw.Depth{pc.Top, pc.Right, pc.Bottom, pc.Left} {
				if d.Present() {
					present++
				}
			}
			assert.Equal(t, 2*present, count(p, path.CmdCubeTo))
			assert.Equal(t, path.CmdMoveTo, p.Cmds[0])
			assert.Equal(t, path.CmdClose, p.Cmds[len(p.Cmds)-1])
			assert.Equal(t, vec.Vec2{X: testCell.LLx, Y: testCell.LLy}, p.Coords[0])

			// all points stay within reach of the tabs
			th := jigsaw.TabHeight(testCell)
			for _, q := range p.Coords {
				assert.GreaterOrEqual(t, q.X, testCell.LLx-th-1e-9)
				assert.LessOrEqual(t, q.X, testCell.URx+th+1e-9)
				assert.GreaterOrEqual(t, q.Y, testCell.LLy-th-1e-9)
				assert.LessOrEqual(t, q.Y, testCell.URy+th+1e-9)
			}
		})
	}
}

// TestOutlinesInterlock checks that the two pieces sharing an edge draw
// the same bump.
func TestOutlinesInterlock(t *testing.T) {
	g := jigsaw.Grid{Rows: 4, Cols: 5, X: 3, Y: 7, Width: 500, Height: 320}
	pat := jigsaw.NewPattern(g.Rows, g.Cols, jigsaw.NewSource(99))

	// bumpPoints returns the curve points of one side of the outline.
	bumpPoints := func(pc jigsaw.Piece, side int) []vec.Vec2 {
		var res []vec.Vec2
		seen := -1
		for _, s := range segments(jigsaw.Outline(pc, g.Cell(pc.Row, pc.Col))) {
			if s.cmd != path.CmdCubeTo {
				continue
			}
			seen++
			if seen/2 == side {
				res = append(res, s.pts...)
			}
		}
		return res
	}
	// bumpIndex returns the index of side (0=top, 1=right, 2=bottom,
	// 3=left) among the sides of pc which have a bump.
	bumpIndex := func(pc jigsaw.Piece, side int) int {
		idx := 0
		for _, d := range []jigsaw.Depth{pc.Top, pc.Right, pc.Bottom, pc.Left}[:side] {
			if d.Present() {
				idx++
			}
		}
		return idx
	}
	samePoints := func(a, b []vec.Vec2) {
		t.Helper()
		require.Len(t, a, 6)
		require.Len(t, b, 6)
		for _, p := range a {
			found := false
			for _, q := range b {
				if p.Sub(q).Length() < 1e-9 {
					found = true
					break
				}
			}
			assert.True(t, found, "point %v missing from neighbour", p)
		}
	}

	for r := range g.Rows {
		for c := range g.Cols {
			pc := pat.Piece(r, c)
			if r < g.Rows-1 {
				below := pat.Piece(r+1, c)
				a := bumpPoints(pc, bumpIndex(pc, 2))
				b := bumpPoints(below, bumpIndex(below, 0))
				samePoints(a, b)
			}
			if c < g.Cols-1 {
				right := pat.Piece(r, c+1)
				a := bumpPoints(pc, bumpIndex(pc, 1))
				b := bumpPoints(right, bumpIndex(right, 3))
				samePoints(a, b)
			}
		}
	}
}

func TestOutlineDeterministic(t *testing.T) {
	pc := jigsaw.Piece{Row: 1, Col: 2, Top: 0.4, Right: -0.6, Bottom: 0.55, Left: -0.31}
	a := jigsaw.Outline(pc, testCell)
	b := jigsaw.Outline(pc, testCell)
	require.Equal(t, a, b)
}

func TestGrid(t *testing.T) {
	g := jigsaw.Grid{Rows: 2, Cols: 4, X: 10, Y: 5, Width: 200, Height: 60}
	w, h := g.CellSize()
	assert.Equal(t, 50.0, w)
	assert.Equal(t, 30.0, h)
	assert.Equal(t, rect.Rect{LLx: 110, LLy: 35, URx: 160, URy: 65}, g.Cell(1, 2))
	assert.Equal(t, rect.Rect{LLx: 10, LLy: 5, URx: 210, URy: 65}, g.Bounds())

	o := g.AtOrigin()
	assert.Equal(t, rect.Rect{LLx: 0, LLy: 0, URx: 200, URy: 60}, o.Bounds())
	assert.False(t, math.IsNaN(jigsaw.Grid{}.Cell(0, 0).URx))
}

func TestSeams(t *testing.T) {
	g := jigsaw.Grid{Rows: 3, Cols: 4, Width: 400, Height: 300}
	pat := jigsaw.NewPattern(g.Rows, g.Cols, jigsaw.NewSource(5))
	p := jigsaw.Seams(pat, g)

	// every interior edge is drawn once, with two curves
	interior := (g.Rows-1)*g.Cols + g.Rows*(g.Cols-1)
	assert.Equal(t, interior+1, count(p, path.CmdMoveTo))
	assert.Equal(t, 2*interior, count(p, path.CmdCubeTo))
	assert.Equal(t, 1, count(p, path.CmdClose))

	// the seam below the first piece matches its outline
	pc := pat.Piece(0, 0)
	var fromOutline []vec.Vec2
	for _, s := range segments(jigsaw.Outline(pc, g.Cell(0, 0))) {
		if s.cmd == path.CmdCubeTo {
			fromOutline = append(fromOutline, s.pts...)
		}
	}
	var fromSeams []vec.Vec2
	for _, s := range segments(p)[:4] {
		if s.cmd == path.CmdCubeTo {
			fromSeams = append(fromSeams, s.pts...)
		}
	}
	// outline: right bump, then bottom bump
	bottom := fromOutline[6:12]
	for _, q := range fromSeams {
		found := false
		for _, r := range bottom {
			if q.Sub(r).Length() < 1e-9 {
				found = true
			}
		}
		assert.True(t, found, "seam point %v not on outline", q)
	}
}
