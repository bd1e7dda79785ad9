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

// Package testcases collects the geometry used to test the rasterizer and
// the puzzle renderer.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Path   *path.Data    // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)

	// Area is the exact area covered by the operation, in device pixels.
	// Zero means that the area is not known in closed form.
	Area float64
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
}

func (Stroke) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// rectangle builds an axis-aligned rectangle.
func rectangle(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

// polygon builds a closed polygon through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p.Close()
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p
}

// circleKappa places the control points of a cubic Bézier arc covering a
// quarter circle.
const circleKappa = 0.5522847498

// addCircle appends a circle made from four cubic Bézier curves.
func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	k := circleKappa * r
	s := 1.0
	if clockwise {
		s = -1
	}
	p.MoveTo(pt(cx+r, cy))
	p.CubeTo(pt(cx+r, cy+s*k), pt(cx+k, cy+s*r), pt(cx, cy+s*r))
	p.CubeTo(pt(cx-k, cy+s*r), pt(cx-r, cy+s*k), pt(cx-r, cy))
	p.CubeTo(pt(cx-r, cy-s*k), pt(cx-k, cy-s*r), pt(cx, cy-s*r))
	p.CubeTo(pt(cx+k, cy-s*r), pt(cx+r, cy-s*k), pt(cx+r, cy))
	return p.Close()
}

// fivePointStar builds a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(2*i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// compound concatenates the subpaths of several paths.
func compound(parts ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range parts {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
