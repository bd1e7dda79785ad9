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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke computes the coverage of the outline of p, using Width, Cap, Join
// and MiterLimit.
//
// The outline is built from one quadrilateral per flattened segment plus
// separate polygons for joins and caps. All polygons are oriented the same
// way and filled together with the nonzero rule, so overlaps are not
// counted twice.
func (r *Rasterizer) Stroke(p *path.Data, emit Emitter) {
	if r.Width <= 0 {
		return
	}
	r.flattenSubpaths(p)

	r.beginEdges()
	hw := r.Width / 2
	for i := range r.lineStart {
		pts := r.subpath(i)
		closed := r.lineClosed[i]

		if len(pts) == 1 {
			// A lone point is only visible with round caps.
			if r.Cap == graphics.LineCapRound {
				r.addCircle(pts[0], hw)
			}
			continue
		}

		n := len(pts) - 1
		for j := range n {
			r.addSegment(pts[j], pts[j+1], hw)
		}
		for j := 1; j < n; j++ {
			r.addJoin(pts[j-1], pts[j], pts[j+1], hw)
		}
		if closed {
			// The closing segment is already part of pts.
			r.addJoin(pts[n-1], pts[n], pts[1], hw)
		} else {
			r.addCap(pts[0], pts[0].Sub(pts[1]), hw)
			r.addCap(pts[n], pts[n].Sub(pts[n-1]), hw)
		}
	}

	r.scan(NonZero, emit)
}

// flattenSubpaths converts p into polylines in user space. Consecutive
// duplicate points are removed. Closed subpaths end with a copy of their
// start point.
func (r *Rasterizer) flattenSubpaths(p *path.Data) {
	r.lines = r.lines[:0]
	r.lineStart = r.lineStart[:0]
	r.lineClosed = r.lineClosed[:0]

	open := false
	var cur, start vec.Vec2
	appendPoint := func(_, b vec.Vec2) {
		last := r.lines[len(r.lines)-1]
		if b.Sub(last).Length() > zeroLengthThreshold {
			r.lines = append(r.lines, b)
		}
	}
	begin := func(pt vec.Vec2) {
		r.lineStart = append(r.lineStart, len(r.lines))
		r.lineClosed = append(r.lineClosed, false)
		r.lines = append(r.lines, pt)
		open = true
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			open = false
			k++
			continue
		case path.CmdClose:
			if open {
				appendPoint(cur, start)
				r.lineClosed[len(r.lineClosed)-1] = r.subpathLen(len(r.lineStart)-1) > 2
			} else if cur == start {
				begin(start)
			}
			open = false
			cur = start
			continue
		}

		if !open {
			begin(cur)
		}
		switch cmd {
		case path.CmdLineTo:
			appendPoint(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], appendPoint)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], appendPoint)
			cur = p.Coords[k+2]
			k += 3
		}
	}
}

func (r *Rasterizer) subpathLen(i int) int {
	end := len(r.lines)
	if i+1 < len(r.lineStart) {
		end = r.lineStart[i+1]
	}
	return end - r.lineStart[i]
}

func (r *Rasterizer) subpath(i int) []vec.Vec2 {
	start := r.lineStart[i]
	return r.lines[start : start+r.subpathLen(i)]
}

// addPolygon adds the closed polygon pts to the edge list, reversing it if
// necessary so that its signed area is positive.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if r.CTM[0]*r.CTM[3]-r.CTM[1]*r.CTM[2] < 0 {
		area = -area
	}

	n := len(pts)
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		if area < 0 {
			a, b = pts[n-1-i], pts[(2*n-2-i)%n]
		}
		r.addEdge(a, b)
	}
}

// addSegment adds the rectangle covering the segment a→b.
func (r *Rasterizer) addSegment(a, b vec.Vec2, hw float64) {
	d := b.Sub(a)
	l := d.Length()
	if l <= zeroLengthThreshold {
		return
	}
	n := vec.Vec2{X: -d.Y / l * hw, Y: d.X / l * hw}
	r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addJoin adds the join where segment a→b meets segment b→c.
func (r *Rasterizer) addJoin(a, b, c vec.Vec2, hw float64) {
	d0 := b.Sub(a)
	d1 := c.Sub(b)
	l0, l1 := d0.Length(), d1.Length()
	if l0 <= zeroLengthThreshold || l1 <= zeroLengthThreshold {
		return
	}
	t0 := d0.Mul(1 / l0)
	t1 := d1.Mul(1 / l1)
	cross := t0.X*t1.Y - t0.Y*t1.X
	if math.Abs(cross) < collinearityThreshold && t0.Dot(t1) > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(b, hw)
		return
	}

	// The join lies on the outer side of the turn.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := vec.Vec2{X: -t0.Y, Y: t0.X}.Mul(side * hw)
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side * hw)
	p0 := b.Add(n0)
	p1 := b.Add(n1)

	if r.Join == graphics.LineJoinMiter {
		// For the interior angle φ we have cos φ = -t0·t1. The miter
		// length relative to the line width is 1/sin(φ/2).
		sinHalf := math.Sqrt(max(0, (1+t0.Dot(t1))/2))
		bis := n0.Add(n1)
		if bl := bis.Length(); sinHalf > 0 && bl > 0 && 1/sinHalf <= r.MiterLimit {
			tip := b.Add(bis.Mul(hw / sinHalf / bl))
			r.addPolygon(b, p0, tip, p1)
			return
		}
	}
	r.addPolygon(b, p0, p1)
}

// addCap adds the cap at the end point p of a subpath. dir points away from
// the stroked segment.
func (r *Rasterizer) addCap(p, dir vec.Vec2, hw float64) {
	l := dir.Length()
	if l <= zeroLengthThreshold {
		return
	}
	t := dir.Mul(1 / l)
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, hw)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw)
		e := t.Mul(hw)
		r.addPolygon(p.Add(n), p.Add(n).Add(e), p.Sub(n).Add(e), p.Sub(n))
	}
}

// addCircle adds a polygon approximating the circle of radius rad around c.
// The number of vertices depends on the size of the circle in device space.
func (r *Rasterizer) addCircle(c vec.Vec2, rad float64) {
	sx := r.transformLinear(vec.Vec2{X: rad}).Length()
	sy := r.transformLinear(vec.Vec2{Y: rad}).Length()
	devRad := max(sx, sy)

	n := 8
	if devRad > r.Flatness {
		// chord error of an n-gon is rad·(1-cos(π/n))
		theta := 2 * math.Acos(max(-1, 1-r.Flatness/devRad))
		if theta > 0 {
			n = max(n, int(math.Ceil(2*math.Pi/theta)))
		}
	}
	n = min(n, 1024)

	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: c.X + rad*math.Cos(phi), Y: c.Y + rad*math.Sin(phi)}
	}
	r.addPolygon(pts...)
}
