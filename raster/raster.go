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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is reported one scanline at a time through an [Emitter]. The
// jigsaw canvas uses fill coverage for clip masks and stroke coverage for
// the seams between pieces.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Emitter receives the coverage of scanline y, starting at pixel xMin.
// The coverage slice is only valid during the call.
type Emitter func(y, xMin int, coverage []float32)

// Rule selects how winding numbers are turned into coverage.
type Rule int

const (
	// NonZero treats every point with a non-zero winding number as inside.
	NonZero Rule = iota

	// EvenOdd treats points with an odd winding number as inside.
	EvenOdd
)

// edge is a line segment in device coordinates with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the segment pointed down, -1 if up
}

// Rasterizer computes coverage values for filled and stroked paths.
// Buffers are kept between calls, so a single Rasterizer should be reused
// for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds all output, in device coordinates.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins, relative to the
	// stroke width. Joins which would be longer are beveled.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64

	lines      []vec.Vec2 // flattened subpaths, contiguous
	lineStart  []int
	lineClosed []bool
}

// New returns a Rasterizer for the given clip rectangle. All other fields
// are set to the PDF defaults.
func New(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Reset changes the clip rectangle and restores the default CTM.
// Stroke parameters are left unchanged.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.CTM = matrix.Identity
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit Emitter) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit Emitter) {
	r.Fill(p, EvenOdd, emit)
}

// Fill computes the coverage of the interior of p.
// Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit Emitter) {
	r.beginEdges()

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}

	r.scan(rule, emit)
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dd := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dd > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dd / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments.
// The number of segments is chosen with Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms the segment a→b into device space and appends it to
// the edge list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	ax := m[0]*a.X + m[2]*a.Y + m[4]
	ay := m[1]*a.X + m[3]*a.Y + m[5]
	bx := m[0]*b.X + m[2]*b.Y + m[4]
	by := m[1]*b.X + m[3]*b.Y + m[5]

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(ax, bx), max(ax, bx)
		r.byMin, r.byMax = min(ay, by), max(ay, by)
		r.bboxEmpty = false
	} else {
		r.bxMin = min(r.bxMin, ax, bx)
		r.bxMax = max(r.bxMax, ax, bx)
		r.byMin = min(r.byMin, ay, by)
		r.byMax = max(r.byMax, ay, by)
	}

	dy := by - ay
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	e := edge{x0: ax, y0: ay, x1: bx, y1: by, dir: 1}
	if dy < 0 {
		e = edge{x0: bx, y0: by, x1: ax, y1: ay, dir: -1}
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	r.edges = append(r.edges, e)
}

// Coverage accumulation:
//
// For every pixel of a scanline we collect two numbers. cover is the signed
// height of all edge pieces crossing the pixel column; it is carried over
// to every pixel further right. area is the part of cover which applies to
// the pixel itself, weighted by how much of the pixel lies right of the edge.
// The coverage of pixel i is the sum of cover over all pixels left of i,
// plus area[i].

// scan converts the collected edges into coverage, one scanline at a time,
// using an active edge list.
func (r *Rasterizer) scan(rule Rule, emit Emitter) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, top, bot, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			if next == len(r.edges) && len(r.active) == 0 {
				return
			}
			continue
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if run, off := trimZeros(r.cover); run != nil {
			emit(y, xMin+off, run)
		}
	}
}

// accumulate adds the part of e between the scanline boundaries top and
// bot to the cover and area buffers. It reports whether anything was added.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) bool {
	yt := max(top, e.y0)
	yb := min(bot, e.y1)
	if yb <= yt {
		return false
	}

	xt := e.x0 + e.dxdy*(yt-e.y0)
	xb := e.x0 + e.dxdy*(yb-e.y0)
	left, right := min(xt, xb), max(xt, xb)
	pl := int(math.Floor(left))
	pr := int(math.Floor(right))

	if pl >= xMax {
		return false
	}
	if pr < xMin {
		c := e.dir * float32(yb-yt)
		r.cover[0] += c
		r.area[0] += c
		return true
	}

	if pl == pr {
		r.deposit(pl, e.dir*float32(yb-yt), (xt+xb)/2, xMin, xMax)
		return true
	}

	// The edge crosses several pixel columns within this scanline.
	dydx := 1 / e.dxdy
	for px := pl; px <= pr; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yc := e.y0 + dydx*(float64(px+1)-e.x0)
		s0 := max(min(ya, yc), yt)
		s1 := min(max(ya, yc), yb)
		if s1 <= s0 {
			continue
		}
		xm := e.x0 + e.dxdy*((s0+s1)/2-e.y0)
		r.deposit(px, e.dir*float32(s1-s0), xm, xMin, xMax)
	}
	return true
}

// deposit records an edge piece of signed height c crossing pixel column px
// at mean horizontal position xm.
func (r *Rasterizer) deposit(px int, c float32, xm float64, xMin, xMax int) {
	switch {
	case px < xMin:
		r.cover[0] += c
		r.area[0] += c
	case px < xMax:
		i := px - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(xm-float64(px)))
	}
}

// integrateNonZero turns cover/area into coverage using the nonzero rule.
// The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns cover/area into coverage using the even-odd rule.
// The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero entry, together with its offset. If all values are zero, nil is
// returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript. Joins with an interior
	// angle below about 11.5 degrees are beveled.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimum vertical extent of an edge
	// which contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the sine of the turning angle below which
	// two stroked segments need no join.
	collinearityThreshold = 1e-6
)
