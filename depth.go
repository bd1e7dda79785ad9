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

// Package jigsaw renders images as grids of interlocking puzzle pieces.
//
// A [Pattern] assigns a random [Depth] to every interior edge of a grid.
// [Outline] turns the four depths of a [Piece] into a closed path, and
// [DrawPiece] uses this path to clip the matching part of the source image
// onto a [Surface]. A [Session] ties these together for one image.
package jigsaw

import (
	"math/rand/v2"
)

// Depth describes one edge of a puzzle piece.
//
// The zero value means that the edge is absent, i.e. the piece lies on the
// boundary of the puzzle on this side and the edge is straight. Otherwise
// the sign gives the direction of the bump: positive depths are tabs which
// bulge out of the piece, negative depths are blanks which indent into the
// piece. The magnitude, between [MinDepth] and [MaxDepth], is the position
// of the bump along the edge, as a fraction of the edge length.
type Depth float64

// Flat is the depth of an edge on the grid boundary.
const Flat Depth = 0

// Range of the magnitude of present depths.
const (
	MinDepth = 0.3
	MaxDepth = 0.7
)

// Present reports whether the edge carries a bump.
func (d Depth) Present() bool {
	return d != 0
}

// Sign returns +1 for tabs, -1 for blanks and 0 for absent edges.
func (d Depth) Sign() float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// Magnitude returns the position of the bump along the edge.
func (d Depth) Magnitude() float64 {
	if d < 0 {
		return float64(-d)
	}
	return float64(d)
}

// Mirror returns the depth of the same edge, seen from the neighbouring
// piece.
func (d Depth) Mirror() Depth {
	return -d
}

// Source is the random number source used to generate patterns.
// [*rand.Rand] implements this interface.
type Source interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

// NewSource returns a deterministic random source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newRandomSource returns a randomly seeded source.
func newRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// RandomDepth draws a present depth from src. The sign is decided by the
// first draw, the magnitude is uniform in [MinDepth, MaxDepth).
func RandomDepth(src Source) Depth {
	sign := 1.0
	if src.Float64() < 0.5 {
		sign = -1
	}
	m := MinDepth + (MaxDepth-MinDepth)*src.Float64()
	return Depth(sign * m)
}
