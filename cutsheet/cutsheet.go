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

// Package cutsheet writes the cut lines of a puzzle as vector graphics.
//
// Every interior edge is drawn exactly once, so that the output can be
// used as a template for cutting a printed image into pieces.
package cutsheet

import (
	"image/color"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/jigsaw"
)

// Sheet is the cut template of one puzzle.
type Sheet struct {
	// LineWidth is the width of the cut lines, in pixels.
	LineWidth float64

	// Color is the colour of the cut lines.
	Color color.Color

	// Margin is the blank space around the puzzle, in pixels.
	Margin float64

	seams         *path.Data
	width, height float64
}

// New returns the cut sheet for pattern p, drawn at the size given by g.
// The position of g is ignored.
func New(p *jigsaw.Pattern, g jigsaw.Grid) *Sheet {
	g = g.AtOrigin()
	return &Sheet{
		LineWidth: 0.5,
		Color:     color.Black,
		Margin:    10,
		seams:     jigsaw.Seams(p, g),
		width:     g.Width,
		height:    g.Height,
	}
}

// Size returns the size of the sheet, including the margins.
func (s *Sheet) Size() (w, h float64) {
	return s.width + 2*s.Margin, s.height + 2*s.Margin
}

// Path returns the cut lines, without the margin.
func (s *Sheet) Path() *path.Data {
	return s.seams
}
