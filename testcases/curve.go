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

import "seehuhn.de/go/geom/path"

var curveCases = []TestCase{
	{
		Name: "quadratic",
		Path: (&path.Data{}).
			MoveTo(pt(8, 56)).
			QuadTo(pt(32, 0), pt(56, 56)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "cubic_scurve",
		Path: (&path.Data{}).
			MoveTo(pt(8, 32)).
			CubeTo(pt(24, 0), pt(40, 64), pt(56, 32)).
			LineTo(pt(56, 56)).
			LineTo(pt(8, 56)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle",
		Path:   addCircle(&path.Data{}, 32, 32, 24, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle_small",
		Path:   addCircle(&path.Data{}, 8.5, 8.5, 3, false),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_evenodd",
		Path:   addCircle(addCircle(&path.Data{}, 32, 32, 26, false), 32, 32, 16, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "ring_nonzero",
		Path:   addCircle(addCircle(&path.Data{}, 32, 32, 26, false), 32, 32, 16, true),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}
