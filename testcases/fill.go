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

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   34 * 34,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.25, 10.5, 43.75, 44.25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   33.5 * 33.75,
	},
	{
		Name:   "rectangle_clipped",
		Path:   rectangle(-10, -10, 32, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   32 * 64,
	},
	{
		Name:   "open_subpath",
		Path:   polyline(pt(10, 10), pt(54, 10), pt(54, 54)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   44 * 44 / 2,
	},
	{
		Name:   "nested_squares_evenodd",
		Path:   compound(rectangle(8, 8, 56, 56), rectangle(20, 20, 44, 44)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   48*48 - 24*24,
	},
	{
		Name:   "nested_squares_nonzero",
		Path:   compound(rectangle(8, 8, 56, 56), rectangle(20, 20, 44, 44)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   48 * 48,
	},
}
