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

import (
	"math"

	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   44 * 8,
	},
	{
		Name:   "line_square",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapSquare, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   52 * 8,
	},
	{
		Name:   "line_round",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapRound, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   44*8 + math.Pi*16,
	},
	{
		Name:   "line_diagonal",
		Path:   polyline(pt(12, 12), pt(52, 52)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   40 * math.Sqrt2 * 4,
	},
	{
		Name:   "square_miter",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   38*38 - 26*26,
	},
	{
		Name:   "square_bevel",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinBevel, MiterLimit: 10},
		Area:   38*38 - 26*26 - 4*4.5,
	},
	{
		Name:   "square_round",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, MiterLimit: 10},
		Area:   38*38 - 26*26 - 4*(9-math.Pi*9/4),
	},
	{
		Name:   "square_miter_limited",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 1.2},
		Area:   38*38 - 26*26 - 4*4.5,
	},
	{
		Name:   "seam",
		Path:   polyline(pt(0.5, 8.3), pt(63.5, 8.3)),
		Width:  64,
		Height: 16,
		Op:     Stroke{Width: 0.6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   63 * 0.6,
	},
}
