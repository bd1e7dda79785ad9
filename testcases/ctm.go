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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
		Area:   40 * 40,
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
		Area:   40 * 40,
	},
	{
		Name:   "rotate_30deg",
		Path:   rectangle(-16, -16, 16, 16),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
		Area:   32 * 32,
	},
	{
		Name:   "flip_y",
		Path:   polygon(pt(10, 10), pt(54, 10), pt(32, 54)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
		Area:   44 * 44 / 2,
	},
	{
		Name:   "circle_to_ellipse",
		Path:   addCircle(&path.Data{}, 0, 0, 10, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2.5, 1).Translate(32, 32),
	},
}
