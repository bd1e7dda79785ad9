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

package cutsheet

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// SavePDF writes the sheet to a single-page PDF file.
// One pixel corresponds to one PDF point.
func (s *Sheet) SavePDF(filename string) error {
	w, h := s.Size()
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("cutsheet: %w", err)
	}

	// PDF origin is bottom-left; puzzle coordinates start at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, s.Margin, h - s.Margin})

	page.SetStrokeColor(pdfcolor.DeviceGray(grayLevel(s.Color)))
	page.SetLineWidth(s.LineWidth)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for cmd, pts := range s.seams.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}

// grayLevel converts c into a gray value between 0 (black) and 1 (white).
func grayLevel(c color.Color) float64 {
	g := color.Gray16Model.Convert(c).(color.Gray16)
	return float64(g.Y) / 0xffff
}
