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

// Command genpdf draws the outlines of all pieces in the piece catalogue
// onto a single PDF page, for visual inspection.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/jigsaw"
	"seehuhn.de/go/jigsaw/testcases"
)

const (
	cellW   = 120.0
	cellH   = 90.0
	perLine = 4
)

func main() {
	out := flag.String("o", "pieces.pdf", "output file")
	flag.Parse()

	if err := generatePDF(*out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generatePDF(fname string) error {
	margin := jigsaw.TabHeight(rect.Rect{URx: cellW, URy: cellH})
	pitchX := cellW + 2*margin
	pitchY := cellH + 2*margin
	lines := (len(testcases.Pieces) + perLine - 1) / perLine

	paper := &pdf.Rectangle{
		URx: perLine * pitchX,
		URy: float64(lines) * pitchY,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; piece outlines assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.75)
	page.SetLineJoin(graphics.LineJoinRound)

	for i, pc := range testcases.Pieces {
		x := float64(i%perLine)*pitchX + margin
		y := float64(i/perLine)*pitchY + margin
		cell := rect.Rect{LLx: x, LLy: y, URx: x + cellW, URy: y + cellH}
		piece := jigsaw.Piece{
			Top:    jigsaw.Depth(pc.Top),
			Right:  jigsaw.Depth(pc.Right),
			Bottom: jigsaw.Depth(pc.Bottom),
			Left:   jigsaw.Depth(pc.Left),
		}

		for cmd, pts := range jigsaw.Outline(piece, cell).Iter().ToCubic() {
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
	}

	return page.Close()
}
