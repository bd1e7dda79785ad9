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
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/llgcode/draw2d/draw2dsvg"
	"seehuhn.de/go/geom/path"
)

// svg converts the sheet into an SVG document.
func (s *Sheet) svg() *draw2dsvg.Svg {
	w, h := s.Size()
	svg := draw2dsvg.NewSvg()
	svg.Width = strconv.Itoa(int(w + 0.5))
	svg.Height = strconv.Itoa(int(h + 0.5))

	gc := draw2dsvg.NewGraphicContext(svg)
	gc.SetStrokeColor(s.Color)
	gc.SetLineWidth(s.LineWidth)
	gc.Translate(s.Margin, s.Margin)

	for cmd, pts := range s.seams.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			gc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			gc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			gc.CubicCurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			gc.Close()
		}
	}
	gc.Stroke()
	return svg
}

// WriteSVG writes the sheet as an SVG document.
func (s *Sheet) WriteSVG(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(s.svg()); err != nil {
		return fmt.Errorf("cutsheet: encoding SVG: %w", err)
	}
	return enc.Close()
}

// SaveSVG writes the sheet to an SVG file.
func (s *Sheet) SaveSVG(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.WriteSVG(f)
}
