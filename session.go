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

package jigsaw

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/jigsaw/canvas"
)

// ErrNoImage is returned by export operations if no image has been loaded.
var ErrNoImage = errors.New("jigsaw: no image loaded")

// MaxDim is the largest number of rows or columns accepted by [ParseDim].
const MaxDim = 1000

// Session holds the state of one puzzle: the source image, the view size,
// the grid geometry and the current pattern.
//
// The pattern is replaced as a whole whenever a new image is loaded or the
// number of rows or columns changes. Changing the view size only moves and
// scales the grid.
//
// A Session is not safe for concurrent use.
type Session struct {
	img        image.Image
	viewW      int // 0 means the natural size of the image
	viewH      int
	rows, cols int
	scaler     float64
	style      Style
	src        Source

	grid    Grid
	pattern *Pattern
}

// NewSession returns a session without an image.
func NewSession(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = newRandomSource()
	}
	s := &Session{
		rows:   o.rows,
		cols:   o.cols,
		scaler: o.scaler,
		style:  o.style,
		src:    o.src,
	}
	s.grid = Grid{Rows: s.rows, Cols: s.cols}
	return s
}

// Load sets the source image. The grid is fitted to the view and a new
// pattern is generated. Loading a nil image clears the session.
func (s *Session) Load(img image.Image) {
	s.img = img
	if img == nil {
		s.pattern = nil
		return
	}
	b := img.Bounds()
	Logger().Info("image loaded", slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
	s.fit()
	s.rebuild()
}

// Image returns the current source image, or nil.
func (s *Session) Image() image.Image {
	return s.img
}

// SetGrid changes the number of rows and columns and generates a new
// pattern. Values below 1 are treated as 1.
func (s *Session) SetGrid(rows, cols int) {
	s.rows = max(rows, 1)
	s.cols = max(cols, 1)
	s.fit()
	s.rebuild()
}

// Resize changes the size of the view. The grid is refitted, but the
// pattern is kept. Values below 1 are treated as 1.
func (s *Session) Resize(w, h int) {
	s.viewW = max(w, 1)
	s.viewH = max(h, 1)
	s.fit()
}

// ViewSize returns the size of the view. Before Resize has been called,
// this is the natural size of the image.
func (s *Session) ViewSize() (w, h int) {
	if s.viewW > 0 {
		return s.viewW, s.viewH
	}
	if s.img != nil {
		b := s.img.Bounds()
		return b.Dx(), b.Dy()
	}
	return 0, 0
}

// Grid returns the current placement of the puzzle in the view.
func (s *Session) Grid() Grid {
	return s.grid
}

// Pattern returns the current pattern, or nil if no image is loaded.
func (s *Session) Pattern() *Pattern {
	return s.pattern
}

// Pieces returns all pieces of the current pattern in row-major order.
func (s *Session) Pieces() []Piece {
	if s.pattern == nil {
		return nil
	}
	return s.pattern.Pieces()
}

// Style returns the drawing style of the session.
func (s *Session) Style() Style {
	return s.style
}

// fit scales the image to fill a fraction s.scaler of the view, keeping the
// aspect ratio, and centres it.
func (s *Session) fit() {
	g := Grid{Rows: s.rows, Cols: s.cols}
	if s.img == nil {
		s.grid = g
		return
	}

	b := s.img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	vw, vh := s.ViewSize()
	if iw > 0 && ih > 0 {
		scale := s.scaler * min(float64(vw)/iw, float64(vh)/ih)
		g.Width = iw * scale
		g.Height = ih * scale
		g.X = (float64(vw) - g.Width) / 2
		g.Y = (float64(vh) - g.Height) / 2
	}
	s.grid = g
	Logger().Debug("grid fitted",
		slog.Float64("x", g.X), slog.Float64("y", g.Y),
		slog.Float64("width", g.Width), slog.Float64("height", g.Height))
}

func (s *Session) rebuild() {
	if s.img == nil {
		return
	}
	s.pattern = NewPattern(s.rows, s.cols, s.src)
	Logger().Debug("pattern rebuilt", slog.Int("rows", s.rows), slog.Int("cols", s.cols))
}

// Redraw paints the background, a preview of the whole image, all pieces
// and a border around the puzzle onto dst. Without an image, Redraw does
// nothing.
func (s *Session) Redraw(dst Surface) {
	if s.img == nil || s.pattern == nil {
		return
	}
	vw, vh := s.ViewSize()
	dst.FillRect(rect.Rect{URx: float64(vw), URy: float64(vh)}, s.style.Background)
	s.drawPuzzle(dst, s.grid)
	dst.Stroke(rectPath(s.grid.Bounds()), s.style.BorderWidth, s.style.BorderColor)
}

// drawPuzzle draws the full image into g and then every piece on top.
func (s *Session) drawPuzzle(dst Surface, g Grid) {
	b := s.img.Bounds()
	full := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	dst.DrawImage(s.img, full, g.Bounds())
	for _, pc := range s.pattern.Pieces() {
		DrawPiece(dst, s.img, s.rows, s.cols, pc, g.Cell(pc.Row, pc.Col), s.style)
	}
}

// ExportSize returns the size of the exported image in pixels.
func (s *Session) ExportSize() (w, h int) {
	return int(math.Round(s.grid.Width)), int(math.Round(s.grid.Height))
}

// ExportImage renders the puzzle onto a new image, with the puzzle's
// top-left corner at the origin. The size of the result matches the
// size of the puzzle in the view.
//
// The top and left borders are 3 pixels wide, the bottom and right
// borders 2 pixels wide.
func (s *Session) ExportImage() (*image.RGBA, error) {
	if s.img == nil || s.pattern == nil {
		return nil, ErrNoImage
	}
	w, h := s.ExportSize()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("jigsaw: export size %dx%d is empty", w, h)
	}

	c := canvas.New(w, h)
	g := s.grid.AtOrigin()
	s.drawPuzzle(c, g)

	W, H := float64(w), float64(h)
	bc := s.style.BorderColor
	c.Stroke(linePath(0, 0, W, 0), 3, bc)
	c.Stroke(linePath(0, 0, 0, H), 3, bc)
	c.Stroke(linePath(W-1, 0, W-1, H), 2, bc)
	c.Stroke(linePath(0, H-1, W, H-1), 2, bc)

	Logger().Debug("puzzle exported", slog.Int("width", w), slog.Int("height", h))
	return c.Image(), nil
}

// Export renders the puzzle and writes it to w in the given format.
func (s *Session) Export(w io.Writer, format imaging.Format) error {
	img, err := s.ExportImage()
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, format); err != nil {
		return fmt.Errorf("jigsaw: encoding %s: %w", format, err)
	}
	return nil
}

// Save renders the puzzle and writes it to a file. The image format is
// chosen by the file name extension.
func (s *Session) Save(filename string) error {
	img, err := s.ExportImage()
	if err != nil {
		return err
	}
	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("jigsaw: saving %s: %w", filename, err)
	}
	return nil
}

// ParseDim interprets user input for the number of rows or columns.
// The result is the nearest integer in the range [1, MaxDim]; input which
// is not a number gives 1.
func ParseDim(text string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) || math.IsNaN(v) {
		return 1
	}
	v = math.Round(v)
	switch {
	case v < 1:
		return 1
	case v > MaxDim:
		return MaxDim
	}
	return int(v)
}
