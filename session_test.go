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

package jigsaw_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/jigsaw"
	"seehuhn.de/go/jigsaw/canvas"
)

func TestSessionNoImage(t *testing.T) {
	s := jigsaw.NewSession()

	rec := &recorder{}
	s.Redraw(rec)
	assert.Empty(t, rec.calls, "Redraw without image must not draw")

	_, err := s.ExportImage()
	assert.ErrorIs(t, err, jigsaw.ErrNoImage)
	assert.ErrorIs(t, s.Export(&bytes.Buffer{}, imaging.PNG), jigsaw.ErrNoImage)
	assert.Nil(t, s.Pieces())
	assert.Nil(t, s.Pattern())

	// changing the grid without an image is allowed
	s.SetGrid(3, 3)
	s.Resize(100, 100)
	assert.Nil(t, s.Pattern())
}

func TestSessionLoad(t *testing.T) {
	s := jigsaw.NewSession(jigsaw.WithSeed(1))
	s.Load(uniform(200, 100, color.White))

	w, h := s.ViewSize()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	g := s.Grid()
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 2, g.Cols)
	assert.InDelta(t, 190, g.Width, 1e-9)
	assert.InDelta(t, 95, g.Height, 1e-9)
	assert.InDelta(t, 5, g.X, 1e-9)
	assert.InDelta(t, 2.5, g.Y, 1e-9)

	require.NotNil(t, s.Pattern())
	assert.Len(t, s.Pieces(), 4)
}

func TestSessionResizeKeepsPattern(t *testing.T) {
	s := jigsaw.NewSession(jigsaw.WithSeed(2))
	s.Load(uniform(200, 100, color.White))
	before := s.Pattern()

	s.Resize(400, 100)
	assert.Same(t, before, s.Pattern())

	g := s.Grid()
	assert.InDelta(t, 190, g.Width, 1e-9)
	assert.InDelta(t, 95, g.Height, 1e-9)
	assert.InDelta(t, 105, g.X, 1e-9)
	assert.InDelta(t, 2.5, g.Y, 1e-9)

	s.Resize(0, -4)
	w, h := s.ViewSize()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestSessionSetGrid(t *testing.T) {
	s := jigsaw.NewSession(jigsaw.WithSeed(3))
	s.Load(uniform(120, 90, color.White))
	before := s.Pattern()

	s.SetGrid(3, 4)
	p := s.Pattern()
	require.NotSame(t, before, p)
	assert.Equal(t, 3, p.Rows())
	assert.Equal(t, 4, p.Cols())
	assert.Equal(t, 3, s.Grid().Rows)
	assert.Equal(t, 4, s.Grid().Cols)

	// same dimensions give a fresh pattern
	s.SetGrid(3, 4)
	assert.NotSame(t, p, s.Pattern())
	assert.NotEqual(t, p.Pieces(), s.Pattern().Pieces())

	s.SetGrid(0, -1)
	assert.Equal(t, 1, s.Pattern().Rows())
	assert.Equal(t, 1, s.Pattern().Cols())
	assert.Equal(t, []jigsaw.Piece{{}}, s.Pieces())
}

func TestSessionReloadReplacesPattern(t *testing.T) {
	s := jigsaw.NewSession(jigsaw.WithRows(4), jigsaw.WithCols(4), jigsaw.WithSeed(4))
	s.Load(uniform(64, 64, color.White))
	before := s.Pattern()
	s.Load(uniform(64, 64, color.Black))
	assert.NotSame(t, before, s.Pattern())
	assert.NotEqual(t, before.Pieces(), s.Pattern().Pieces())

	s.Load(nil)
	assert.Nil(t, s.Pattern())
	assert.Nil(t, s.Image())
}

func TestSessionRedraw(t *testing.T) {
	s := jigsaw.NewSession(jigsaw.WithSeed(5))
	s.Load(uniform(80, 60, color.White))

	rec := &recorder{}
	s.Redraw(rec)

	want := []string{"fill", "image"}
	for range 4 {
		want = append(want, "push", "image", "pop", "stroke")
	}
	want = append(want, "stroke")
	require.Equal(t, want, rec.ops())

	assert.Equal(t, rect.Rect{URx: 80, URy: 60}, rec.calls[0].r1)
	assert.Equal(t, jigsaw.DefaultStyle.Background, rec.calls[0].col)
	assert.Equal(t, s.Grid().Bounds(), rec.calls[1].r2)
	assert.Equal(t, image.Pt(80, 60), rec.calls[1].imgSize)

	border := rec.calls[len(rec.calls)-1]
	assert.Equal(t, 1.0, border.width)
}

func TestSessionRedrawCanvas(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	s := jigsaw.NewSession(jigsaw.WithSeed(6), jigsaw.WithScaler(0.5))
	s.Load(uniform(100, 100, red))

	w, h := s.ViewSize()
	c := canvas.New(w, h)
	s.Redraw(c)

	img := c.Image()
	assert.Equal(t, jigsaw.DefaultStyle.Background, color.Color(img.RGBAAt(2, 2)))
	assert.Equal(t, red, img.RGBAAt(37, 37))
}

func TestSessionExportSize(t *testing.T) {
	s := jigsaw.NewSession(jigsaw.WithSeed(7))
	s.Load(uniform(200, 100, color.White))

	img, err := s.ExportImage()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 190, 95), img.Bounds())

	// the export size follows the grid geometry, not the view size
	s.Resize(1000, 37)
	g := s.Grid()
	pat := s.Pattern()
	pieces := s.Pieces()
	img, err = s.ExportImage()
	require.NoError(t, err)

	// exporting leaves the view state alone
	assert.Equal(t, g, s.Grid())
	assert.Same(t, pat, s.Pattern())
	assert.Equal(t, pieces, s.Pieces())
	assert.Equal(t, int(math.Round(g.Width)), img.Bounds().Dx())
	assert.Equal(t, int(math.Round(g.Height)), img.Bounds().Dy())
	w, h := s.ExportSize()
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())
}

func TestSessionExportPixels(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	black := color.RGBA{A: 255}
	s := jigsaw.NewSession(jigsaw.WithSeed(8))
	s.Load(uniform(200, 200, red))

	img, err := s.ExportImage()
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 190, 190), img.Bounds())

	// 3 pixel border top and left, centred on the edge
	assert.Equal(t, black, img.RGBAAt(0, 50))
	assert.Equal(t, black, img.RGBAAt(50, 0))
	// 2 pixel border bottom and right, centred on W-1 and H-1
	assert.Equal(t, black, img.RGBAAt(189, 50))
	assert.Equal(t, black, img.RGBAAt(50, 189))

	// piece centres show the image
	assert.Equal(t, red, img.RGBAAt(47, 47))
	assert.Equal(t, red, img.RGBAAt(142, 142))
}

func TestSessionExportEncode(t *testing.T) {
	s := jigsaw.NewSession(jigsaw.WithSeed(9), jigsaw.WithRows(3), jigsaw.WithCols(2))
	s.Load(uniform(60, 80, color.White))

	buf := &bytes.Buffer{}
	require.NoError(t, s.Export(buf, imaging.PNG))
	cfg, err := png.DecodeConfig(buf)
	require.NoError(t, err)
	assert.Equal(t, 57, cfg.Width)
	assert.Equal(t, 76, cfg.Height)

	fname := filepath.Join(t.TempDir(), "puzzle.jpg")
	require.NoError(t, s.Save(fname))
	img, err := imaging.Open(fname)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(57, 76), img.Bounds().Size())
}

func TestParseDim(t *testing.T) {
	cases := map[string]int{
		"3":     3,
		" 7 ":   7,
		"2.6":   3,
		"2.4":   2,
		"0":     1,
		"-5":    1,
		"abc":   1,
		"":      1,
		"NaN":   1,
		"1e9":   jigsaw.MaxDim,
		"1e400": jigsaw.MaxDim,
		"-Inf":  1,
	}
	for in, want := range cases {
		assert.Equal(t, want, jigsaw.ParseDim(in), "ParseDim(%q)", in)
	}
}
