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

package cutsheet_test

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/jigsaw"
	"seehuhn.de/go/jigsaw/cutsheet"
)

func newSheet(t *testing.T) *cutsheet.Sheet {
	t.Helper()
	p := jigsaw.NewPattern(3, 4, jigsaw.NewSource(1))
	g := jigsaw.Grid{Rows: 3, Cols: 4, X: 50, Y: 20, Width: 400, Height: 300}
	return cutsheet.New(p, g)
}

func TestSize(t *testing.T) {
	s := newSheet(t)
	w, h := s.Size()
	assert.Equal(t, 420.0, w)
	assert.Equal(t, 320.0, h)

	// the grid position is ignored
	first := s.Path().Coords[0]
	assert.GreaterOrEqual(t, first.X, 0.0)
	assert.LessOrEqual(t, first.X, 400.0)

	cubics := 0
	for _, cmd := range s.Path().Cmds {
		if cmd == path.CmdCubeTo {
			cubics++
		}
	}
	assert.Equal(t, 2*(2*4+3*3), cubics)
}

func TestWriteSVG(t *testing.T) {
	s := newSheet(t)
	buf := &bytes.Buffer{}
	require.NoError(t, s.WriteSVG(buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `width="420"`)
	assert.Contains(t, out, `height="320"`)
	assert.Contains(t, out, "<path")

	// the output is well-formed XML
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			require.ErrorContains(t, err, "EOF")
			break
		}
	}
}

func TestSaveSVG(t *testing.T) {
	s := newSheet(t)
	fname := filepath.Join(t.TempDir(), "cut.svg")
	require.NoError(t, s.SaveSVG(fname))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestSavePDF(t *testing.T) {
	s := newSheet(t)
	fname := filepath.Join(t.TempDir(), "cut.pdf")
	require.NoError(t, s.SavePDF(fname))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "missing PDF header")
}

func TestSaveErrors(t *testing.T) {
	s := newSheet(t)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "cut")
	assert.Error(t, s.SaveSVG(missing+".svg"))
	assert.Error(t, s.SavePDF(missing+".pdf"))
}
