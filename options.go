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
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Option configures a [Session] during creation.
//
// Example:
//
//	s := jigsaw.NewSession(jigsaw.WithRows(4), jigsaw.WithCols(6), jigsaw.WithSeed(1))
type Option func(*options)

type options struct {
	rows, cols int
	scaler     float64
	style      Style
	src        Source
}

func defaultOptions() options {
	return options{
		rows:   2,
		cols:   2,
		scaler: 0.95,
		style:  DefaultStyle,
	}
}

// WithRows sets the initial number of rows. Values below 1 are treated as 1.
func WithRows(n int) Option {
	return func(o *options) {
		o.rows = max(n, 1)
	}
}

// WithCols sets the initial number of columns. Values below 1 are treated
// as 1.
func WithCols(n int) Option {
	return func(o *options) {
		o.cols = max(n, 1)
	}
}

// WithSource sets the random source used to generate patterns.
func WithSource(src Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed makes pattern generation deterministic.
func WithSeed(seed uint64) Option {
	return WithSource(NewSource(seed))
}

// WithScaler sets the fraction of the view which the puzzle may occupy.
// Values outside (0, 1] are ignored.
func WithScaler(f float64) Option {
	return func(o *options) {
		if f > 0 && f <= 1 {
			o.scaler = f
		}
	}
}

// WithStyle sets the colours and line widths used for drawing.
// Unset fields keep their default values.
func WithStyle(st Style) Option {
	return func(o *options) {
		if st.SeamWidth > 0 {
			o.style.SeamWidth = st.SeamWidth
		}
		if st.SeamColor != nil {
			o.style.SeamColor = st.SeamColor
		}
		if st.BorderWidth > 0 {
			o.style.BorderWidth = st.BorderWidth
		}
		if st.BorderColor != nil {
			o.style.BorderColor = st.BorderColor
		}
		if st.Background != nil {
			o.style.Background = st.Background
		}
	}
}

// WithBackground sets the colour used to clear the view before drawing.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.style.Background = c
		}
	}
}

// ParseColor parses a colour in hex notation, like "#f5f5f5" or "#fff".
// The leading "#" is optional.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
