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

// Command jigsaw renders an image as a jigsaw puzzle.
//
// Usage:
//
//	jigsaw [flags] image
//	jigsaw -serve [addr]
//
// The input may be any format understood by the registered decoders,
// including PNM files as written by scanners. The puzzle is written to the
// file given by -o, in the format implied by its extension. With -svg and
// -pdf, cut sheets with the outlines of all pieces are written as well.
// With -view WxH, the puzzle is also drawn centred in a window-sized image,
// on the background colour given by -bg.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	_ "github.com/go-forks/gopnm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/jigsaw"
	"seehuhn.de/go/jigsaw/canvas"
	"seehuhn.de/go/jigsaw/cutsheet"
	"seehuhn.de/go/jigsaw/server"
)

func main() {
	rows := flag.String("rows", "2", "number of rows")
	cols := flag.String("cols", "2", "number of columns")
	seed := flag.Uint64("seed", 0, "random seed (0 picks a random pattern)")
	scale := flag.Float64("scale", 0.95, "fraction of the image covered by the puzzle")
	out := flag.String("o", "puzzle.png", "output image")
	svgOut := flag.String("svg", "", "write an SVG cut sheet to this file")
	pdfOut := flag.String("pdf", "", "write a PDF cut sheet to this file")
	lineColor := flag.String("color", "", "colour of seams and border, e.g. #303030")
	background := flag.String("bg", "", "background colour of the view, e.g. #f5f5f5")
	view := flag.String("view", "", "also render the puzzle into a view of this size, e.g. 800x600")
	viewOut := flag.String("viewout", "view.png", "output file for -view")
	verbose := flag.Bool("v", false, "log debug messages")
	serve := flag.Bool("serve", false, "run the HTTP server")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] image\n       %s -serve [addr]\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	jigsaw.SetLogger(logger)

	if *serve {
		if err := runServer(logger, flag.Arg(0)); err != nil {
			logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []jigsaw.Option{
		jigsaw.WithRows(jigsaw.ParseDim(*rows)),
		jigsaw.WithCols(jigsaw.ParseDim(*cols)),
		jigsaw.WithScaler(*scale),
	}
	if *seed != 0 {
		opts = append(opts, jigsaw.WithSeed(*seed))
	}
	if *lineColor != "" {
		c, err := jigsaw.ParseColor(*lineColor)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		opts = append(opts, jigsaw.WithStyle(jigsaw.Style{SeamColor: c, BorderColor: c}))
	}
	if *background != "" {
		c, err := jigsaw.ParseColor(*background)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		opts = append(opts, jigsaw.WithBackground(c))
	}

	outs := outputs{image: *out, svg: *svgOut, pdf: *pdfOut}
	if *view != "" {
		w, h, err := parseSize(*view)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		outs.view, outs.viewW, outs.viewH = *viewOut, w, h
	}

	err := run(flag.Arg(0), outs, opts)
	if err != nil {
		logger.Error("failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// outputs lists the files written by run. Empty names are skipped.
type outputs struct {
	image, svg, pdf string

	view         string
	viewW, viewH int
}

func run(in string, outs outputs, opts []jigsaw.Option) error {
	img, err := imaging.Open(in, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	s := jigsaw.NewSession(opts...)
	s.Load(img)

	var errs []error
	if outs.image != "" {
		errs = append(errs, s.Save(outs.image))
	}
	if outs.svg != "" || outs.pdf != "" {
		sheet := cutsheet.New(s.Pattern(), s.Grid())
		if outs.svg != "" {
			errs = append(errs, sheet.SaveSVG(outs.svg))
		}
		if outs.pdf != "" {
			errs = append(errs, sheet.SavePDF(outs.pdf))
		}
	}
	if outs.view != "" {
		// Resize moves the grid, so this comes after the exports.
		s.Resize(outs.viewW, outs.viewH)
		vw, vh := s.ViewSize()
		c := canvas.New(vw, vh)
		s.Redraw(c)
		errs = append(errs, imaging.Save(c.Image(), outs.view))
	}
	return errors.Join(errs...)
}

// parseSize parses a size of the form WxH.
func parseSize(text string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(text), "x")
	if ok {
		w, err = strconv.Atoi(strings.TrimSpace(ws))
	}
	if ok && err == nil {
		h, err = strconv.Atoi(strings.TrimSpace(hs))
	}
	if !ok || err != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", text)
	}
	return w, h, nil
}

// runServer listens on addr. Without an address, the PORT environment
// variable is used, or port 8080.
func runServer(logger *slog.Logger, addr string) error {
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		addr = ":" + port
	} else if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	srv := server.New(logger)
	defer srv.Close()

	logger.Info("server started", slog.String("addr", addr))
	return http.ListenAndServe(addr, srv)
}
