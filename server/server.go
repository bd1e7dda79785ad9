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

// Package server provides an HTTP interface for turning uploaded images
// into jigsaw puzzles.
//
// POST /api/puzzle returns the rendered puzzle as PNG or JPEG,
// POST /api/cutsheet returns the outlines of the pieces as SVG.
// Both take a multipart form with the fields image, rows, cols and
// (optionally) seed. GET / serves a small upload form.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/jigsaw"
	"seehuhn.de/go/jigsaw/cutsheet"
)

//go:embed frontend
var frontendFS embed.FS

const (
	defaultMaxUpload = 10 << 20 // 10 MiB
	defaultMaxGrid   = 50
	defaultMaxPixels = 40_000_000
)

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/webp": true,
}

var outputFormats = map[string]struct {
	format      imaging.Format
	contentType string
}{
	"":     {imaging.PNG, "image/png"},
	"png":  {imaging.PNG, "image/png"},
	"jpeg": {imaging.JPEG, "image/jpeg"},
	"jpg":  {imaging.JPEG, "image/jpeg"},
}

// Server is the HTTP handler of the puzzle service.
type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	limit  *rateLimiter

	maxUpload int64
	maxPixels int64
	maxGrid   int
	rate      int
	interval  time.Duration
}

// Option configures a [Server].
type Option func(*Server)

// WithMaxUpload sets the largest accepted request body, in bytes.
func WithMaxUpload(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUpload = n
		}
	}
}

// WithMaxPixels sets the largest accepted image size, in pixels.
// Larger images are rejected before they are decoded.
func WithMaxPixels(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxPixels = n
		}
	}
}

// WithMaxGrid limits the number of rows and columns of a puzzle.
// Larger requests are clamped.
func WithMaxGrid(n int) Option {
	return func(s *Server) {
		s.maxGrid = min(max(n, 1), jigsaw.MaxDim)
	}
}

// WithRateLimit allows each client n rendering requests per interval.
func WithRateLimit(n int, interval time.Duration) Option {
	return func(s *Server) {
		s.rate = n
		s.interval = interval
	}
}

// New returns a server which logs to logger. A nil logger discards all
// messages.
func New(logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		maxUpload: defaultMaxUpload,
		maxPixels: defaultMaxPixels,
		maxGrid:   defaultMaxGrid,
		rate:      10,
		interval:  time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.limit = newRateLimiter(s.rate, s.interval)
	s.routes()
	return s
}

// Close stops the background work of the server.
func (s *Server) Close() error {
	s.limit.stop()
	return nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/puzzle", s.handlePuzzle)
	s.mux.HandleFunc("POST /api/cutsheet", s.handleCutSheet)

	frontendDir, err := fs.Sub(frontendFS, "frontend")
	if err != nil {
		panic(err)
	}
	s.mux.Handle("GET /", http.FileServer(http.FS(frontendDir)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' blob: data:")
	s.mux.ServeHTTP(w, r)
}

// POST /api/puzzle
func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	out, ok := outputFormats[strings.ToLower(r.FormValue("format"))]
	if !ok {
		jsonError(w, "format must be png or jpeg", http.StatusBadRequest)
		return
	}

	buf := &bytes.Buffer{}
	if err := sess.Export(buf, out.format); err != nil {
		s.logger.Error("export failed", slog.Any("error", err))
		jsonError(w, "cannot render puzzle", http.StatusInternalServerError)
		return
	}
	s.logger.Info("puzzle rendered",
		slog.String("client", clientIP(r)),
		slog.Int("rows", sess.Grid().Rows), slog.Int("cols", sess.Grid().Cols),
		slog.Int("bytes", buf.Len()))

	w.Header().Set("Content-Type", out.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// POST /api/cutsheet
func (s *Server) handleCutSheet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	sheet := cutsheet.New(sess.Pattern(), sess.Grid())
	buf := &bytes.Buffer{}
	if err := sheet.WriteSVG(buf); err != nil {
		s.logger.Error("cut sheet failed", slog.Any("error", err))
		jsonError(w, "cannot render cut sheet", http.StatusInternalServerError)
		return
	}
	s.logger.Info("cut sheet rendered",
		slog.String("client", clientIP(r)),
		slog.Int("rows", sess.Grid().Rows), slog.Int("cols", sess.Grid().Cols))

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// session reads the uploaded image and the grid parameters and returns a
// session with the image loaded. If the request cannot be served, an
// error has been written to w and ok is false.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (sess *jigsaw.Session, ok bool) {
	if !s.limit.allow(clientIP(r)) {
		jsonError(w, "too many requests, try again later", http.StatusTooManyRequests)
		return nil, false
	}

	if r.ContentLength > s.maxUpload {
		jsonError(w, "image too large", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "image too large", http.StatusRequestEntityTooLarge)
		} else {
			jsonError(w, "expected a multipart form", http.StatusBadRequest)
		}
		return nil, false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, "field 'image' is required", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	if !allowedMIME[header.Header.Get("Content-Type")] {
		jsonError(w, "unsupported image format", http.StatusBadRequest)
		return nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, "cannot read image", http.StatusBadRequest)
		return nil, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		s.logger.Debug("decoding upload failed",
			slog.String("filename", header.Filename), slog.Any("error", err))
		jsonError(w, "cannot decode image", http.StatusBadRequest)
		return nil, false
	}
	if int64(cfg.Width)*int64(cfg.Height) > s.maxPixels {
		s.logger.Info("image rejected",
			slog.String("client", clientIP(r)),
			slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))
		jsonError(w, "image has too many pixels", http.StatusRequestEntityTooLarge)
		return nil, false
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		s.logger.Debug("decoding upload failed",
			slog.String("filename", header.Filename), slog.Any("error", err))
		jsonError(w, "cannot decode image", http.StatusBadRequest)
		return nil, false
	}
	if b := img.Bounds(); b.Dx() < 1 || b.Dy() < 1 {
		jsonError(w, "image is empty", http.StatusBadRequest)
		return nil, false
	}

	opts := []jigsaw.Option{
		jigsaw.WithRows(s.dim(r.FormValue("rows"))),
		jigsaw.WithCols(s.dim(r.FormValue("cols"))),
	}
	if text := r.FormValue("seed"); text != "" {
		seed, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			jsonError(w, "seed must be a non-negative integer", http.StatusBadRequest)
			return nil, false
		}
		opts = append(opts, jigsaw.WithSeed(seed))
	}

	sess = jigsaw.NewSession(opts...)
	sess.Load(img)
	return sess, true
}

// dim interprets a rows or cols field. An empty field gives the default
// of two.
func (s *Server) dim(text string) int {
	if strings.TrimSpace(text) == "" {
		return 2
	}
	return min(jigsaw.ParseDim(text), s.maxGrid)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
