// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package render turns a PlotSpec into an output file. Dispatch picks the
// static image renderer or the interactive HTML renderer; both draw from the
// same PlotSpec and the same resolved axis bounds.
package render

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"astrograph/internal/config"
	"astrograph/internal/errs"
	"astrograph/internal/logger"
	"astrograph/internal/plotspec"
)

// Renderer writes one chart to w.
type Renderer interface {
	Render(spec *plotspec.PlotSpec, w io.Writer) error
}

// StaticFormats lists the image formats the static renderer can produce.
var StaticFormats = []string{"png", "svg", "jpg", "jpeg"}

// Dispatch selects the renderer for spec. The interactive renderer always
// produces HTML, whatever output format is configured; the static renderer
// rejects formats it cannot produce before anything is written.
func Dispatch(spec *plotspec.PlotSpec) (Renderer, error) {
	if spec.Layout.Interactive {
		return Interactive{}, nil
	}
	format := strings.ToLower(spec.Layout.Format)
	for _, f := range StaticFormats {
		if f == format {
			return Static{Format: format}, nil
		}
	}
	return nil, &errs.UnsupportedFormatError{Format: spec.Layout.Format}
}

// Write renders spec to its configured output file and returns the path
// written. The file only appears once rendering has fully succeeded.
func Write(spec *plotspec.PlotSpec) (string, error) {
	r, err := Dispatch(spec)
	if err != nil {
		return "", err
	}

	path, err := config.ResolvePath(spec.Layout.OutputFile)
	if err != nil {
		return "", &errs.OutputWriteError{Path: spec.Layout.OutputFile, Err: err}
	}

	if err := writeAtomic(path, func(w io.Writer) error { return r.Render(spec, w) }); err != nil {
		return "", err
	}
	logger.Info("Wrote chart", "path", path, "format", spec.Layout.Format, "series", len(spec.Series))
	return path, nil
}

// writeAtomic renders into a temporary file next to path and renames it into
// place on success. On any failure the temporary file is removed.
func writeAtomic(path string, render func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	// rwxr-x---
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".astrograph-*")
	if err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := render(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	// rw-r--r--
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	return nil
}
