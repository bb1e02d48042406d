// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package api implements the HTTP endpoints of the chart preview server. Every
// request rebuilds the chart from its configuration, so edits to the data
// file show up on reload.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"astrograph/internal/config"
	"astrograph/internal/errs"
	"astrograph/internal/logger"
	"astrograph/internal/plotspec"
	"astrograph/internal/render"

	"github.com/gorilla/mux"
)

// Loader resolves the configuration and builds a fresh PlotSpec from it.
type Loader func() (*config.Config, *plotspec.PlotSpec, error)

var contentTypes = map[string]string{
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
}

// RegisterChartRoutes registers the preview routes on router.
func RegisterChartRoutes(router *mux.Router, load Loader) {
	router.HandleFunc("/", chartPageHandler(load)).Methods(http.MethodGet)
	router.HandleFunc("/chart.{format}", chartImageHandler(load)).Methods(http.MethodGet)
	router.HandleFunc("/api/spec", specHandler(load)).Methods(http.MethodGet)
	router.HandleFunc("/api/config", configHandler(load)).Methods(http.MethodGet)
}

// writeJSONResponse writes a JSON response with CORS headers
func writeJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var unsupported *errs.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		status = http.StatusNotFound
	}
	logger.Error("Preview request failed", "status", status, "error", err)
	writeJSONResponse(w, status, map[string]string{"error": err.Error()})
}

// writeBody renders into a buffer first so a failed render still gets a
// proper error status.
func writeBody(w http.ResponseWriter, contentType string, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("Failed to write response", "error", err)
	}
}

func chartPageHandler(load Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, spec, err := load()
		if err != nil {
			writeError(w, err)
			return
		}
		writeBody(w, "text/html; charset=utf-8", func(buf *bytes.Buffer) error {
			return render.Interactive{}.Render(spec, buf)
		})
	}
}

func chartImageHandler(load Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := mux.Vars(r)["format"]
		contentType, ok := contentTypes[format]
		if !ok {
			writeError(w, &errs.UnsupportedFormatError{Format: format})
			return
		}

		_, spec, err := load()
		if err != nil {
			writeError(w, err)
			return
		}
		writeBody(w, contentType, func(buf *bytes.Buffer) error {
			return render.Static{Format: format}.Render(spec, buf)
		})
	}
}

func specHandler(load Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, spec, err := load()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSONResponse(w, http.StatusOK, spec)
	}
}

func configHandler(load Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, _, err := load()
		if err != nil {
			writeError(w, err)
			return
		}
		writeBody(w, "application/yaml", func(buf *bytes.Buffer) error {
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			buf.Write(data)
			return nil
		})
	}
}
