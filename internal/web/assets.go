// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package web provides the embedded assets of the interactive chart page
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed all:assets
var embeddedFiles embed.FS

// GetFileSystem returns an http.FileSystem that serves the embedded web assets
func GetFileSystem() http.FileSystem {
	webUI, err := fs.Sub(embeddedFiles, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(webUI)
}

// ChartTemplate parses the chart page template. The page inlines its script
// and stylesheet so a rendered chart is a single self-contained file.
func ChartTemplate() (*template.Template, error) {
	return template.ParseFS(embeddedFiles, "assets/chart.html.tmpl")
}

// Script returns the chart page's JavaScript.
func Script() (template.JS, error) {
	data, err := embeddedFiles.ReadFile("assets/chart.js")
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}

// Stylesheet returns the chart page's CSS.
func Stylesheet() (template.CSS, error) {
	data, err := embeddedFiles.ReadFile("assets/chart.css")
	if err != nil {
		return "", err
	}
	return template.CSS(data), nil
}
