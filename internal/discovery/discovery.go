// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package discovery finds plottable data files in a directory and inspects
// their header row. It detects the field delimiter so the column picker and
// shell completion can offer column names without further input.
package discovery

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"astrograph/internal/config"
	"astrograph/internal/logger"
	"astrograph/internal/table"

	"golang.org/x/sync/semaphore"
)

// maxConcurrentInspections limits how many files are opened at once.
const maxConcurrentInspections = 8

// maxDepth is how many directory levels below the root are scanned.
const maxDepth = 2

// Extensions recognised as data files.
var Extensions = []string{".csv", ".tsv", ".txt", ".dat", ".xlsx"}

// DataFile is a discovered input table.
type DataFile struct {
	Name      string   // path relative to the scanned directory
	Path      string   // full path
	Delimiter string   // detected delimiter; empty for spreadsheets
	Columns   []string // header row
}

// DataDirectory resolves the directory to scan, defaulting to the working
// directory.
func DataDirectory(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	resolved, err := config.ResolvePath(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("data directory '%s' is invalid: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("data directory '%s' is not a directory", dir)
	}
	return resolved, nil
}

// IsDataFile reports whether name has a recognised data file extension.
func IsDataFile(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// FindDataFiles scans root for data files and inspects each one
// concurrently. Files whose header cannot be read are reported on the error
// channel; both channels are closed once the scan is complete.
func FindDataFiles(root string) (<-chan DataFile, <-chan error) {
	fileChan := make(chan DataFile, 10)
	errorChan := make(chan error, 5)

	go func() {
		defer close(fileChan)
		defer close(errorChan)

		logger.Info("Starting data file discovery", "root", root)
		sem := semaphore.NewWeighted(maxConcurrentInspections)
		ctx := context.Background()
		var wg sync.WaitGroup

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				errorChan <- fmt.Errorf("scan %s: %w", path, err)
				return nil
			}
			rel, _ := filepath.Rel(root, path)
			if d.IsDir() {
				if path != root && (strings.HasPrefix(d.Name(), ".") || strings.Count(rel, string(filepath.Separator)) >= maxDepth) {
					return filepath.SkipDir
				}
				return nil
			}
			if !IsDataFile(d.Name()) {
				return nil
			}

			if err := sem.Acquire(ctx, 1); err != nil {
				errorChan <- fmt.Errorf("failed to acquire semaphore for %s: %w", path, err)
				return nil
			}
			wg.Add(1)
			go func(path, rel string) {
				defer wg.Done()
				defer sem.Release(1)

				df, err := Inspect(path)
				if err != nil {
					logger.Warn("Could not inspect data file", "path", path, "error", err)
					errorChan <- err
					return
				}
				df.Name = filepath.ToSlash(rel)
				logger.Debug("Data file found", "path", path, "columns", len(df.Columns), "delimiter", df.Delimiter)
				fileChan <- df
			}(path, rel)
			return nil
		})
		wg.Wait()
		if walkErr != nil {
			errorChan <- fmt.Errorf("scan %s: %w", root, walkErr)
		}
		logger.Info("Data file discovery finished", "root", root)
	}()

	return fileChan, errorChan
}

// CollectDataFiles runs FindDataFiles to completion and returns the files
// sorted by name.
func CollectDataFiles(root string) ([]DataFile, []error) {
	fileChan, errorChan := FindDataFiles(root)

	var files []DataFile
	var errs []error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range errorChan {
			errs = append(errs, err)
		}
	}()
	for f := range fileChan {
		files = append(files, f)
	}
	wg.Wait()

	slices.SortFunc(files, func(a, b DataFile) int { return strings.Compare(a.Name, b.Name) })
	return files, errs
}

// Inspect reads the header of a single data file.
func Inspect(path string) (DataFile, error) {
	df := DataFile{Name: filepath.Base(path), Path: path}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		tbl, err := table.LoadXLSX(path, "")
		if err != nil {
			return DataFile{}, err
		}
		df.Columns = tbl.Columns()
		return df, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return DataFile{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return DataFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	line = strings.TrimPrefix(strings.TrimRight(line, "\r\n"), "\ufeff")
	if strings.TrimSpace(line) == "" {
		return DataFile{}, fmt.Errorf("%s: %w", path, table.ErrNoHeader)
	}

	df.Delimiter = SniffDelimiter(line)
	df.Columns, err = HeaderColumns(line, df.Delimiter)
	if err != nil {
		return DataFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return df, nil
}

// Columns returns the header of path. An empty delimiter is detected.
func Columns(path, delimiter string) ([]string, error) {
	if delimiter == "" {
		df, err := Inspect(path)
		if err != nil {
			return nil, err
		}
		return df.Columns, nil
	}
	tbl, err := table.Load(path, delimiter)
	if err != nil {
		return nil, err
	}
	return tbl.Columns(), nil
}

// candidates are checked in order; ties keep the earlier one.
var candidates = []string{",", "\t", ";", "|"}

// SniffDelimiter guesses the delimiter of a header line by counting the
// candidate separators outside quotes. Comma wins when none occur.
func SniffDelimiter(header string) string {
	counts := make(map[rune]int)
	inQuotes := false
	for _, r := range header {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}

	best, bestCount := config.DefaultDelimiter, 0
	for _, c := range candidates {
		if n := counts[rune(c[0])]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// HeaderColumns splits a header line with the given delimiter.
func HeaderColumns(header, delimiter string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(header))
	r.Comma = rune(delimiter[0])
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}
