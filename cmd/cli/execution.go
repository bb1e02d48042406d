// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"os"
	"time"

	"astrograph/internal/config"
	"astrograph/internal/logger"
	"astrograph/internal/plotspec"
	"astrograph/internal/render"
	"astrograph/internal/runner"
	"astrograph/internal/util"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// resolveConfig merges the passed flags over the imported file and defaults.
func resolveConfig(cmd *cobra.Command, flags *renderFlags) (*config.Config, error) {
	layer, err := flags.layer(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return config.Resolve(layer, flags.importConfig)
}

// runRender is the main pipeline: resolve, optionally export, build the
// plot spec, render it and optionally open the result.
func runRender(cmd *cobra.Command, flags *renderFlags) error {
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	if flags.exportConfig != "" {
		if err := config.Export(cfg, flags.exportConfig); err != nil {
			return err
		}
		successColor.Fprintf(out, "Configuration exported to %s\n", identifierColor.Sprint(flags.exportConfig))
		dimColor.Fprintf(out, "Re-render with: %s\n", util.RenderCommand(flags.exportConfig))
	}

	s := newSpinner(" Loading " + cfg.File + "...")
	s.Start()
	spec, err := plotspec.Load(cfg)
	if err != nil {
		s.Stop()
		return err
	}

	s.Stop()
	s.Suffix = " Rendering chart..."
	s.Restart()
	path, err := render.Write(spec)
	s.Stop()
	if err != nil {
		return err
	}
	successColor.Fprintf(out, "Chart written to %s\n", identifierColor.Sprint(path))

	if flags.open {
		stepColor.Fprintf(out, "Opening %s...\n", path)
		if err := runner.Open(path); err != nil {
			// The chart itself was written; a missing viewer is not a failure.
			logger.Warn("Could not open chart", "path", path, "error", err)
			errorColor.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
	}
	return nil
}

// newSpinner returns a cyan spinner on stderr. It stays silent when stderr
// is not a terminal.
func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Color("cyan")
	s.Suffix = suffix
	if fd := os.Stderr.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		s.Disable()
	}
	return s
}
