// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteArgForShell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plot.yaml", "plot.yaml"},
		{"/data/comets-2024/plot.yaml", "/data/comets-2024/plot.yaml"},
		{"my plots/plot.yaml", "'my plots/plot.yaml'"},
		{"it's.yaml", `'it'\''s.yaml'`},
		{"~/plots/plot.yaml", "~/plots/plot.yaml"},
		{"~/my plots/p.yaml", "~/'my plots/p.yaml'"},
		{"$HOME", "'$HOME'"},
		{"", "''"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, QuoteArgForShell(tt.in), tt.in)
	}
}

func TestRenderCommand(t *testing.T) {
	assert.Equal(t, "astrograph --import-config 'a b.yaml'", RenderCommand("a b.yaml"))
}
