// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package bindgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresSourceDir(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_RejectsMissingSourceDir(t *testing.T) {
	_, err := New(Config{Input: InputConfig{SourceDir: "/does/not/exist"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_AppliesDefaults(t *testing.T) {
	g, err := New(Config{Input: InputConfig{SourceDir: t.TempDir()}})
	require.NoError(t, err)

	cfg := g.(*generatorAdapter).cfg
	assert.Equal(t, defaultTypesFile, cfg.Output.TypesFile)
	assert.Equal(t, defaultCommandsFile, cfg.Output.CommandsFile)
	assert.Equal(t, defaultExcludes, cfg.Input.Exclude)
}

func TestNew_KeepsExplicitValues(t *testing.T) {
	g, err := New(Config{
		Input:  InputConfig{SourceDir: t.TempDir(), Exclude: []string{}},
		Output: OutputConfig{TypesFile: "out/t.ts", CommandsFile: "out/c.ts"},
	})
	require.NoError(t, err)

	cfg := g.(*generatorAdapter).cfg
	assert.Equal(t, "out/t.ts", cfg.Output.TypesFile)
	assert.Empty(t, cfg.Input.Exclude)
}
