// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package expand shells out to cargo-expand to recover type declarations
// that only exist after macro expansion. Expanded declarations are a
// lowest-priority supplement: they never displace facts from real source
// files.
package expand

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

const defaultTimeout = 120 * time.Second

// SourceName is the synthetic owning file recorded for expanded
// declarations. It is not a path on disk and has no scope.
const SourceName = "<cargo-expand>"

// Config locates the crate to expand.
type Config struct {
	ManifestPath string        // Cargo.toml path; empty uses cargo's discovery
	WorkDir      string        // directory cargo runs in
	Timeout      time.Duration // default 120s
}

// Run executes `cargo expand` and returns the expanded Rust source.
// Requires the cargo-expand subcommand to be installed.
func Run(ctx context.Context, cfg Config) ([]byte, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{"expand"}
	if cfg.ManifestPath != "" {
		args = append(args, "--manifest-path", cfg.ManifestPath)
	}

	cmd := exec.CommandContext(cmdCtx, "cargo", args...)
	cmd.Dir = cfg.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("cargo expand: %w: %s", err, firstLine(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

func firstLine(out []byte) string {
	if idx := bytes.IndexByte(out, '\n'); idx >= 0 {
		out = out[:idx]
	}
	return string(bytes.TrimSpace(out))
}
