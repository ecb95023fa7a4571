// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfig = `# tauri-ts configuration.
# Every key can also be set via TAURI_TS_* environment variables or flags.

# Rust source directory to scan.
source-dir: src-tauri/src

# Paths or names excluded from the scan (.gitignore is honored too).
exclude:
  - tests
  - target

# Generated output paths.
types-file: src/generated/types.ts
commands-file: src/generated/commands.ts

# Identifier naming.
type-prefix: ""
type-suffix: ""
function-prefix: ""
function-suffix: ""
preserve-field-names: false

# Macro expansion fallback for types that only exist after expansion.
# Requires the cargo-expand subcommand.
use-cargo-expand: false
cargo-manifest: ""
`

// newInitCmd creates the "init" command.
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE:  runInit,
	}

	cmd.Flags().StringP("output", "o", "tauri-ts.yaml", "Path for the configuration file")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", output)
	}

	if err := os.WriteFile(output, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Printf("Created %s\n", output)
	return nil
}
