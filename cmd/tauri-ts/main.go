// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command tauri-ts generates typed TypeScript bindings from Rust Tauri
// command handlers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "tauri-ts",
		Short: "TypeScript bindings generator for Tauri commands",
		Long:  "tauri-ts scans a Tauri app's Rust sources, resolves every type reachable from #[tauri::command] signatures, and emits typed TypeScript invoke wrappers.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("source-dir", "src-tauri/src", "Rust source directory to scan")
	rootCmd.PersistentFlags().StringSlice("exclude", []string{"tests", "target"}, "Paths or names to exclude from the scan")
	rootCmd.PersistentFlags().String("types-file", "src/generated/types.ts", "Output path for the types file")
	rootCmd.PersistentFlags().String("commands-file", "src/generated/commands.ts", "Output path for the commands file")
	rootCmd.PersistentFlags().String("type-prefix", "", "Prefix for generated type names")
	rootCmd.PersistentFlags().String("type-suffix", "", "Suffix for generated type names")
	rootCmd.PersistentFlags().String("function-prefix", "", "Prefix for generated function names")
	rootCmd.PersistentFlags().String("function-suffix", "", "Suffix for generated function names")
	rootCmd.PersistentFlags().Bool("preserve-field-names", false, "Keep snake_case field names instead of camelCase")
	rootCmd.PersistentFlags().Bool("use-cargo-expand", false, "Supplement facts with cargo-expand output")
	rootCmd.PersistentFlags().String("cargo-manifest", "", "Cargo.toml path for cargo-expand")

	// Bind flags to viper.
	for _, name := range []string{
		"source-dir", "exclude", "types-file", "commands-file",
		"type-prefix", "type-suffix", "function-prefix", "function-suffix",
		"preserve-field-names", "use-cargo-expand", "cargo-manifest",
	} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Env vars: TAURI_TS_SOURCE_DIR, TAURI_TS_TYPES_FILE, etc.
	viper.SetEnvPrefix("TAURI_TS")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName("tauri-ts")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tauri-ts version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tauri-ts %s\n", version)
		},
	}
}
