// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/tauri-ts/pkg/bindgen"
)

// newGenerateCmd creates the "generate" command.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate TypeScript bindings",
		Long:  "Generate scans the configured Rust sources and writes the types and commands files. With --check nothing is written; the command fails if the files on disk are out of date.",
		RunE:  runGenerate,
	}

	cmd.Flags().Bool("check", false, "Verify outputs are up to date instead of writing them")
	cmd.Flags().BoolP("verbose", "v", false, "Report per-file progress to stderr")

	return cmd
}

// runGenerate executes one generation run.
func runGenerate(cmd *cobra.Command, args []string) error {
	check, _ := cmd.Flags().GetBool("check")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := bindgen.Config{
		Input: bindgen.InputConfig{
			SourceDir:      viper.GetString("source-dir"),
			Exclude:        viper.GetStringSlice("exclude"),
			UseCargoExpand: viper.GetBool("use-cargo-expand"),
			CargoManifest:  viper.GetString("cargo-manifest"),
		},
		Output: bindgen.OutputConfig{
			TypesFile:    viper.GetString("types-file"),
			CommandsFile: viper.GetString("commands-file"),
		},
		Naming: bindgen.NamingConfig{
			TypePrefix:         viper.GetString("type-prefix"),
			TypeSuffix:         viper.GetString("type-suffix"),
			FunctionPrefix:     viper.GetString("function-prefix"),
			FunctionSuffix:     viper.GetString("function-suffix"),
			PreserveFieldNames: viper.GetBool("preserve-field-names"),
		},
		Check:   check,
		Verbose: verbose,
	}

	g, err := bindgen.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := g.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if result != nil {
			printResult(result)
		}
		return err
	}

	printResult(result)
	return nil
}

// printResult outputs the result as JSON to stdout.
func printResult(result *bindgen.Result) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
