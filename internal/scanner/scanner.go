// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scanner discovers Rust source files under a crate directory.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Scanner walks a source directory for .rs files, filtering by the
// configured exclude patterns and any .gitignore files found in the tree.
type Scanner struct {
	sourceDir string
	exclude   []string
	matcher   gitignore.Matcher
}

// New creates a scanner rooted at sourceDir. An exclude pattern matches a
// path when it is a substring of the crate-relative path or equals a path
// component's name.
func New(sourceDir string, exclude []string) *Scanner {
	s := &Scanner{sourceDir: sourceDir, exclude: exclude}
	if patterns, err := gitignore.ReadPatterns(osfs.New(sourceDir), nil); err == nil && len(patterns) > 0 {
		s.matcher = gitignore.NewMatcher(patterns)
	}
	return s
}

// Scan returns crate-relative, slash-separated paths of every Rust source
// file, sorted for deterministic pipeline order.
func (s *Scanner) Scan() ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.sourceDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if d.Name() == ".git" || s.excluded(rel, d.Name()) || s.ignored(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(rel, ".rs") {
			return nil
		}
		if s.excluded(rel, d.Name()) || s.ignored(rel, false) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.sourceDir, err)
	}
	sort.Strings(files)
	return files, nil
}

func (s *Scanner) excluded(rel, name string) bool {
	for _, pattern := range s.exclude {
		if pattern == "" {
			continue
		}
		if strings.Contains(rel, pattern) || name == pattern {
			return true
		}
	}
	return false
}

func (s *Scanner) ignored(rel string, isDir bool) bool {
	if s.matcher == nil {
		return false
	}
	return s.matcher.Match(strings.Split(rel, "/"), isDir)
}
