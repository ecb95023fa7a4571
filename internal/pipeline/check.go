// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type output struct {
	path    string
	content string
}

// checkOutputs compares fresh generation against the files on disk without
// writing anything. A missing file counts as drift. The per-file diff goes
// to the reporting sink so CI logs show what changed.
func checkOutputs(result *Result, outputs []output, sink io.Writer) (*Result, error) {
	dmp := diffmatchpatch.New()

	for _, o := range outputs {
		existing, err := os.ReadFile(o.path)
		if err != nil {
			result.Drift = append(result.Drift, o.path)
			fmt.Fprintf(sink, "%s: missing\n", o.path)
			continue
		}
		if string(existing) == o.content {
			continue
		}
		result.Drift = append(result.Drift, o.path)

		diffs := dmp.DiffMain(string(existing), o.content, true)
		dmp.DiffCleanupSemantic(diffs)
		fmt.Fprintf(sink, "%s: %d changed hunks\n", o.path, changedHunks(diffs))
	}

	if len(result.Drift) > 0 {
		return result, fmt.Errorf("%w: %s", ErrDrift, strings.Join(result.Drift, ", "))
	}
	return result, nil
}

func changedHunks(diffs []diffmatchpatch.Diff) int {
	n := 0
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			n++
		}
	}
	return n
}
