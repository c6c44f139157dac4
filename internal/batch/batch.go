// Package batch drives document conversion across files and folders,
// fanning the per-document work out over a worker pool.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/morozRed/appledict2html/internal/ignore"
	"github.com/morozRed/appledict2html/internal/semantic"
)

// Options configure a conversion run.
type Options struct {
	// Workers caps the number of parallel conversions; non-positive
	// means one per CPU.
	Workers int

	// Suffix is appended to the basename of derived outputs. Files
	// already carrying it are excluded from enumeration.
	Suffix string

	// Extensions lists the input extensions, lowercase with leading
	// dots. Empty means ".html" only.
	Extensions []string

	// Replace writes each output over its input instead of deriving a
	// sibling name.
	Replace bool

	// OutDir redirects outputs into another directory, keeping the
	// derived basename.
	OutDir string

	// Excludes drops matching filenames during enumeration.
	Excludes *ignore.Matcher

	// Engine is the transformation policy applied to every document.
	// The zero value disables bracket wrapping; use semantic.Default
	// for the standard behavior.
	Engine semantic.Options

	// Progress, when set, is invoked on the collecting goroutine after
	// each document finishes.
	Progress func(done int, input string)
}

// Outcome reports the conversion of one document.
type Outcome struct {
	Input  string
	Output string
	Err    error
}

func (o Options) matchesExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	if len(o.Extensions) == 0 {
		return ext == ".html"
	}
	for _, want := range o.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// isDerived reports whether name already carries the output suffix.
func (o Options) isDerived(name string) bool {
	if o.Suffix == "" {
		return false
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(stem, o.Suffix)
}

// OutputPath derives the destination for one input path.
func (o Options) OutputPath(input string) string {
	name := filepath.Base(input)
	if !o.Replace {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext) + o.Suffix + ext
	}
	dir := filepath.Dir(input)
	if o.OutDir != "" {
		dir = o.OutDir
	}
	return filepath.Join(dir, name)
}

// ListInputs returns the convertible documents directly inside dir, in
// name order. Subdirectories are not descended into; outputs of
// earlier runs and excluded names are skipped.
func ListInputs(dir string, opts Options) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !opts.matchesExtension(name) || opts.isDerived(name) {
			continue
		}
		if opts.Excludes != nil && opts.Excludes.ShouldIgnore(name, false) {
			continue
		}
		inputs = append(inputs, filepath.Join(dir, name))
	}
	return inputs, nil
}

// ConvertFile rewrites the document at src and writes the result to
// dst, creating parent directories as needed.
func ConvertFile(src, dst string, engine semantic.Options) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	converted, err := engine.Transform(string(raw))
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", src, err)
	}

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(dst, []byte(converted), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

// ConvertAll converts the given documents in parallel and returns one
// outcome per input, in input order. A failed document never aborts
// the others.
func ConvertAll(inputs []string, opts Options) []Outcome {
	type job struct {
		index int
		input string
	}
	type indexed struct {
		index   int
		outcome Outcome
	}

	pool := NewWorkerPool[job, indexed](opts.Workers, len(inputs))
	pool.Start(func(j job) indexed {
		dst := opts.OutputPath(j.input)
		err := ConvertFile(j.input, dst, opts.Engine)
		if err != nil {
			slog.Error("conversion failed", "input", j.input, "error", err)
		} else {
			slog.Debug("converted", "input", j.input, "output", dst)
		}
		return indexed{index: j.index, outcome: Outcome{Input: j.input, Output: dst, Err: err}}
	})
	for i, input := range inputs {
		pool.Submit(job{index: i, input: input})
	}
	pool.Close()

	outcomes := make([]Outcome, len(inputs))
	done := 0
	for r := range pool.Results() {
		done++
		if opts.Progress != nil {
			opts.Progress(done, r.outcome.Input)
		}
		outcomes[r.index] = r.outcome
	}
	return outcomes
}

// ConvertFolder converts every eligible document directly inside dir.
func ConvertFolder(dir string, opts Options) ([]Outcome, error) {
	inputs, err := ListInputs(dir, opts)
	if err != nil {
		return nil, err
	}
	return ConvertAll(inputs, opts), nil
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			n++
		}
	}
	return n
}
