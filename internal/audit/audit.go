// Package audit scans dictionary corpora for class tokens the
// converter has no rule for. The findings feed the rule tables: an
// unknown class is either a missed mapping or a candidate for the
// excluded set.
package audit

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/batch"
	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/fileutil"
	"github.com/morozRed/appledict2html/internal/semantic"
)

// Scanner classifies class tokens against the converter's vocabulary.
type Scanner struct {
	known map[string]bool
}

// NewScanner builds a scanner over the rule tables' class vocabulary.
func NewScanner() *Scanner {
	classes := semantic.KnownClasses()
	known := make(map[string]bool, len(classes))
	for _, cls := range classes {
		known[cls] = true
	}
	return &Scanner{known: known}
}

// ScanMarkup returns the unknown class tokens of one document, sorted.
// Tokens on nodes without visible text are ignored; such nodes vanish
// during conversion anyway.
func (s *Scanner) ScanMarkup(markup string) ([]string, error) {
	root, err := dom.Parse(markup)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	classed := dom.FindAll(root, func(n *html.Node) bool {
		return len(dom.Classes(n)) > 0
	})
	for _, n := range classed {
		if dom.VisibleText(n) == "" {
			continue
		}
		for _, cls := range dom.Classes(n) {
			if !s.known[cls] && !excludedClasses[cls] {
				seen[cls] = true
			}
		}
	}

	return fileutil.MapKeysSorted(seen), nil
}

// ScanFile returns the unknown class tokens of the document at path.
func (s *Scanner) ScanFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	classes, err := s.ScanMarkup(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return classes, nil
}

// ListDocuments returns every .html document under root, recursively.
func ListDocuments(root string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return docs, nil
}

// ScanFolder scans every document under root in parallel and merges
// the per-file findings. A file that cannot be scanned is recorded and
// does not stop the others. progress, when non-nil, is invoked on the
// collecting goroutine after each document finishes.
func (s *Scanner) ScanFolder(root string, workers int, progress func(done int, path string)) (*Report, error) {
	docs, err := ListDocuments(root)
	if err != nil {
		return nil, err
	}

	type result struct {
		path    string
		classes []string
		err     error
	}

	pool := batch.NewWorkerPool[string, result](workers, len(docs))
	pool.Start(func(path string) result {
		classes, err := s.ScanFile(path)
		if err != nil {
			slog.Error("audit failed", "input", path, "error", err)
		}
		return result{path: path, classes: classes, err: err}
	})
	for _, doc := range docs {
		pool.Submit(doc)
	}
	pool.Close()

	report := &Report{Scanned: len(docs), Classes: make(map[string][]string)}
	done := 0
	for r := range pool.Results() {
		done++
		if progress != nil {
			progress(done, r.path)
		}
		if r.err != nil {
			report.Failed = append(report.Failed, r.path)
			continue
		}
		for _, cls := range r.classes {
			report.Classes[cls] = append(report.Classes[cls], r.path)
		}
	}
	for cls := range report.Classes {
		sort.Strings(report.Classes[cls])
	}
	sort.Strings(report.Failed)
	return report, nil
}
