package audit

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Report is the aggregated outcome of a folder scan.
type Report struct {
	// Scanned counts the documents enumerated.
	Scanned int

	// Failed lists documents that could not be scanned, sorted.
	Failed []string

	// Classes maps each unknown class to the sorted files carrying it.
	Classes map[string][]string
}

// Empty reports whether the scan found no unknown classes.
func (r *Report) Empty() bool {
	return len(r.Classes) == 0
}

// ClassNames returns the unknown classes, sorted.
func (r *Report) ClassNames() []string {
	names := make([]string, 0, len(r.Classes))
	for cls := range r.Classes {
		names = append(names, cls)
	}
	sort.Strings(names)
	return names
}

// Render returns the textual report: the unknown classes first, then
// the files each one appears in.
func (r *Report) Render() string {
	if r.Empty() {
		return "No unknown classes found.\n"
	}

	var b strings.Builder
	b.WriteString("Unknown classes:\n")
	for _, cls := range r.ClassNames() {
		fmt.Fprintf(&b, "- %s\n", cls)
	}
	b.WriteString("\nFiles by class:\n\n")
	for _, cls := range r.ClassNames() {
		fmt.Fprintf(&b, "- %s:\n", cls)
		for _, path := range r.Classes[cls] {
			b.WriteString(path)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile writes the textual report to path.
func (r *Report) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(r.Render()), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
