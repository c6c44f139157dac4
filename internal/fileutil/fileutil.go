// Package fileutil holds small helpers shared by the CLI and the
// conversion support packages.
package fileutil

import (
	"encoding/json"
	"os"
	"sort"
)

// PrintJSON writes value to stdout as indented JSON.
func PrintJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// DedupeStrings keeps the first occurrence of each item, preserving order.
func DedupeStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// MapKeysSorted returns the keys of values in sorted order. The result
// is empty but never nil for an empty map.
func MapKeysSorted(values map[string]bool) []string {
	out := make([]string, 0, len(values))
	for key := range values {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
