package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/morozRed/appledict2html/internal/cli"
)

// These tests drive the real cobra command tree end-to-end over a temp
// corpus, the way a user would from the shell.

func TestConvertFolderEndToEnd(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "produce.html"), `<span class="bold">produce</span>`)
	mustWriteFile(t, filepath.Join(dir, "origin.html"), `<div class="etym x_xo0"><span class="x_xo1">Latin</span></div>`)
	mustWriteFile(t, filepath.Join(dir, "twofold.html"), `<span class="italic">two</span>`)

	out, err := runCommand(t, "convert", dir, "--json")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	var summary cli.ConvertSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("failed to decode summary: %v\noutput: %s", err, out)
	}
	if summary.Mode != "convert" {
		t.Errorf("unexpected mode %q", summary.Mode)
	}
	if summary.Converted != 3 || summary.Failed != 0 {
		t.Fatalf("expected 3 conversions, got converted=%d failed=%d", summary.Converted, summary.Failed)
	}

	assertFileContent(t, filepath.Join(dir, "produce_processed.html"), `<strong>produce</strong>`)
	assertFileContent(t, filepath.Join(dir, "origin_processed.html"), `<section class="origin_block"><p>Latin</p></section>`)
	assertFileContent(t, filepath.Join(dir, "twofold_processed.html"), `<em>two</em>`)

	// A second run must skip the derived outputs and re-convert only the
	// original three inputs.
	out, err = runCommand(t, "convert", dir, "--json")
	if err != nil {
		t.Fatalf("second convert failed: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("failed to decode second summary: %v", err)
	}
	if summary.Converted != 3 {
		t.Fatalf("expected 3 conversions on re-run, got %d", summary.Converted)
	}
	if _, err := os.Stat(filepath.Join(dir, "produce_processed_processed.html")); !os.IsNotExist(err) {
		t.Fatalf("derived output was converted again: %v", err)
	}
}

func TestConvertSingleFileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "entry.html")
	mustWriteFile(t, input, `<span class="bold">hi</span><div class="etym x_xo0"><span class="x_xo1">Latin</span></div>`)

	out, err := runCommand(t, "convert", input)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(out, "converted=1 failed=0") {
		t.Errorf("unexpected summary output: %s", out)
	}

	assertFileContent(t, filepath.Join(dir, "entry_processed.html"),
		`<strong>hi</strong><section class="origin_block"><p>Latin</p></section>`)
}

func TestConvertMissingInputFails(t *testing.T) {
	if _, err := runCommand(t, "convert", filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected an error for missing input")
	}
}

func TestAuditEndToEnd(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "a.html"), `<span class="zz_novel">weird</span>`)
	mustWriteFile(t, filepath.Join(dir, "sub", "b.html"), `<span class="bold">fine</span>`)
	reportPath := filepath.Join(dir, "report.log")

	out, err := runCommand(t, "audit", dir, "--report", reportPath, "--json")
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	var summary cli.AuditSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("failed to decode summary: %v\noutput: %s", err, out)
	}
	if summary.Scanned != 2 || summary.Unknown != 1 || summary.Failed != 0 {
		t.Fatalf("unexpected counts: scanned=%d unknown=%d failed=%d",
			summary.Scanned, summary.Unknown, summary.Failed)
	}
	if len(summary.UnknownClasses) != 1 || summary.UnknownClasses[0] != "zz_novel" {
		t.Errorf("unexpected unknown classes %v", summary.UnknownClasses)
	}

	report, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(report), "- zz_novel") {
		t.Errorf("report does not list the unknown class:\n%s", report)
	}
	if !strings.Contains(string(report), filepath.Join(dir, "a.html")) {
		t.Errorf("report does not name the offending file:\n%s", report)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APPLEDICT_CONFIG", "")
	root := cli.NewRootCommand("test")
	root.SetArgs(args)
	var err error
	out := captureStdout(t, func() { err = root.Execute() })
	return out, err
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	fn()
	os.Stdout = old
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(data)
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if string(got) != want {
		t.Fatalf("unexpected content in %s:\n got: %s\nwant: %s", path, got, want)
	}
}
