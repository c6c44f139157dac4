package cli

import (
	"fmt"
	"strings"

	"github.com/morozRed/appledict2html/internal/fileutil"
)

type ConvertSummary struct {
	Mode        string   `json:"mode"`
	Input       string   `json:"input"`
	OutputDir   string   `json:"output_dir,omitempty"`
	Replaced    bool     `json:"replaced,omitempty"`
	Converted   int      `json:"converted"`
	Failed      int      `json:"failed"`
	DurationMS  int64    `json:"duration_ms"`
	Outputs     []string `json:"outputs,omitempty"`
	FailedFiles []string `json:"failed_files,omitempty"`
}

type AuditSummary struct {
	Mode           string   `json:"mode"`
	Input          string   `json:"input"`
	Report         string   `json:"report"`
	Scanned        int      `json:"scanned"`
	Unknown        int      `json:"unknown"`
	Failed         int      `json:"failed"`
	DurationMS     int64    `json:"duration_ms"`
	UnknownClasses []string `json:"unknown_classes,omitempty"`
	FailedFiles    []string `json:"failed_files,omitempty"`
}

func PrintConvertSummary(summary ConvertSummary, asJSON bool) error {
	if asJSON {
		return fileutil.PrintJSON(summary)
	}

	fmt.Printf("convert: converted=%d failed=%d duration=%dms\n", summary.Converted, summary.Failed, summary.DurationMS)
	if summary.OutputDir != "" {
		fmt.Printf("output: %s\n", summary.OutputDir)
	}
	if len(summary.Outputs) > 0 {
		fmt.Printf("outputs (%d): %s\n", len(summary.Outputs), SummarizePaths(summary.Outputs, 8))
	}
	if len(summary.FailedFiles) > 0 {
		fmt.Printf("failed files (%d): %s\n", len(summary.FailedFiles), SummarizePaths(summary.FailedFiles, 8))
	}
	return nil
}

func PrintAuditSummary(summary AuditSummary, asJSON bool) error {
	if asJSON {
		return fileutil.PrintJSON(summary)
	}

	fmt.Printf("audit: scanned=%d unknown=%d failed=%d duration=%dms\n", summary.Scanned, summary.Unknown, summary.Failed, summary.DurationMS)
	fmt.Printf("report: %s\n", summary.Report)
	if len(summary.UnknownClasses) > 0 {
		fmt.Printf("unknown classes (%d): %s\n", len(summary.UnknownClasses), SummarizePaths(summary.UnknownClasses, 8))
	}
	if len(summary.FailedFiles) > 0 {
		fmt.Printf("failed files (%d): %s\n", len(summary.FailedFiles), SummarizePaths(summary.FailedFiles, 8))
	}
	return nil
}

func SummarizePaths(paths []string, max int) string {
	if len(paths) <= max {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s ... (+%d more)", strings.Join(paths[:max], ", "), len(paths)-max)
}
