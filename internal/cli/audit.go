package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/morozRed/appledict2html/internal/audit"
	"github.com/morozRed/appledict2html/internal/config"
	"github.com/morozRed/appledict2html/internal/logging"
)

func RunAudit(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)

	asJSON, _ := cmd.Flags().GetBool("json")
	reportPath, _ := cmd.Flags().GetString("report")

	folder := args[0]
	info, err := os.Stat(folder)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", folder, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", folder)
	}

	reporter := newProgressReporter("audit", 0, asJSON)
	report, err := audit.NewScanner().ScanFolder(folder, resolveWorkers(cmd, cfg), reporter.Update)
	if err != nil {
		return err
	}
	reporter.Done(report.Scanned)

	if err := report.WriteFile(reportPath); err != nil {
		return err
	}

	summary := AuditSummary{
		Mode:           "audit",
		Input:          folder,
		Report:         reportPath,
		Scanned:        report.Scanned,
		Unknown:        len(report.Classes),
		Failed:         len(report.Failed),
		DurationMS:     time.Since(start).Milliseconds(),
		UnknownClasses: report.ClassNames(),
		FailedFiles:    report.Failed,
	}
	if err := PrintAuditSummary(summary, asJSON); err != nil {
		return err
	}
	if len(report.Failed) > 0 {
		return fmt.Errorf("%d of %d files could not be audited", len(report.Failed), report.Scanned)
	}
	return nil
}
