package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/morozRed/appledict2html/internal/batch"
	"github.com/morozRed/appledict2html/internal/config"
	"github.com/morozRed/appledict2html/internal/fileutil"
	"github.com/morozRed/appledict2html/internal/ignore"
	"github.com/morozRed/appledict2html/internal/logging"
	"github.com/morozRed/appledict2html/internal/semantic"
)

func RunConvert(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)

	asJSON, _ := cmd.Flags().GetBool("json")
	outDir, _ := cmd.Flags().GetString("out-dir")
	replace, _ := cmd.Flags().GetBool("replace")
	assumeYes, _ := cmd.Flags().GetBool("yes")
	flagExcludes, _ := cmd.Flags().GetStringSlice("exclude")

	suffix := cfg.Convert.Suffix
	if cmd.Flags().Changed("suffix") {
		suffix, _ = cmd.Flags().GetString("suffix")
	}

	if replace && outDir != "" {
		return fmt.Errorf("--replace cannot be combined with --out-dir")
	}

	engine := semantic.Default()
	engine.BracketTrailingSpace = cfg.Convert.BracketTrailingSpace

	excludes := fileutil.DedupeStrings(append(append([]string{}, cfg.Convert.Excludes...), flagExcludes...))
	opts := batch.Options{
		Workers:    resolveWorkers(cmd, cfg),
		Suffix:     suffix,
		Extensions: cfg.Convert.Extensions,
		Replace:    replace,
		OutDir:     outDir,
		Excludes:   ignore.NewMatcher(excludes),
		Engine:     engine,
	}

	input := args[0]
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", input, err)
	}

	var outcomes []batch.Outcome
	if info.IsDir() {
		outcomes, err = convertFolder(cmd, args, opts, assumeYes, asJSON)
	} else {
		outcomes, err = convertSingle(cmd, args, opts, assumeYes)
	}
	if err != nil {
		return err
	}
	if outcomes == nil {
		// Confirmation declined; nothing was converted.
		return nil
	}

	summary := buildConvertSummary(input, outDir, replace, outcomes, time.Since(start))
	if err := PrintConvertSummary(summary, asJSON); err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", summary.Failed, len(outcomes))
	}
	return nil
}

func convertFolder(cmd *cobra.Command, args []string, opts batch.Options, assumeYes, asJSON bool) ([]batch.Outcome, error) {
	dir := args[0]
	if len(args) > 1 {
		return nil, fmt.Errorf("an explicit output path applies to single-file conversion only; use --out-dir for folders")
	}

	inputs, err := batch.ListInputs(dir, opts)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no convertible files found in %s", dir)
	}

	if opts.Replace && !assumeYes {
		ok, err := confirmReplace(cmd, len(inputs))
		if err != nil {
			return nil, err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil, nil
		}
	}

	reporter := newProgressReporter("convert", len(inputs), asJSON)
	opts.Progress = reporter.Update
	outcomes := batch.ConvertAll(inputs, opts)
	reporter.Done(len(outcomes))
	return outcomes, nil
}

func convertSingle(cmd *cobra.Command, args []string, opts batch.Options, assumeYes bool) ([]batch.Outcome, error) {
	input := args[0]
	dst := opts.OutputPath(input)
	if len(args) > 1 {
		if opts.Replace {
			return nil, fmt.Errorf("--replace cannot be combined with an explicit output path")
		}
		dst = args[1]
	}

	if opts.Replace && !assumeYes {
		ok, err := confirmReplace(cmd, 1)
		if err != nil {
			return nil, err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil, nil
		}
	}

	err := batch.ConvertFile(input, dst, opts.Engine)
	return []batch.Outcome{{Input: input, Output: dst, Err: err}}, nil
}

func buildConvertSummary(input, outDir string, replaced bool, outcomes []batch.Outcome, elapsed time.Duration) ConvertSummary {
	summary := ConvertSummary{
		Mode:       "convert",
		Input:      input,
		OutputDir:  outDir,
		Replaced:   replaced,
		DurationMS: elapsed.Milliseconds(),
	}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			summary.Failed++
			summary.FailedFiles = append(summary.FailedFiles, outcome.Input)
			continue
		}
		summary.Converted++
		summary.Outputs = append(summary.Outputs, outcome.Output)
	}
	return summary
}
