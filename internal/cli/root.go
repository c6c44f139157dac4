package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "appledict2html",
		Short: "Convert Apple Dictionary HTML into semantic HTML",
		Long: `Appledict2html rewrites the flat, presentation-class markup of Apple
Dictionary entries - generic spans and divs tagged with style classes
like "bold", "se1" or "x_xo0" - into nested semantic HTML built from
section, p, ul/li, strong and em, with no residual dependency on the
original class vocabulary or its CSS.`,
	}

	convertCmd := &cobra.Command{
		Use:   "convert <input> [output]",
		Short: "Convert a dictionary file, or every file in a folder",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  RunConvert,
	}
	convertCmd.Flags().String("out-dir", "", "Write outputs into this directory instead of next to each input")
	convertCmd.Flags().Bool("replace", false, "Overwrite inputs in place (asks for confirmation)")
	convertCmd.Flags().BoolP("yes", "y", false, "Skip the --replace confirmation prompt")
	convertCmd.Flags().Int("workers", 0, "Parallel conversions (default: one per CPU)")
	convertCmd.Flags().String("suffix", "", "Suffix for derived output names (default from config: _processed)")
	convertCmd.Flags().StringSlice("exclude", nil, "Glob pattern(s) of inputs to skip")
	convertCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	auditCmd := &cobra.Command{
		Use:   "audit <folder>",
		Short: "Report class names the converter has no rule for",
		Args:  cobra.ExactArgs(1),
		RunE:  RunAudit,
	}
	auditCmd.Flags().String("report", "auditreport.log", "Path of the report file to write")
	auditCmd.Flags().Int("workers", 0, "Parallel scans (default: one per CPU)")
	auditCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("appledict2html %s\n", version)
		},
	}

	rootCmd.AddCommand(
		convertCmd,
		auditCmd,
		versionCmd,
	)

	return rootCmd
}
