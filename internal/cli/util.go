package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morozRed/appledict2html/internal/config"
)

// resolveWorkers returns the worker count, the flag overriding config.
func resolveWorkers(cmd *cobra.Command, cfg *config.Config) int {
	if cmd.Flags().Changed("workers") {
		n, _ := cmd.Flags().GetInt("workers")
		return n
	}
	return cfg.Convert.WorkerCount()
}

// confirmReplace asks before overwriting files in place. Only an
// answer of "y" (any case) proceeds.
func confirmReplace(cmd *cobra.Command, count int) (bool, error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: %d file(s) will be overwritten in place. This cannot be undone.\n", count)
	fmt.Fprint(cmd.ErrOrStderr(), "CONTINUE? (Y/N): ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
