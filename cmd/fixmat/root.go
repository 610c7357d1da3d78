// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "fixmat",
		Short: "Inspect and transpose fixed-shape matrices",
		Long: `fixmat decodes a YAML list of rows into a matrix whose shape is fixed at
compile time, then prints it or its transpose. Supported shapes are listed
by "fixmat shapes".`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newShowCmd(), newTransposeCmd(), newShapesCmd())

	return root
}
