// Package cli implements the timetable command line tool.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "timetable",
		Short:         "Extract per-group course schedules from timetable pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")

	root.AddCommand(newParseCommand(&cfgPath))
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error { return NewRootCommand().Execute() }
