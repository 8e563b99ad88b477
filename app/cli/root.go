// Package cli defines the taskmanager command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags during build.
var Version = "dev"

// flagConfig is the --config value shared by every subcommand.
var flagConfig string

// NewRootCommand builds the command tree. Running the root command with no
// subcommand serves the API.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskmanager",
		Short:         "Task manager API: collections, tasks and subtasks over HTTP",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (.env, .yaml or .json; default: ./.env when present)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	root := NewRootCommand()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
