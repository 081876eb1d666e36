package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "csproj --get <KEY> [PATH] | --set <KEY>=\"<VALUE>\" [PATH]",
	Short: "Get and set metadata values in .csproj files",
	Long: `csproj reads and writes metadata fields of .NET project files.

Supported operations:
  - Print the value of a field (--get)
  - Set or create a field, optionally reusing its old value via #&VALUE (--set)

When no path is given, the single .csproj file in the current directory is used.

Examples:
  # Print the package version
  csproj --get Version

  # Bump the description of a specific project
  csproj --set Description="#&VALUE (preview)" src/App/App.csproj`,
	// Arguments are positional and may contain -h/--help anywhere
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	RunE:               runRoot,
}

// Execute runs the root command and is the only place that decides the exit
// status.
func Execute() {
	err := execute(os.Args[1:])
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the root command with args. Cobra claims the first token for
// its hidden completion command, so those names bypass it and are rejected
// by the argument parser like any other unknown command.
func execute(args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		return run(args, dir, rootCmd.OutOrStdout())
	}

	// cobra reads os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
