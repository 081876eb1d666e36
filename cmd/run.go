package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/csproj/pkg/csproj"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runRoot(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	return run(args, dir, cmd.OutOrStdout())
}

// run parses args, with dir as the discovery directory, and performs the
// requested operation. Values and usage text go to stdout.
func run(args []string, dir string, stdout io.Writer) error {
	inv, err := csproj.ParseArgs(args, dir)
	if err != nil {
		return err
	}

	switch inv.Command {
	case csproj.CommandGet:
		return runGet(inv, stdout)
	case csproj.CommandSet:
		return runSet(inv)
	case csproj.CommandHelp:
		return csproj.WriteUsage(stdout)
	default:
		return fmt.Errorf("unsupported command: %s", inv.Command)
	}
}

func runGet(inv csproj.Invocation, stdout io.Writer) error {
	doc, err := csproj.Load(inv.Path)
	if err != nil {
		return err
	}

	value, err := csproj.Get(doc, inv.Key)
	if err != nil {
		return err
	}
	logger.Debug("Read field",
		zap.String("path", inv.Path),
		zap.String("key", string(inv.Key)),
		zap.String("value", value))

	_, err = io.WriteString(stdout, value)
	return err
}

func runSet(inv csproj.Invocation) error {
	doc, err := csproj.Load(inv.Path)
	if err != nil {
		return err
	}

	res, err := csproj.Set(doc, inv.Key, inv.Value)
	if err != nil {
		return err
	}
	logger.Debug("Updated field",
		zap.String("path", inv.Path),
		zap.String("key", string(inv.Key)),
		zap.String("previous", res.Previous),
		zap.String("value", res.Value),
		zap.Int("updated", res.Updated),
		zap.Bool("created", res.Created))

	return doc.Save()
}
