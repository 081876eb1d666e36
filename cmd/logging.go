package cmd

import (
	"fmt"
	"os"

	"github.com/csproj/pkg/csproj"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevelEnv selects the log level. Logging is off when it is unset.
const logLevelEnv = "CSPROJ_LOG_LEVEL"

func setupLogging(cmd *cobra.Command, args []string) error {
	// Help never fails, whatever the environment says
	if csproj.WantsHelp(args) {
		logger = zap.NewNop()
		return nil
	}

	l, err := newLogger(os.Getenv(logLevelEnv))
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// newLogger builds a stderr logger for level, or a no-op logger when level
// is empty.
func newLogger(level string) (*zap.Logger, error) {
	if level == "" {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", logLevelEnv, err)
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
