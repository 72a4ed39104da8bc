package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/envq-labs/envq/internal/branding"
	"github.com/envq-labs/envq/internal/config"
	"github.com/envq-labs/envq/internal/logger"
	"github.com/envq-labs/envq/internal/version"
	"github.com/spf13/cobra"
)

// ErrNotFound is returned by get when the key is missing. It ends the
// process with exit code 1 and no message.
var ErrNotFound = errors.New("not found")

// skipConfigAnnotation marks commands that load the config themselves.
const skipConfigAnnotation = "envq/skip-config"

var buildInfo = version.Info{Version: version.DevVersion, Commit: "unknown", Date: "unknown"}

var (
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` queries and edits .env files (KEY=VALUE lines with optional
inline comments and a leading comment header). Lines that are not edited are
written back exactly as they were read.

Every command reads the named file, or stdin when no file is given. Edits are
written back to the file atomically, or to stdout when reading from stdin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfigAnnotation] == "true" {
			return nil
		}
		if err := config.Load(flagConfig); err != nil {
			return err
		}

		levelName := config.LogLevel()
		if flagVerbose {
			levelName = "debug"
		}
		level, err := logger.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logger.SetLevel(level)

		return version.CheckRequired(config.Get(config.KeyRequiredVersion), buildInfo.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Write debug diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $ENVQ_HOME/config.yaml or ~/.envq/config.yaml)")
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(v, commit, date string) int {
	buildInfo = version.Info{Version: v, Commit: commit, Date: date}
	slog.SetDefault(logger.NewLogger())
	return run(context.Background())
}

func run(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ErrNotFound) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// resolveBool returns the flag value when it was given on the command line,
// otherwise the config setting.
func resolveBool(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	return config.GetBool(key)
}
