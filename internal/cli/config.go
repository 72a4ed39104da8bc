package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/envq-labs/envq/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	for _, c := range []*cobra.Command{configSetCmd, configGetCmd, configListCmd, configPathCmd, configValidateCmd} {
		c.Annotations = map[string]string{skipConfigAnnotation: "true"}
		configCmd.AddCommand(c)
	}
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write envq settings stored at ~/.envq/config.yaml.

Settings:
  output            default list format (text, json, yaml)
  redact            mask secret-looking values in list output (true/false)
  backup            copy files to <file>.bak before rewriting (true/false)
  lock              hold <file>.lock while editing (true/false)
  log_level         diagnostics level on stderr (debug, info, warn, error)
  required_version  semantic version constraint for the envq binary

Each setting can also be given as an ENVQ_<SETTING> environment variable.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(flagConfig); err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(flagConfig); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every setting and its current value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(flagConfig); err != nil {
			return err
		}
		for _, key := range config.Keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, config.Get(key))
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(flagConfig); err != nil {
			var invalid *config.InvalidConfigError
			if !errors.As(err, &invalid) {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a config file against the settings schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			path = config.DefaultFilePath()
		}

		result, err := config.ValidateFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s does not exist; defaults apply\n", path)
				return nil
			}
			return err
		}
		if !result.Valid {
			return &config.InvalidConfigError{Path: path, Issues: result.Issues}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
		return nil
	},
}
