package cli

import (
	"github.com/envq-labs/envq/internal/config"
	"github.com/envq-labs/envq/internal/output"
	"github.com/spf13/cobra"
)

var listOutput string

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Output format: text, json, or yaml (default from config, else text)")
	listCmd.Flags().Bool("redact", false, "Mask values of keys that look like secrets")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [keys|values] [file]",
	Short: "List keys, or keys with their values",
	Long: `List the keys of an env file, one per line, or KEY=value pairs.

  envq list .env            # KEY=value for every key
  envq list keys .env       # only the keys
  cat .env | envq list      # read from stdin

With --output json or yaml, values also carry their inline comments.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	mode, file := parseListArgs(args)

	formatName := listOutput
	if !cmd.Flags().Changed("output") {
		formatName = config.Output()
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	_, doc, err := readDocument(cmd, file)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if mode == listKeys {
		return output.WriteKeys(w, doc.Keys(), format)
	}
	return output.WriteValues(w, output.Pairs(doc, resolveBool(cmd, "redact", config.KeyRedact)), format)
}
