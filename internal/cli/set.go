package cli

import (
	"github.com/envq-labs/envq/internal/dotenv"
	"github.com/envq-labs/envq/internal/logger"
	"github.com/spf13/cobra"
)

func init() {
	addEditFlags(setCmd)
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set [key|comment|header] [key] value [file]",
	Short: "Set a value, an inline comment, or the header",
	Long: `Set the value of a key, its inline comment, or the file header.

  envq set FOO bar .env                 # update FOO, or append it
  envq set comment FOO "why" .env       # FOO=bar # why
  envq set header "Line 1
Line 2" .env                            # replace the header

Setting a value keeps the key's comment. Setting a comment on a missing key
does nothing. Without a file the result is written to stdout.`,
	Args: cobra.MaximumNArgs(4),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	sel, value, err := parseSetArgs(args)
	if err != nil {
		return err
	}

	return editDocument(cmd, sel.file, func(doc *dotenv.Document) {
		switch sel.target {
		case targetKey:
			doc.SetValue(sel.key, value)
		case targetComment:
			if !doc.SetComment(sel.key, value) {
				logger.Warn(cmd.Context(), "No key %s, comment not set", sel.key)
			}
		case targetHeader:
			doc.SetHeader(value)
		}
	})
}
