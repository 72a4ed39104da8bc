package cli

import (
	"github.com/envq-labs/envq/internal/dotenv"
	"github.com/envq-labs/envq/internal/logger"
	"github.com/spf13/cobra"
)

func init() {
	addEditFlags(delCmd)
	rootCmd.AddCommand(delCmd)
}

var delCmd = &cobra.Command{
	Use:     "del [key|comment|header] [key] [file]",
	Aliases: []string{"delete", "rm"},
	Short:   "Delete a key, an inline comment, or the header",
	Long: `Delete a key (together with its comment), only its inline comment, or the
file header.

  envq del FOO .env             # remove FOO
  envq del comment FOO .env     # keep FOO, drop its comment
  envq del header .env          # drop the header block

Deleting something that does not exist is not an error.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runDel,
}

func runDel(cmd *cobra.Command, args []string) error {
	sel, err := parseGetDelArgs("del", args)
	if err != nil {
		return err
	}

	return editDocument(cmd, sel.file, func(doc *dotenv.Document) {
		var found bool
		switch sel.target {
		case targetKey:
			found = doc.DeleteKey(sel.key)
		case targetComment:
			found = doc.DeleteComment(sel.key)
		case targetHeader:
			doc.DeleteHeader()
			return
		}
		if !found {
			logger.Debug(cmd.Context(), "No key %s, nothing deleted", sel.key)
		}
	})
}
