package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get [key|comment|header] [key] [file]",
	Short: "Print a value, an inline comment, or the header",
	Long: `Print the value of a key, its inline comment, or the file header.

  envq get FOO .env             # value of FOO
  envq get comment FOO .env     # inline comment of FOO
  envq get header .env          # header block

Exits with status 1 and prints nothing when the key does not exist. A key
without a comment prints nothing for "get comment" and succeeds.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	sel, err := parseGetDelArgs("get", args)
	if err != nil {
		return err
	}

	_, doc, err := readDocument(cmd, sel.file)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch sel.target {
	case targetKey:
		value, ok := doc.Value(sel.key)
		if !ok {
			return ErrNotFound
		}
		fmt.Fprintln(w, value)
	case targetComment:
		if !doc.Has(sel.key) {
			return ErrNotFound
		}
		if comment, ok := doc.Comment(sel.key); ok {
			fmt.Fprintln(w, comment)
		}
	case targetHeader:
		if header, ok := doc.Header(); ok {
			fmt.Fprint(w, header)
		}
	}
	return nil
}
