package cli

import (
	"fmt"

	"github.com/envq-labs/envq/internal/config"
	"github.com/envq-labs/envq/internal/diff"
	"github.com/envq-labs/envq/internal/dotenv"
	"github.com/envq-labs/envq/internal/envio"
	"github.com/envq-labs/envq/internal/logger"
	"github.com/envq-labs/envq/internal/platform"
	"github.com/spf13/cobra"
)

// addEditFlags registers the flags shared by commands that rewrite a file.
func addEditFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Print a diff of the change instead of writing it")
	cmd.Flags().Bool("backup", false, "Copy the file to <file>.bak before rewriting it")
	cmd.Flags().Bool("lock", false, "Hold <file>.lock while editing so concurrent envq runs wait")
}

// readDocument reads and parses the file, or stdin when file is empty.
func readDocument(cmd *cobra.Command, file string) (string, *dotenv.Document, error) {
	content, err := envio.ReadInput(file, cmd.InOrStdin())
	if err != nil {
		return "", nil, err
	}
	doc, err := dotenv.Parse(content)
	if err != nil {
		if file != "" {
			return "", nil, fmt.Errorf("%s: %w", file, err)
		}
		return "", nil, err
	}
	logger.Debug(cmd.Context(), "Parsed document", "file", file, "entries", doc.Len())
	return content, doc, nil
}

// editDocument runs a read-modify-write cycle on file. With --dry-run it
// prints the diff and leaves the file alone. A file whose rendered content
// did not change is not rewritten.
func editDocument(cmd *cobra.Command, file string, mutate func(*dotenv.Document)) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if file != "" && !dryRun && resolveBool(cmd, "lock", config.KeyLock) {
		unlock, err := envio.Lock(ctx, file)
		if err != nil {
			return err
		}
		defer unlock()
		logger.Debug(ctx, "Locked %s", file)
	}

	before, doc, err := readDocument(cmd, file)
	if err != nil {
		return err
	}

	mutate(doc)
	after := doc.String()

	if dryRun {
		_, err := fmt.Fprint(cmd.OutOrStdout(), diff.Lines(before, after))
		return err
	}

	if file != "" && after == before {
		logger.Debug(ctx, "No change to %s, not rewriting", file)
		return nil
	}
	if file != "" && platform.IsSymlink(file) {
		logger.Debug(ctx, "Writing through symlink %s", file)
	}

	opts := envio.WriteOptions{Backup: resolveBool(cmd, "backup", config.KeyBackup)}
	if err := envio.WriteOutput(file, after, cmd.OutOrStdout(), opts); err != nil {
		return err
	}
	if file != "" {
		logger.Debug(ctx, "Wrote %s (%d bytes)", file, len(after))
	}
	return nil
}
