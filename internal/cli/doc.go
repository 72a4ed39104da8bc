// Package cli defines the Cobra command tree for the envq CLI. Each file
// registers one top-level command (list, get, set, del, config, version) with
// the root command. Commands parse their positional arguments, delegate the
// edit to the dotenv package, and only handle I/O and exit status here.
package cli
