package cli

import (
	"fmt"

	"github.com/envq-labs/envq/internal/branding"
)

type target int

const (
	targetKey target = iota
	targetComment
	targetHeader
)

type listMode int

const (
	listValues listMode = iota
	listKeys
)

// selector is what a get, set, or del invocation addresses.
type selector struct {
	target target
	key    string
	file   string
}

// parseListArgs handles `list [keys|values] [file]`. A first argument that is
// neither word is the file.
func parseListArgs(args []string) (listMode, string) {
	if len(args) == 0 {
		return listValues, ""
	}
	switch args[0] {
	case "keys":
		return listKeys, argAt(args, 1)
	case "values":
		return listValues, argAt(args, 1)
	default:
		return listValues, args[0]
	}
}

// parseGetDelArgs handles `get|del [key|comment|header] [key] [file]`.
func parseGetDelArgs(verb string, args []string) (selector, error) {
	if len(args) == 0 {
		return selector{}, usageError("You need to provide what to "+verb+" [key|comment|header].", verb, "key FOO")
	}

	switch args[0] {
	case "header":
		return selector{target: targetHeader, file: argAt(args, 1)}, nil
	case "comment", "key":
		t := targetKey
		if args[0] == "comment" {
			t = targetComment
		}
		if len(args) < 2 {
			return selector{}, usageError("You need to provide the name of key.", verb, args[0]+" FOO")
		}
		return selector{target: t, key: args[1], file: argAt(args, 2)}, nil
	default:
		return selector{target: targetKey, key: args[0], file: argAt(args, 1)}, nil
	}
}

// parseSetArgs handles `set [key|comment|header] [key] value [file]`.
func parseSetArgs(args []string) (selector, string, error) {
	if len(args) == 0 {
		return selector{}, "", usageError("You need to provide what to set [key|comment|header].", "set", "key FOO VALUE")
	}

	switch args[0] {
	case "header":
		if len(args) < 2 {
			return selector{}, "", usageError("You need to provide a value for header.", "set", "header VALUE")
		}
		return selector{target: targetHeader, file: argAt(args, 2)}, args[1], nil
	case "comment", "key":
		t := targetKey
		if args[0] == "comment" {
			t = targetComment
		}
		if len(args) < 3 {
			return selector{}, "", usageError("You need to provide the key and value.", "set", args[0]+" FOO VALUE")
		}
		return selector{target: t, key: args[1], file: argAt(args, 3)}, args[2], nil
	default:
		if len(args) < 2 {
			return selector{}, "", usageError("You need to provide a value.", "set", "FOO VALUE")
		}
		return selector{target: targetKey, key: args[0], file: argAt(args, 2)}, args[1], nil
	}
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// usageError builds the two-line message shown for malformed arguments.
func usageError(msg, verb, example string) error {
	return fmt.Errorf("%s\nExample: %s %s %s", msg, branding.CLIName(), verb, example)
}
