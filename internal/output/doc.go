// Package output renders the result of `envq list` as plain text, JSON, or
// YAML, and masks values whose key names look like secrets.
package output
