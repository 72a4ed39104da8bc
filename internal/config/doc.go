// Package config manages user-level settings stored at ~/.envq/config.yaml
// (or $ENVQ_HOME/config.yaml). Every setting can also come from an ENVQ_*
// environment variable. The file is checked against an embedded JSON schema
// when it is loaded and before `config set` writes it.
package config
