// Package config loads the autolist host configuration.
//
// Files are TOML or YAML, chosen by extension. Missing keys keep their
// defaults; a missing file yields Default. The file location defaults to
// $XDG_CONFIG_HOME/autolist/config.toml and can be overridden with the
// AUTOLIST_CONFIG environment variable.
package config
