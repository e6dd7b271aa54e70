// Package config loads and merges gradegate configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GRADEGATE_BIN, GRADEGATE_TIMEOUT_SECONDS, ...)
//  3. Config file ($XDG_CONFIG_HOME/gradegate/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key from the `config set` command.
package config
