// Package config loads, normalizes, validates, and persists the siteswap
// renderer's host configuration.
//
// The settings section is the snapshot merged under every block. Values read
// from the file overlay the defaults, so a file that names only a few keys
// still yields a complete configuration.
package config
