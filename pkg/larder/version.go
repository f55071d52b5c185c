// Package larder holds module-level metadata for the larder inventory tool.
package larder

// Version is the release version reported by `larder version`.
const Version = "0.1.0"
