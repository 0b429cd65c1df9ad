// Package main hosts the siteswap command line tool.
//
// The Cobra command tree renders markdown documents and single blocks,
// explains how a block's parameters were resolved, recovers block text from
// rendered HTML, and edits the persisted settings snapshot. Configuration and
// logging are resolved once per invocation in commandContext.
package main
