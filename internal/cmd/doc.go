// Package cmd provides the command-line interface implementation for comics.
//
// This package contains all the subcommand implementations for the comics CLI
// tool. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, configuration and logging
//   - cbz: Convert containers to CBZ
//   - pages: Flatten directories and renumber pages
//   - rename: Rename containers, optionally ordered or cleaned up
//   - search: Search entry names inside containers
//   - uncompress: Extract containers
//   - validate: Report (and optionally repair) layout problems
//   - seed: Generate sample containers to try the other commands on
//   - version: Print build information
//
// Every PATH argument may be a container, a directory whose containers are
// processed in name order, or a glob such as "library/**/*.cbr". Containers
// are processed one at a time; the first failure stops the batch.
package cmd
