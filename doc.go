// Package main provides the comics command-line interface.
//
// comics manages file archives for comic books. It converts CBR, RAR and ZIP
// archives to CBZ, flattens nested chapter folders, renumbers pages, renames
// archives and searches their entries.
//
// The main binary supports these subcommands:
//   - cbz: Convert archives to CBZ
//   - pages: Flatten archives and renumber their pages
//   - rename: Rename archives, optionally in sequence
//   - search: List entries whose names contain a query
//   - uncompress: Extract archives
//   - validate: Report and repair nested or non-CBZ archives
//   - seed: Generate sample archives
package main
