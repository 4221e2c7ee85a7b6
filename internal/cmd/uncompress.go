package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUncompressCmd creates and returns the uncompress subcommand for the comics CLI.
func NewUncompressCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "uncompress PATH",
		Short: "Extract comic archives",
		Long: `Extract comic archives next to themselves, or into --output.

Entries that would land outside the output directory are rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUncompress(cmd, a, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory to extract into (default: next to each archive)")

	return cmd
}

func runUncompress(cmd *cobra.Command, a *app, path, output string) error {
	if output != "" && pathsOverlap(output, a.cfg.StagingDir) {
		return fmt.Errorf("output %s overlaps the staging directory %s", output, a.cfg.StagingDir)
	}

	paths, err := collectPaths(path)
	if err != nil {
		return err
	}
	for _, p := range paths {
		c, err := a.open(p)
		if err != nil {
			return err
		}
		if err := c.Uncompress(output); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uncompressed %s\n", p)
	}
	return nil
}
