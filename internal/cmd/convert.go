package cmd

import (
	"fmt"

	"github.com/dendrascience/comics/comic"
	"github.com/spf13/cobra"
)

// NewConvertCmd creates and returns the cbz subcommand for the comics CLI.
// It repacks ZIP, RAR and CBR comics as CBZ.
func NewConvertCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "cbz PATH",
		Aliases: []string{"convert"},
		Short:   "Convert comic archives to CBZ",
		Long: `Convert comic archives to the CBZ format.

Each archive is unpacked into the staging directory and written back as a
CBZ next to the original, which is removed once the new file is in place.
Archives that are already CBZ are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove a leftover staging directory before starting")

	return cmd
}

func runConvert(cmd *cobra.Command, a *app, path string, force bool) error {
	paths, err := collectPaths(path)
	if err != nil {
		return err
	}
	if err := a.clearStaging(force); err != nil {
		return err
	}

	return a.each(cmd.Context(), paths, func(c *comic.Comic) error {
		before := c.Archive().Path
		if err := c.Convert(); err != nil {
			return err
		}
		if after := c.Archive().Path; after != before {
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %s to %s\n", before, after)
		} else {
			a.logger.Debug("already cbz", "path", before)
		}
		return nil
	})
}
