package cmd

import (
	"fmt"

	"github.com/dendrascience/comics/comic"
	"github.com/spf13/cobra"
)

// NewPagesCmd creates and returns the pages subcommand for the comics CLI.
// It flattens comics and renumbers their pages.
func NewPagesCmd(a *app) *cobra.Command {
	var (
		flatten bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "pages PATH",
		Short: "Flatten comics and renumber their pages",
		Long: `Flatten comic archives and give their pages consistent names.

With --flatten, every file is moved to the top level of the archive and the
folders are removed. With --pagename, files whose names match --regex are
renamed to LABEL followed by a zero-padded page number, counted separately
in each folder. --remove deletes files that do not match.

The result is always saved as CBZ.`,
		Example: `  comics pages --flatten library/
  comics pages -f -p "Page " -r '\d+' -R "Some Comic.cbr"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(cmd, a, args[0], flatten, force)
		},
	}

	cmd.Flags().StringP("pagename", "p", "", "Label for renumbered pages, e.g. \"Page \"")
	cmd.Flags().StringP("regex", "r", `\d+`, "Pattern a file name must contain to count as a page")
	cmd.Flags().BoolP("remove", "R", false, "Remove files that do not match --regex")
	cmd.Flags().String("collision", "overwrite", "What flattening does with clashing names (overwrite, rename)")
	cmd.Flags().BoolVarP(&flatten, "flatten", "f", false, "Move every file to the top level of the archive")
	cmd.Flags().BoolVar(&force, "force", false, "Remove a leftover staging directory before starting")

	a.bind(cmd, "pages.label", "pagename")
	a.bind(cmd, "pages.pattern", "regex")
	a.bind(cmd, "pages.remove", "remove")
	a.bind(cmd, "flatten.collision", "collision")

	return cmd
}

func runPages(cmd *cobra.Command, a *app, path string, flatten, force bool) error {
	paths, err := collectPaths(path)
	if err != nil {
		return err
	}
	if err := a.clearStaging(force); err != nil {
		return err
	}

	p := a.cfg.Pages
	return a.each(cmd.Context(), paths, func(c *comic.Comic) error {
		if flatten {
			if err := c.Flatten(); err != nil {
				return err
			}
		}
		if p.Label != "" {
			if err := c.FormatPages(p.Label, p.Pattern, p.Remove); err != nil {
				return err
			}
		}
		if err := c.Edit(); err != nil {
			return err
		}
		if err := c.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Formatted %s\n", c.Archive().Path)
		return nil
	})
}
