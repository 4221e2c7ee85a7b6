package cmd

import (
	"fmt"

	"github.com/dendrascience/comics/util"
	"github.com/spf13/cobra"
)

// NewRenameCmd creates and returns the rename subcommand for the comics CLI.
func NewRenameCmd(a *app) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "rename PATH",
		Short: "Rename comic archives",
		Long: `Rename comic archives, keeping their extensions.

With --order, the archives under PATH are renamed in name order to the given
prefix followed by a zero-padded sequence number ("Vol 01", "Vol 02", ...).
With --cleanup, text in parentheses or square brackets is removed from the
title.`,
		Example: `  comics rename --cleanup "Some Comic (2001) [scan].cbz"
  comics rename --order "Vol " library/some-comic/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, a, args[0], order)
		},
	}

	cmd.Flags().StringVarP(&order, "order", "o", "", "Prefix for sequentially numbered titles")
	cmd.Flags().BoolP("cleanup", "c", false, "Remove bracketed text from titles")
	a.bind(cmd, "rename.cleanup", "cleanup")

	return cmd
}

func runRename(cmd *cobra.Command, a *app, path, order string) error {
	paths, err := collectPaths(path)
	if err != nil {
		return err
	}

	width := util.PadWidth(len(paths))
	for i, p := range paths {
		c, err := a.open(p)
		if err != nil {
			return err
		}
		var title string
		if order != "" {
			title = order + util.PadIndex(i+1, width)
		}
		if err := c.Rename(title, a.cfg.Rename.Cleanup); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", p, c.Archive().Filename)
	}
	return nil
}
