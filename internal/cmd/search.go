package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates and returns the search subcommand for the comics CLI.
func NewSearchCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "search PATH",
		Short: "Search comic archives for entry names",
		Long: `List the entries of each comic archive whose names contain QUERY.

Archives with no matching entries are not printed. The search is case
sensitive and matches anywhere in the entry path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return errors.New("a --query is required")
			}
			return runSearch(cmd, a, args[0], query)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Text to look for in entry names")

	return cmd
}

func runSearch(cmd *cobra.Command, a *app, path, query string) error {
	paths, err := collectPaths(path)
	if err != nil {
		return err
	}

	r := newRenderer(cmd.OutOrStdout())
	printed := false
	for _, p := range paths {
		c, err := a.open(p)
		if err != nil {
			return err
		}
		results, err := c.Search(query)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			continue
		}
		if printed {
			r.blank()
		}
		r.results(p, results)
		printed = true
	}
	return nil
}
