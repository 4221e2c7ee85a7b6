package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/dendrascience/comics/archive"
	"github.com/dendrascience/comics/comic"
	"github.com/dendrascience/comics/util"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates and returns the validate subcommand for the comics CLI.
// It reports comics that are unreadable, empty, nested or not yet CBZ.
func NewValidateCmd(a *app) *cobra.Command {
	var (
		repair bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "validate PATH",
		Short: "Check comic archives for common problems",
		Long: `Check comic archives for problems.

An archive is reported when it cannot be read, has no entries, contains no
page images, keeps its pages in folders, or is not a CBZ. With --repair,
nested and non-CBZ archives are flattened and saved as CBZ.

The command fails if any problem remains.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, a, args[0], repair, force)
		},
	}

	cmd.Flags().BoolVarP(&repair, "repair", "r", false, "Flatten nested archives and convert them to CBZ")
	cmd.Flags().BoolVar(&force, "force", false, "Remove a leftover staging directory before starting")

	return cmd
}

// problems is the outcome of checking one archive.
type problems struct {
	issues     []string
	repairable bool
}

func (p *problems) add(issue string) {
	p.issues = append(p.issues, issue)
}

func checkArchive(a archive.Archive) problems {
	var p problems

	names, err := a.Entries()
	if err != nil {
		p.add(fmt.Sprintf("cannot read archive: %v", err))
		return p
	}
	if len(names) == 0 {
		p.add("archive is empty")
		return p
	}

	folders := make(map[string]bool)
	pages := 0
	for _, name := range names {
		if strings.HasSuffix(name, "/") {
			folders[strings.TrimSuffix(name, "/")] = true
			continue
		}
		if dir := path.Dir(name); dir != "." {
			folders[dir] = true
		}
		if util.IsImage(name) {
			pages++
		}
	}

	if pages == 0 {
		p.add("no page images")
	}
	if len(folders) > 0 {
		p.add(fmt.Sprintf("pages are nested in %d folder(s)", len(folders)))
		p.repairable = true
	}
	if a.Ext != archive.CanonicalExt {
		p.add(fmt.Sprintf("%s is not %s", a.Ext, archive.CanonicalExt))
		p.repairable = true
	}
	return p
}

func runValidate(cmd *cobra.Command, a *app, target string, repair, force bool) error {
	paths, err := collectPaths(target)
	if err != nil {
		return err
	}
	if repair {
		if err := a.clearStaging(force); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	r := newRenderer(out)
	failed := 0

	for _, p := range paths {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		c, err := a.open(p)
		if err != nil {
			return err
		}

		found := checkArchive(c.Archive())
		if len(found.issues) == 0 {
			a.logger.Debug("valid", "path", p)
			continue
		}
		r.issues(p, found.issues)

		if repair && found.repairable {
			if err := repairComic(a, c); err != nil {
				fmt.Fprintf(out, "Failed to repair %s: %v\n", p, err)
			} else {
				fmt.Fprintf(out, "Repaired %s\n", c.Archive().Path)
				found = checkArchive(c.Archive())
			}
		}
		if len(found.issues) > 0 {
			failed++
		}
	}

	fmt.Fprintf(out, "\nValidation complete:\n")
	fmt.Fprintf(out, "  Archives checked: %d\n", len(paths))
	fmt.Fprintf(out, "  Archives with problems: %d\n", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d archives have problems", failed, len(paths))
	}
	return nil
}

func repairComic(a *app, c *comic.Comic) error {
	err := c.Flatten()
	if err == nil {
		err = c.Save()
	}
	if err != nil {
		if derr := c.Discard(); derr != nil {
			a.logger.Warn("could not remove staging directory", "dir", c.StagingDir(), "err", derr)
		}
	}
	return err
}
