package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/dendrascience/comics/util"
	"github.com/google/uuid"
)

// ErrPageNameTaken is returned when a new page name belongs to a file that is
// not a page. No page in that directory is renamed.
var ErrPageNameTaken = errors.New("page name taken by a file that is not a page")

// FormatPages renames the pages below root to label followed by a
// zero-padded index and the page's original extension.
//
// A file is a page when pattern matches anywhere in its name. Pages are
// numbered from 1 in walk order, separately for each directory. Files that
// are not pages are deleted when removeUnmatched is set and left alone
// otherwise; they never consume an index.
//
// The pad width is the digit count of the number of entries in the page's
// directory, counted once per directory after unmatched files have been
// removed. Nine pages and a removed credits.txt are therefore numbered 1 to
// 9, not 01 to 09.
func FormatPages(root, label, pattern string, removeUnmatched bool) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid page pattern: %w", err)
	}
	return formatPages(root, label, re, removeUnmatched)
}

func formatPages(root, label string, re *regexp.Regexp, removeUnmatched bool) error {
	var (
		dir   string
		pages []Entry
	)
	for e, err := range Walk(root) {
		if err != nil {
			return err
		}
		// A directory's own entries arrive together, so a new Dir closes the
		// previous directory's numbering.
		if e.Dir != dir {
			if err := renumber(dir, label, pages); err != nil {
				return err
			}
			dir, pages = e.Dir, pages[:0]
		}

		info, err := os.Lstat(e.Path())
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		if info.IsDir() {
			continue
		}

		if !re.MatchString(e.Name) {
			if removeUnmatched {
				if err := os.Remove(e.Path()); err != nil {
					return err
				}
			}
			continue
		}
		pages = append(pages, e)
	}
	return renumber(dir, label, pages)
}

// renumber renames pages in two passes so that a new name never replaces a
// page that has not been renamed yet. Target names held by other files are
// refused before anything moves.
func renumber(dir, label string, pages []Entry) error {
	if len(pages) == 0 {
		return nil
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	width := util.PadWidth(len(dirents))

	current := make(map[string]bool, len(pages))
	for _, p := range pages {
		current[p.Name] = true
	}
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = label + util.PadIndex(i+1, width) + util.Ext(p.Name)
		if current[names[i]] {
			continue
		}
		if _, err := os.Lstat(filepath.Join(dir, names[i])); err == nil {
			return fmt.Errorf("%w: %s", ErrPageNameTaken, filepath.Join(dir, names[i]))
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	staged := make([]string, len(pages))
	for i, p := range pages {
		staged[i] = filepath.Join(dir, ".page-"+uuid.NewString()+util.Ext(p.Name))
		if err := os.Rename(p.Path(), staged[i]); err != nil {
			return err
		}
	}
	for i := range pages {
		if err := os.Rename(staged[i], filepath.Join(dir, names[i])); err != nil {
			return err
		}
	}
	return nil
}
