package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dendrascience/comics/archive"
	"github.com/dendrascience/comics/comic"
)

// collectPaths expands a PATH argument into the containers to process.
//
// A path that does not exist but contains glob syntax is expanded and
// filtered to supported containers, so names like "Comic [scan].cbz" are
// taken literally when they exist. A directory yields its supported
// containers in name order; anything else in it is skipped. Any other path is
// returned as is, so a missing file surfaces as archive.ErrNotFound when it
// is opened.
func collectPaths(path string) ([]string, error) {
	info, statErr := os.Stat(path)
	if statErr != nil && strings.ContainsAny(path, "*?[{") {
		matches, err := doublestar.FilepathGlob(path)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", path, err)
		}
		var paths []string
		for _, m := range matches {
			if isContainer(m) {
				paths = append(paths, m)
			}
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("%w: no comic archives match %q", archive.ErrNotFound, path)
		}
		slices.Sort(paths)
		return paths, nil
	}

	if statErr != nil || !info.IsDir() {
		return []string{path}, nil
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, d := range dirents {
		p := filepath.Join(path, d.Name())
		if isContainer(p) {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

func isContainer(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && archive.IsSupported(path)
}

// each opens every path and runs fn on it, stopping at the first error or
// when ctx is cancelled between comics. A comic left in an edit session by a
// failure has its staging directory removed before the error is returned.
func (a *app) each(ctx context.Context, paths []string, fn func(c *comic.Comic) error) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := a.open(path)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			if derr := c.Discard(); derr != nil {
				a.logger.Warn("could not remove staging directory", "dir", c.StagingDir(), "err", derr)
			}
			if errors.Is(err, comic.ErrStagingExists) {
				return fmt.Errorf("%s: %w (another run may be in progress; use --force to remove it)", path, err)
			}
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// clearStaging removes an orphaned staging directory when force is set.
func (a *app) clearStaging(force bool) error {
	if !force {
		return nil
	}
	dir := a.cfg.StagingDir
	if _, err := os.Lstat(dir); os.IsNotExist(err) {
		return nil
	}
	a.logger.Warn("removing existing staging directory", "dir", dir)
	return comic.RemoveStaging(dir)
}

// pathsOverlap reports whether one of the paths contains the other.
func pathsOverlap(path1, path2 string) bool {
	abs1, err1 := filepath.Abs(path1)
	abs2, err2 := filepath.Abs(path2)
	if err1 != nil || err2 != nil {
		return filepath.Clean(path1) == filepath.Clean(path2)
	}
	return within(abs1, abs2) || within(abs2, abs1)
}

func within(path, parent string) bool {
	rel, err := filepath.Rel(parent, path)
	return err == nil && filepath.IsLocal(rel)
}
