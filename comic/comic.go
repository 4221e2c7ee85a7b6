package comic

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dendrascience/comics/archive"
	"github.com/dendrascience/comics/tree"
	"github.com/dendrascience/comics/util"
	"github.com/google/uuid"
)

// State is the edit state of a Comic.
type State int

const (
	// Clean means no staging directory exists for the comic.
	Clean State = iota
	// Editing means the comic is unpacked in the staging directory.
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "clean"
}

var titleNoise = regexp.MustCompile(`\(.*?\)|\[.*?\]`)

// Comic is a container plus its edit session.
type Comic struct {
	archive archive.Archive
	title   string
	state   State
	opts    Options

	// writer builds the canonical archive in Save.
	writer archive.Codec
}

// Open returns a Clean comic for the container at path.
func Open(path string, opts ...Option) (*Comic, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	a, err := archive.Open(path)
	if err != nil {
		return nil, err
	}
	canonical, _ := archive.FormatOf(archive.CanonicalExt)
	return &Comic{
		archive: a,
		title:   util.TrimExt(a.Filename),
		opts:    *o,
		writer:  canonical.Codec(),
	}, nil
}

// Archive returns the current container handle.
func (c *Comic) Archive() archive.Archive { return c.archive }

// Title is the container's file name without its extension.
func (c *Comic) Title() string { return c.title }

// State reports whether the comic is being edited.
func (c *Comic) State() State { return c.state }

// StagingDir is where the comic is unpacked while Editing.
func (c *Comic) StagingDir() string { return c.opts.StagingDir }

// Edit unpacks the comic into the staging directory. It does nothing if the
// comic is already being edited, and fails with ErrStagingExists if another
// session left the staging directory behind.
func (c *Comic) Edit() error {
	if c.state == Editing {
		return nil
	}
	dir := c.opts.StagingDir
	if _, err := os.Lstat(dir); err == nil {
		return fmt.Errorf("%w: %s", ErrStagingExists, dir)
	} else if !os.IsNotExist(err) {
		return err
	}

	c.opts.Logger.Debug("unpacking", "path", c.archive.Path, "staging", dir)
	if err := c.archive.Uncompress(dir); err != nil {
		os.RemoveAll(dir)
		return fmt.Errorf("edit %s: %w", c.archive.Path, err)
	}
	c.state = Editing
	return nil
}

// Save repacks the staging directory as a CBZ that replaces the original
// container, removes the staging directory and rebinds the comic to the new
// file. It does nothing unless the comic is being edited.
//
// The new archive is written next to the original under a temporary name
// and only swapped in once it is complete (and verified, when enabled). If
// Save fails before the swap the original is untouched and the comic stays
// in Editing, so the caller may retry or Discard.
func (c *Comic) Save() error {
	if c.state != Editing {
		return nil
	}
	original := c.archive.Path
	target := util.ChangeExt(original, archive.CanonicalExt)
	if target != original {
		if _, err := os.Lstat(target); err == nil {
			return fmt.Errorf("%w: %s", ErrTargetExists, target)
		}
	}

	tmp := fmt.Sprintf("%s.%s.tmp", target, uuid.NewString())
	c.opts.Logger.Debug("repacking", "staging", c.opts.StagingDir, "target", target)
	if err := c.writer.Write(c.opts.StagingDir, tmp, true); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %s: %w", original, err)
	}
	if c.opts.Verify {
		if err := c.verify(tmp); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("save %s: %w: %v", original, ErrVerifyFailed, err)
		}
	}

	if err := c.swap(original, tmp, target); err != nil {
		return fmt.Errorf("save %s: %w", original, err)
	}

	a, err := archive.Open(target)
	if err != nil {
		return err
	}
	c.archive = a
	c.title = util.TrimExt(a.Filename)

	// The session ends only once the staging directory is gone; a retry
	// saves the same tree onto the new target.
	if err := os.RemoveAll(c.opts.StagingDir); err != nil {
		return fmt.Errorf("remove staging directory: %w", err)
	}
	c.state = Clean
	c.opts.Logger.Debug("saved", "path", target)
	return nil
}

// swap moves the finished archive at tmp to target and removes the original
// when it lives at a different path. The new file is in place before the
// original is removed.
func (c *Comic) swap(original, tmp, target string) error {
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return err
	}
	if target == original {
		return nil
	}
	if err := os.Remove(original); err != nil {
		// Put things back the way they were.
		os.Remove(target)
		return err
	}
	return nil
}

func (c *Comic) verify(path string) error {
	want, err := archive.DigestDir(c.opts.StagingDir, true)
	if err != nil {
		return err
	}
	got, err := c.writer.Digest(path)
	if err != nil {
		return err
	}
	return archive.CompareDigests(want, got)
}

// Discard drops the staging directory without saving.
func (c *Comic) Discard() error {
	if c.state != Editing {
		return nil
	}
	c.opts.Logger.Debug("discarding", "staging", c.opts.StagingDir)
	if err := os.RemoveAll(c.opts.StagingDir); err != nil {
		return err
	}
	c.state = Clean
	return nil
}

// Convert repacks the comic as a CBZ without changing its pages. It does
// nothing if the comic is already a CBZ or is being edited.
func (c *Comic) Convert() error {
	if c.archive.Ext == archive.CanonicalExt || c.state == Editing {
		return nil
	}
	if err := c.Edit(); err != nil {
		return err
	}
	if err := c.Save(); err != nil {
		c.Discard()
		return err
	}
	return nil
}

// Rename changes the container's file name, keeping its extension. An empty
// title keeps the current one, which is useful with cleanup: that strips
// every (...) and [...] group and surrounding whitespace from the title.
// Renaming does not need an edit session.
func (c *Comic) Rename(title string, cleanup bool) error {
	newTitle := title
	if newTitle == "" {
		newTitle = c.title
	}
	if cleanup {
		newTitle = strings.TrimSpace(titleNoise.ReplaceAllString(newTitle, ""))
	}
	if newTitle == "" || strings.ContainsAny(newTitle, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidTitle, newTitle)
	}
	if newTitle == c.title {
		return nil
	}

	newPath := filepath.Join(c.archive.Dir, newTitle+c.archive.Ext)
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, newPath)
	}
	c.opts.Logger.Debug("renaming", "from", c.archive.Path, "to", newPath)
	if err := os.Rename(c.archive.Path, newPath); err != nil {
		return err
	}

	a, err := archive.Open(newPath)
	if err != nil {
		return err
	}
	c.archive = a
	c.title = newTitle
	return nil
}

// Flatten moves every page up to the top of the comic and removes all
// directories. It starts an edit session if needed.
func (c *Comic) Flatten() error {
	if err := c.Edit(); err != nil {
		return err
	}
	c.opts.Logger.Debug("flattening", "staging", c.opts.StagingDir, "collisions", c.opts.Collision)
	return tree.Flatten(c.opts.StagingDir, c.opts.Collision)
}

// FormatPages renames pages to label plus a zero-padded number, see
// tree.FormatPages. It starts an edit session if needed.
//
//	label = "Page ", pattern = ".+"
//
//	foobar_1.jpg -> Page 1.jpg
//	foobar_2.jpg -> Page 2.jpg
func (c *Comic) FormatPages(label, pattern string, removeUnmatched bool) error {
	if err := c.Edit(); err != nil {
		return err
	}
	c.opts.Logger.Debug("formatting pages", "label", label, "pattern", pattern, "remove", removeUnmatched)
	return tree.FormatPages(c.opts.StagingDir, label, pattern, removeUnmatched)
}

// Search lists the container entries whose names contain query.
func (c *Comic) Search(query string) ([]string, error) {
	return c.archive.Search(query)
}

// Uncompress extracts the container to dst, or next to it when dst is empty.
func (c *Comic) Uncompress(dst string) error {
	return c.archive.Uncompress(dst)
}

// RemoveStaging deletes a staging directory, typically one orphaned by an
// interrupted run. A missing directory is not an error.
func RemoveStaging(dir string) error {
	if dir == "" {
		dir = DefaultStagingDir
	}
	return os.RemoveAll(dir)
}
