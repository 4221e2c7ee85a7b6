package tree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dendrascience/comics/util"
)

// CollisionPolicy decides what Flatten does when a file moved up to the root
// has the same name as a file already there.
type CollisionPolicy int

const (
	// CollisionOverwrite lets the last moved file win.
	CollisionOverwrite CollisionPolicy = iota
	// CollisionRename keeps both files, suffixing the newcomer with _1, _2, ...
	CollisionRename
)

// ParseCollisionPolicy maps "overwrite" and "rename" to a policy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "", "overwrite":
		return CollisionOverwrite, nil
	case "rename":
		return CollisionRename, nil
	}
	return CollisionOverwrite, fmt.Errorf("unknown collision policy %q", s)
}

func (p CollisionPolicy) String() string {
	if p == CollisionRename {
		return "rename"
	}
	return "overwrite"
}

// Flatten moves every file below root directly into root and removes all
// subdirectories. Applying it to a tree that is already flat changes nothing.
func Flatten(root string, policy CollisionPolicy) error {
	for e, err := range Walk(root) {
		if err != nil {
			return err
		}
		path := e.Path()
		info, err := os.Lstat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}

		// Walk has already yielded everything below this directory.
		if info.IsDir() {
			if err := os.RemoveAll(path); err != nil {
				return err
			}
			continue
		}

		if e.Dir == root {
			continue
		}
		dst := filepath.Join(root, e.Name)
		if policy == CollisionRename {
			dst = uniquePath(dst)
		} else if dst, err = clearDirTarget(dst); err != nil {
			return err
		}
		if err := os.Rename(path, dst); err != nil {
			return fmt.Errorf("move %s: %w", path, err)
		}
	}
	return nil
}

// clearDirTarget makes room for a file to be moved onto path when a
// directory of the same name sits in root. A drained directory is removed;
// one still holding files keeps its name and the file gets a free one.
func clearDirTarget(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil || !info.IsDir() {
		return path, nil
	}
	dirents, err := os.ReadDir(path)
	if err != nil {
		return "", err
	}
	if len(dirents) > 0 {
		return uniquePath(path), nil
	}
	return path, os.Remove(path)
}

func uniquePath(path string) string {
	if _, err := os.Lstat(path); os.IsNotExist(err) {
		return path
	}
	base, ext := util.TrimExt(path), util.Ext(path)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
