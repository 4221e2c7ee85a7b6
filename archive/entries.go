package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/comics/util"
)

// entryName is the archive name for path, a file or directory below srcDir.
func entryName(srcDir, path string, excludeTopDir bool, isDir bool) (string, error) {
	rel, err := filepath.Rel(srcDir, path)
	if err != nil {
		return "", err
	}
	name := filepath.Base(srcDir) + "/" + filepath.ToSlash(rel)
	if excludeTopDir {
		name = util.RemoveTopDirectory(name)
	}
	if isDir {
		name += "/"
	}
	return name, nil
}

// extractPath resolves an entry name below dst, rejecting names that would
// land outside it.
func extractPath(dst, name string) (string, error) {
	local := filepath.FromSlash(strings.TrimSuffix(name, "/"))
	if local == "" || !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return filepath.Join(dst, local), nil
}

// writeEntry copies r to a new file at path, creating parent directories.
func writeEntry(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExpectedDirectory, path)
	}
	return nil
}

func wrapOpenErr(path string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return fmt.Errorf("open %s: %w", path, err)
}
