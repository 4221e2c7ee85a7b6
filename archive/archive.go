package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/comics/util"
)

// Archive is a handle over a container file that existed, with a supported
// extension, when the handle was opened. A handle is never updated in place;
// open a new one when the file is renamed or converted.
type Archive struct {
	Path     string
	Dir      string
	Filename string
	Ext      string
	Format   Format
}

// Open validates path and returns a handle for it.
func Open(path string) (Archive, error) {
	ext := util.Ext(path)

	if err := checkExists(path); err != nil {
		return Archive{}, err
	}
	format, ok := FormatOf(ext)
	if !ok {
		return Archive{}, unsupported(ext, path)
	}

	dir, filename := filepath.Split(path)
	return Archive{
		Path:     path,
		Dir:      filepath.Clean(dir),
		Filename: filename,
		Ext:      ext,
		Format:   format,
	}, nil
}

// Codec returns the codec for the archive's format.
func (a Archive) Codec() Codec {
	return a.Format.Codec()
}

// Uncompress extracts the archive into dst, or next to the archive when dst
// is empty.
func (a Archive) Uncompress(dst string) error {
	if dst == "" {
		dst = a.Dir
	}
	return a.Codec().Extract(a.Path, dst)
}

// Entries lists the archive's entry names in archive order.
func (a Archive) Entries() ([]string, error) {
	return a.Codec().List(a.Path)
}

// Search returns the entry names that contain query. An empty query matches
// nothing.
func (a Archive) Search(query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	names, err := a.Entries()
	if err != nil {
		return nil, err
	}
	results := []string{}
	for _, name := range names {
		if strings.Contains(name, query) {
			results = append(results, name)
		}
	}
	return results, nil
}

// Compress creates a new container at dst from the contents of the src
// directory. The format is chosen by dst's extension.
func Compress(src, dst string, excludeTopDir bool) error {
	ext := util.Ext(dst)

	if err := checkExists(src); err != nil {
		return err
	}
	format, ok := FormatOf(ext)
	if !ok {
		return unsupported(ext, dst)
	}
	return format.Codec().Write(src, dst, excludeTopDir)
}

func checkExists(path string) error {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return err
}

func unsupported(ext, path string) error {
	return fmt.Errorf("%w %q: %s (want one of %s)", ErrUnsupportedFormat, ext, path, strings.Join(SupportedExts(), ", "))
}
