package tree

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
)

var ErrExpectedDirectory = errors.New("expected directory but got file")

// Entry is a single (directory, name) pair produced by Walk.
type Entry struct {
	Dir  string
	Name string
}

// Path joins the entry's directory and name.
func (e Entry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// Walk returns a lazy sequence over the tree rooted at root.
//
// Each directory is read once, when the walk reaches it. Its subdirectories
// are walked in lexical order first, then its own entries are yielded in
// lexical order. Entries may have been moved or removed by the consumer by
// the time they are yielded, so consumers should tolerate missing paths.
//
// A read error is yielded once and ends the sequence. Ranging over the
// returned sequence again starts a fresh walk.
func Walk(root string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			yield(Entry{}, err)
			return
		}
		if !info.IsDir() {
			yield(Entry{}, ErrExpectedDirectory)
			return
		}
		walk(root, yield)
	}
}

func walk(dir string, yield func(Entry, error) bool) bool {
	// os.ReadDir returns entries sorted by filename.
	dirents, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		// Removed by the consumer after its parent was read.
		return true
	}
	if err != nil {
		if info, serr := os.Lstat(dir); serr == nil && !info.IsDir() {
			// Replaced by a file after its parent was read.
			return true
		}
	}
	if err != nil {
		yield(Entry{Dir: dir}, err)
		return false
	}
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		if !walk(filepath.Join(dir, d.Name()), yield) {
			return false
		}
	}
	for _, d := range dirents {
		if !yield(Entry{Dir: dir, Name: d.Name()}, nil) {
			return false
		}
	}
	return true
}
