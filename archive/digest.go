package archive

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dendrascience/comics/tree"
	"github.com/zeebo/xxh3"
)

// Digest is the 128-bit xxh3 hash of an entry's content.
type Digest [16]byte

func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// DigestDir hashes every file below dir, keyed by the entry name Write would
// give it.
func DigestDir(dir string, excludeTopDir bool) (map[string]Digest, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}
	digests := make(map[string]Digest)
	for e, err := range tree.Walk(dir) {
		if err != nil {
			return nil, err
		}
		path := e.Path()
		info, err := os.Lstat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		name, err := entryName(dir, path, excludeTopDir, false)
		if err != nil {
			return nil, err
		}
		d, err := digestFile(path)
		if err != nil {
			return nil, err
		}
		digests[name] = d
	}
	return digests, nil
}

// CompareDigests reports the first difference between want and got, or nil
// when both hold the same names with the same content.
func CompareDigests(want, got map[string]Digest) error {
	names := make([]string, 0, len(want))
	for name := range want {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		g, ok := got[name]
		if !ok {
			return fmt.Errorf("missing entry %q", name)
		}
		if g != want[name] {
			return fmt.Errorf("entry %q: digest %s, want %s", name, g, want[name])
		}
	}
	if len(got) != len(want) {
		return fmt.Errorf("%d entries, want %d", len(got), len(want))
	}
	return nil
}

func digestFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return Digest{}, err
	}
	return Digest(h.Sum128().Bytes()), nil
}
