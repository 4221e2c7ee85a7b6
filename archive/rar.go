package archive

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode/v2"
	"github.com/zeebo/xxh3"
)

// rarCodec reads RAR containers. RAR cannot be written; comics read from one
// are repacked as CanonicalExt.
type rarCodec struct{}

// each calls fn for every entry of src in archive order. r is positioned at
// the entry's content while fn runs.
func (rarCodec) each(src string, fn func(h *rardecode.FileHeader, r io.Reader) error) error {
	rc, err := rardecode.OpenReader(src)
	if err != nil {
		return wrapOpenErr(src, err)
	}
	defer rc.Close()

	for {
		h, err := rc.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", src, err)
		}
		if err := fn(h, rc); err != nil {
			return err
		}
	}
}

func (c rarCodec) Extract(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	return c.each(src, func(h *rardecode.FileHeader, r io.Reader) error {
		path, err := extractPath(dst, h.Name)
		if err != nil {
			return err
		}
		if h.IsDir {
			return os.MkdirAll(path, 0o755)
		}
		return writeEntry(path, r)
	})
}

func (rarCodec) Write(srcDir, dst string, excludeTopDir bool) error {
	return fmt.Errorf("%w: rar (%s)", ErrWriteUnsupported, dst)
}

func (c rarCodec) List(src string) ([]string, error) {
	names := []string{}
	err := c.each(src, func(h *rardecode.FileHeader, _ io.Reader) error {
		names = append(names, h.Name)
		return nil
	})
	return names, err
}

func (c rarCodec) Digest(src string) (map[string]Digest, error) {
	digests := make(map[string]Digest)
	err := c.each(src, func(h *rardecode.FileHeader, r io.Reader) error {
		if h.IsDir {
			return nil
		}
		hasher := xxh3.New()
		if _, err := io.Copy(hasher, r); err != nil {
			return err
		}
		digests[h.Name] = Digest(hasher.Sum128().Bytes())
		return nil
	})
	return digests, err
}
