package archive

import (
	"io"
	"os"

	"github.com/dendrascience/comics/tree"
	"github.com/klauspost/compress/zip"
	"github.com/zeebo/xxh3"
)

type zipCodec struct{}

func (zipCodec) Extract(src, dst string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return wrapOpenErr(src, err)
	}
	defer r.Close()

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, f := range r.File {
		path, err := extractPath(dst, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(path, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (zipCodec) Write(srcDir, dst string, excludeTopDir bool) (err error) {
	if err := checkDir(srcDir); err != nil {
		return err
	}
	file, err := os.Create(dst)
	if err != nil {
		return err
	}
	// Never leave a partial archive behind.
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	w := zip.NewWriter(file)
	for e, walkErr := range tree.Walk(srcDir) {
		if walkErr != nil {
			w.Close()
			return walkErr
		}
		if err := addToZip(w, srcDir, e.Path(), excludeTopDir); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

func addToZip(w *zip.Writer, srcDir, path string, excludeTopDir bool) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	name, err := entryName(srcDir, path, excludeTopDir, info.IsDir())
	if err != nil {
		return err
	}
	if info.IsDir() {
		_, err := w.Create(name)
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	writer, err := w.CreateHeader(header)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(writer, f)
	return err
}

func (zipCodec) List(src string) ([]string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, wrapOpenErr(src, err)
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names, nil
}

func (zipCodec) Digest(src string) (map[string]Digest, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, wrapOpenErr(src, err)
	}
	defer r.Close()

	digests := make(map[string]Digest, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		h := xxh3.New()
		_, err = io.Copy(h, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		digests[f.Name] = Digest(h.Sum128().Bytes())
	}
	return digests, nil
}
