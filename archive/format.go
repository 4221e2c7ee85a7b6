package archive

import (
	"path/filepath"
)

// CanonicalExt is the extension every saved or converted comic ends up with.
const CanonicalExt = ".cbz"

// Format identifies a container family.
type Format int

const (
	FormatZip Format = iota + 1
	FormatRar
)

func (f Format) String() string {
	switch f {
	case FormatZip:
		return "zip"
	case FormatRar:
		return "rar"
	}
	return "unknown"
}

// Codec is the set of operations a container format provides.
type Codec interface {
	// Extract unpacks every entry of src below dst, creating dst if needed.
	Extract(src, dst string) error
	// Write creates dst from every entry below srcDir, in tree.Walk order.
	// When excludeTopDir is false entry names keep srcDir's base name as
	// their first component.
	Write(srcDir, dst string, excludeTopDir bool) error
	// List returns the entry names of src in archive order.
	List(src string) ([]string, error)
	// Digest hashes the content of every file entry of src by name.
	Digest(src string) (map[string]Digest, error)
}

// Codec returns the codec for the format, or nil for an unknown format.
func (f Format) Codec() Codec {
	switch f {
	case FormatZip:
		return zipCodec{}
	case FormatRar:
		return rarCodec{}
	}
	return nil
}

// FormatOf maps an extension, dot included, to its format. Matching is case
// sensitive.
func FormatOf(ext string) (Format, bool) {
	switch ext {
	case ".zip", ".cbz":
		return FormatZip, true
	case ".rar", ".cbr":
		return FormatRar, true
	}
	return 0, false
}

// IsSupported reports whether path has a supported container extension.
func IsSupported(path string) bool {
	_, ok := FormatOf(filepath.Ext(path))
	return ok
}

// SupportedExts lists every accepted extension.
func SupportedExts() []string {
	return []string{".cbz", ".zip", ".cbr", ".rar"}
}
