package util

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Ext returns the extension of path including the dot, or "" if there is none.
func Ext(path string) string {
	return filepath.Ext(path)
}

// TrimExt returns path without its extension.
func TrimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// SanitizeExt normalizes an extension to exactly one leading dot.
// "cbz", ".cbz" and " .cbz" all become ".cbz".
func SanitizeExt(ext string) string {
	return "." + strings.TrimSpace(strings.ReplaceAll(ext, ".", ""))
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".avif": true,
}

// IsImage reports whether path has a page image extension, ignoring case.
func IsImage(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// ChangeExt replaces the extension of path with ext.
func ChangeExt(path, ext string) string {
	return TrimExt(path) + SanitizeExt(ext)
}

// NumDigits returns the number of decimal digits needed to print n.
func NumDigits(n int) int {
	return len(strconv.Itoa(n))
}

// PadWidth is the zero-pad width for a set of count items. It is never below 1.
func PadWidth(count int) int {
	if count < 1 {
		return 1
	}
	return NumDigits(count)
}

// PadIndex formats index left-padded with zeros to width digits.
func PadIndex(index, width int) string {
	return fmt.Sprintf("%0*d", width, index)
}

// RemoveTopDirectory strips the first component of a slash or OS separated path.
// A path with a single component is returned unchanged.
func RemoveTopDirectory(path string) string {
	path = filepath.ToSlash(path)
	if _, rest, ok := strings.Cut(path, "/"); ok {
		return rest
	}
	return path
}
