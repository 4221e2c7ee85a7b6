// Package tree operates on an unpacked comic: a plain directory tree of pages.
//
// Walk yields every entry below a root with the children of the deepest
// directories first. A directory's own entries, including the names of its
// subdirectories, are yielded only after every subdirectory has been fully
// drained. Flatten and FormatPages depend on that order: by the time a
// subdirectory name is seen its contents have already been handled, so the
// directory can be removed or its counter closed.
package tree
