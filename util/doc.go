// Package util provides file name helpers shared by the comics packages.
//
// The helpers work on extensions, zero-padded page and volume numbers, and
// slash separated archive entry names. Extensions are compared exactly as
// written; only IsImage ignores case.
package util
