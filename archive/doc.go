// Package archive names comic containers on disk and reads and writes them.
//
// An Archive is a validated handle over an existing container file. Its
// Format is one of a fixed set, chosen by the literal file extension:
//
//   - FormatZip: ".zip" and ".cbz"
//   - FormatRar: ".rar" and ".cbr" (read only)
//
// Every format supplies a Codec that can list, extract and digest a
// container. Only the zip codec can write; all repacked comics use
// CanonicalExt.
package archive
