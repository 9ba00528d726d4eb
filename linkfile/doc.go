// Package linkfile extracts HTTP URLs from local files.
//
// Files are typically redirect stubs saved by other tools, e.g. a tiny HTML
// document whose meta-refresh or anchor carries the real destination:
//
//	<a href="http://example.com/docs">open</a>
//
// ExtractFromFile accepts either a plain path or a file:// URI, reads the
// file, and returns the first token that starts with "http:" and runs up to
// the next double quote. Extraction is a single-pass scan; a file with no
// such token is a valid no-match outcome, not an error.
package linkfile
