package linkfile

import (
	"fmt"
	"os"
	"strings"
)

// fileScheme is the URI prefix stripped from file references.
const fileScheme = "file://"

// urlPrefix marks the start of an extractable token.
const urlPrefix = "http:"

// NormalizeRef turns a file reference into a plain filesystem path by
// stripping a leading file:// scheme. Anything else is returned unchanged.
//
//	NormalizeRef("file:///tmp/test.html") == "/tmp/test.html"
//	NormalizeRef("/tmp/test.html")        == "/tmp/test.html"
func NormalizeRef(ref string) string {
	return strings.TrimPrefix(ref, fileScheme)
}

// ExtractURL scans content for the first token starting with "http:" and
// returns everything up to, but excluding, the next double quote. A token
// that runs to the end of the input is returned whole. The second return
// value reports whether a token was found.
func ExtractURL(content string) (string, bool) {
	start := strings.Index(content, urlPrefix)
	if start < 0 {
		return "", false
	}

	rest := content[start:]
	if end := strings.IndexByte(rest, '"'); end >= 0 {
		return rest[:end], true
	}
	return rest, true
}

// ExtractFromFile normalizes ref, reads the file, and extracts the first
// URL. An unreadable file is an error; a readable file with no URL returns
// ("", false, nil).
func ExtractFromFile(ref string) (string, bool, error) {
	path := NormalizeRef(ref)

	content, err := os.ReadFile(path) // #nosec G304 - path comes from the CLI argument
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	url, ok := ExtractURL(string(content))
	return url, ok, nil
}
