package utils

import (
	"path/filepath"
	"strings"
)

var allowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// AllowedImage reports whether filename carries an accepted image extension.
func AllowedImage(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedImageExtensions[strings.ToLower(filename[idx+1:])]
}

// SecureFilename reduces a client supplied name to a flat ASCII file name:
// directories are dropped, whitespace becomes "_", anything outside
// [A-Za-z0-9._-] is removed and leading dots or underscores are trimmed.
// The result may be empty.
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range strings.Join(strings.Fields(name), "_") {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "._")
}
