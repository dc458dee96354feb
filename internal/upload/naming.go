package upload

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const slugMaxLen = 50

var (
	nonSlugRunes     = regexp.MustCompile(`[^a-z0-9]+`)
	unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)
)

// Slugify normalizes a human-provided name for use in an object key:
// lowercase, accents stripped, runs of non-alphanumerics collapsed to a
// single hyphen, hyphens trimmed from both ends, truncated to 50 chars.
func Slugify(name string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		stripped = name
	}

	slug := strings.ToLower(stripped)
	slug = nonSlugRunes.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > slugMaxLen {
		slug = strings.Trim(slug[:slugMaxLen], "-")
	}

	return slug
}

// SanitizeFilename replaces every character outside [a-zA-Z0-9.-_] with an
// underscore. Used when no human-readable name was provided.
func SanitizeFilename(name string) string {
	return unsafeFilenameRe.ReplaceAllString(name, "_")
}

// BlobFilename derives the stored filename for one file of an upload batch.
// With a custom name the result is slugify(customName)[-index].<ext>, where
// the 1-based index is only appended when the batch holds several files.
// Without a custom name the original filename is sanitized instead.
func BlobFilename(customName, originalName string, index, batchSize int) string {
	if strings.TrimSpace(customName) == "" {
		return SanitizeFilename(originalName)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	slug := Slugify(customName)
	if batchSize > 1 {
		return fmt.Sprintf("%s-%d%s", slug, index, ext)
	}

	return slug + ext
}

// ObjectKey places a filename under the uploads/ prefix with a millisecond
// timestamp, mirroring the public storage layout.
func ObjectKey(now time.Time, filename string) string {
	return fmt.Sprintf("uploads/%d-%s", now.UnixMilli(), filename)
}
