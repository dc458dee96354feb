package entity

import "strings"

// The image_url column stores a multi-image gallery as a comma-joined list.
// This is the only encoding for "multiple images per entity"; URLs never
// contain a literal comma, so the round-trip is exact.

// ParseImageList splits a comma-joined image_url value into individual URLs,
// trimming whitespace and dropping empty segments.
func ParseImageList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	urls := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}

	return urls
}

// JoinImageList encodes a gallery back into the stored image_url form.
func JoinImageList(urls []string) string {
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}

	return strings.Join(kept, ",")
}
