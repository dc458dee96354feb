package upload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Summer Wedding", expected: "summer-wedding"},
		{name: "strips accents", input: "Décor élégant", expected: "decor-elegant"},
		{name: "collapses runs", input: "a  --  b!!c", expected: "a-b-c"},
		{name: "trims hyphens", input: "--hello--", expected: "hello"},
		{name: "truncates to fifty", input: "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeeefff", expected: "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeee"},
		{name: "trims after truncation", input: "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeee e", expected: "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeee"},
		{name: "only symbols", input: "!!!", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "my_photo__1_.JPG", SanitizeFilename("my photo (1).JPG"))
	assert.Equal(t, "plain-name_v2.png", SanitizeFilename("plain-name_v2.png"))
}

func TestBlobFilename(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		customName   string
		originalName string
		index        int
		batchSize    int
		expected     string
	}{
		{name: "single file with custom name", customName: "Summer Wedding", originalName: "IMG_0001.JPG", index: 1, batchSize: 1, expected: "summer-wedding.jpg"},
		{name: "batch appends index", customName: "Summer Wedding", originalName: "IMG_0002.JPG", index: 2, batchSize: 3, expected: "summer-wedding-2.jpg"},
		{name: "blank custom name sanitizes original", customName: "  ", originalName: "my photo.png", index: 1, batchSize: 1, expected: "my_photo.png"},
		{name: "no extension", customName: "Cover", originalName: "raw", index: 1, batchSize: 1, expected: "cover"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, BlobFilename(tc.customName, tc.originalName, tc.index, tc.batchSize))
		})
	}
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1735689600123).UTC()

	assert.Equal(t, "uploads/1735689600123-summer-wedding.jpg", ObjectKey(at, "summer-wedding.jpg"))
}
