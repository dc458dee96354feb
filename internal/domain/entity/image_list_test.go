package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImageList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "empty", value: "", want: nil},
		{name: "whitespace only", value: "   ", want: nil},
		{name: "single url", value: "https://cdn.example.com/a.webp", want: []string{"https://cdn.example.com/a.webp"}},
		{
			name:  "gallery",
			value: "https://cdn.example.com/a.webp,https://cdn.example.com/b.webp,https://cdn.example.com/c.webp",
			want:  []string{"https://cdn.example.com/a.webp", "https://cdn.example.com/b.webp", "https://cdn.example.com/c.webp"},
		},
		{
			name:  "padded and empty segments",
			value: " https://cdn.example.com/a.webp , ,https://cdn.example.com/b.webp,",
			want:  []string{"https://cdn.example.com/a.webp", "https://cdn.example.com/b.webp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseImageList(tt.value))
		})
	}
}

func TestImageListRoundTrip(t *testing.T) {
	urls := []string{
		"https://cdn.example.com/one.webp",
		"https://cdn.example.com/two.webp",
		"https://cdn.example.com/three.webp",
	}

	assert.Equal(t, urls, ParseImageList(JoinImageList(urls)))
}

func TestJoinImageListDropsEmpties(t *testing.T) {
	assert.Equal(t, "a,b", JoinImageList([]string{"a", "", "  ", "b"}))
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "photography", NormalizeTitle("  PHOTOGRAPHY "))
}

func TestServiceIsPhotoKind(t *testing.T) {
	assert.True(t, (&Service{Title: "photography"}).IsPhotoKind())
	assert.True(t, (&Service{Title: "product photos"}).IsPhotoKind())
	assert.False(t, (&Service{Title: "branding"}).IsPhotoKind())
}
