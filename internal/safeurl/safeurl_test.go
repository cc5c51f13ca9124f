package safeurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStreamEmbed(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		provider string
		want     EmbedDecision
	}{
		{"youtube embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "youtube", Embeddable},
		{"youtube bare host", "https://youtube.com/embed/x", "youtube", Embeddable},
		{"youtu.be short link", "https://youtu.be/dQw4w9WgXcQ", "youtube", Embeddable},
		{"vimeo player", "https://player.vimeo.com/video/12345", "vimeo", Embeddable},
		{"vimeo main host", "https://vimeo.com/12345", "vimeo", Embeddable},
		{"http downgrade rejected", "http://youtube.com/embed/x", "youtube", Rejected},
		{"host not on allow-list", "https://evil.example.com/embed/x", "youtube", Rejected},
		{"lookalike host", "https://youtube.com.evil.net/embed/x", "youtube", Rejected},
		{"allow-listed host as userinfo", "https://youtube.com@evil.net/embed/x", "youtube", Rejected},
		{"garbage input", "://not a url", "youtube", Rejected},
		{"empty input", "", "vimeo", Rejected},
		{"other provider https", "https://stream.example.com/live", "other", ExternalLinkOnly},
		{"other provider on allow-listed host", "https://www.youtube.com/watch?v=x", "other", ExternalLinkOnly},
		{"other provider http", "http://stream.example.com/live", "other", Rejected},
		{"other provider malformed", "not-a-url-at-all", "other", Rejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStreamEmbed(tt.url, tt.provider))
		})
	}
}

// Provider "other" must never produce a frame, whatever the URL looks like.
func TestOtherProviderNeverEmbeddable(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/embed/x",
		"https://player.vimeo.com/video/1",
		"https://youtu.be/abc",
		"https://anything.example.org/stream",
	}
	for _, u := range urls {
		assert.NotEqual(t, Embeddable, ClassifyStreamEmbed(u, "other"), "url %q", u)
	}
}

func TestIsValidBannerURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"https url", "https://cdn.example.com/banner.png", true},
		{"https url with query", "https://placehold.co/1200x400?text=Conference", true},
		{"http url", "http://cdn.example.com/banner.png", false},
		{"relative path", "/images/banner.png", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"empty", "", false},
		{"inline png", "data:image/png;base64,aGVsbG8=", true},
		{"inline jpeg", "data:image/jpeg;base64,/9j/4AAQSkZJRg==", true},
		{"inline gif", "data:image/gif;base64,R0lGODlh", true},
		{"inline webp", "data:image/webp;base64,UklGRg==", true},
		{"inline svg excluded", "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=", false},
		{"inline html excluded", "data:text/html;base64,PGh0bWw+", false},
		{"inline without base64 marker", "data:image/png,rawbytes", false},
		{"inline with invalid base64 chars", "data:image/png;base64,he!!o", false},
		{"inline with misplaced padding", "data:image/png;base64,aGVs=bG8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidBannerURL(tt.input))
		})
	}
}
