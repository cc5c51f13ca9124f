package safeurl

import (
	"net/url"
	"regexp"
	"strings"
)

// EmbedDecision is the outcome of classifying an operator-supplied stream URL.
type EmbedDecision int

const (
	// Rejected means the URL must not be rendered at all.
	Rejected EmbedDecision = iota
	// ExternalLinkOnly means the URL may be rendered as a plain outbound
	// hyperlink but never inside a frame.
	ExternalLinkOnly
	// Embeddable means the URL may be placed in a sandboxed iframe.
	Embeddable
)

func (d EmbedDecision) String() string {
	switch d {
	case Embeddable:
		return "embeddable"
	case ExternalLinkOnly:
		return "external_link_only"
	default:
		return "rejected"
	}
}

// SandboxFlags are the capability flags the rendering layer must apply to any
// embeddable frame: scripting and same-origin are required by the video
// players, top-level navigation stays disabled.
const SandboxFlags = "allow-scripts allow-same-origin"

// allowedStreamHosts is the fixed set of video-hosting origins trusted for
// sandboxed iframe embedding. Anything else is rejected or demoted to a
// plain link regardless of scheme.
var allowedStreamHosts = map[string]bool{
	"youtube.com":      true,
	"www.youtube.com":  true,
	"youtu.be":         true,
	"vimeo.com":        true,
	"player.vimeo.com": true,
}

var inlineImagePattern = regexp.MustCompile(`^data:image/(jpeg|png|gif|webp);base64,[A-Za-z0-9+/]+={0,2}$`)

// ClassifyStreamEmbed decides how a stream URL for the given provider
// ("youtube", "vimeo" or "other") may be rendered. It never returns an error:
// malformed input always classifies as Rejected.
func ClassifyStreamEmbed(rawURL, provider string) EmbedDecision {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Scheme != "https" || parsed.Hostname() == "" {
		return Rejected
	}

	// Unknown providers never get a frame, even on an allow-listed host.
	if provider == "other" {
		return ExternalLinkOnly
	}

	if allowedStreamHosts[parsed.Hostname()] {
		return Embeddable
	}
	return Rejected
}

// IsValidBannerURL reports whether a banner reference is safe to render in an
// image tag: either a well-formed https URL or an inline base64 data URL for
// one of the permitted raster image types. SVG is excluded because it can
// carry executable content. The base64 payload is checked syntactically only;
// the caller caps inline uploads at 2 MiB before they reach this gate.
func IsValidBannerURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	if strings.HasPrefix(s, "data:") {
		return inlineImagePattern.MatchString(s)
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return parsed.Scheme == "https" && parsed.Hostname() != ""
}
