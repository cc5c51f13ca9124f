package models

import (
	"time"

	"github.com/google/uuid"
)

// Fixed ids keep the demo dataset stable across restarts.
var (
	seedTenantShowPro      = uuid.MustParse("7a3c1a54-0e5a-4a34-9f2e-1d7b8c1f0001")
	seedTenantBrightLights = uuid.MustParse("7a3c1a54-0e5a-4a34-9f2e-1d7b8c1f0002")
)

// SeedTenants returns the demo workspaces used when the server runs without a
// datastore.
func SeedTenants() []Tenant {
	return []Tenant{
		{
			ID:     seedTenantShowPro,
			Slug:   "showpro",
			Name:   "ShowPro Productions",
			Domain: "showpro.live",
			Branding: Branding{
				LogoURL:      "https://placehold.co/200x60?text=ShowPro",
				PrimaryColor: "#4F46E5",
				FontFamily:   "Inter",
			},
		},
		{
			ID:   seedTenantBrightLights,
			Slug: "brightlights",
			Name: "Bright Lights AV",
			Branding: Branding{
				LogoURL:      "https://placehold.co/200x60?text=BrightLights",
				PrimaryColor: "#DC2626",
				FontFamily:   "Roboto",
			},
		},
	}
}

// SeedEvents returns the demo events matching SeedTenants.
func SeedEvents() []Event {
	day := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	return []Event{
		{
			ID:          uuid.MustParse("9b41f7be-2f50-4c11-8d3a-2e9a6c2e0001"),
			TenantID:    seedTenantShowPro,
			Title:       "ShowPro Annual Conference 2025",
			Slug:        "annual-conference-2025",
			Status:      StatusPublished,
			StartAt:     day("2025-09-15T09:00:00Z"),
			EndAt:       day("2025-09-15T17:00:00Z"),
			Timezone:    "America/New_York",
			Venue:       "Javits Center, New York, NY",
			Description: "A full day of keynotes, panels, and live demos showcasing the future of live event production.",
			BannerURL:   "https://placehold.co/1200x400?text=Annual+Conference+2025",
			Stream: &StreamConfig{
				Provider: ProviderYouTube,
				EmbedURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
				IsLive:   false,
			},
			Sessions: []Session{
				{
					ID:          "s-1",
					Title:       "Opening Keynote: The Future of Live Events",
					StartAt:     day("2025-09-15T09:00:00Z"),
					EndAt:       day("2025-09-15T10:00:00Z"),
					Description: "The vision for the next decade of live event production.",
					SpeakerName: "Alex Rivera",
				},
				{
					ID:          "s-2",
					Title:       "Low-Latency Streaming Deep Dive",
					StartAt:     day("2025-09-15T10:30:00Z"),
					EndAt:       day("2025-09-15T12:00:00Z"),
					Description: "Technical session on building reliable streaming infrastructure.",
					SpeakerName: "Jordan Lee",
				},
			},
			Speakers: []Speaker{
				{
					ID:          "sp-1",
					Name:        "Alex Rivera",
					Title:       "CEO",
					Company:     "ShowPro Productions",
					HeadshotURL: "https://placehold.co/150x150?text=AR",
					Bio:         "Pioneer in hybrid event technology.",
				},
				{
					ID:          "sp-2",
					Name:        "Jordan Lee",
					Title:       "Director of Engineering",
					Company:     "StreamCore",
					HeadshotURL: "https://placehold.co/150x150?text=JL",
					Bio:         "Specialist in low-latency streaming infrastructure for live events.",
				},
			},
			Resources: []EventResource{
				{ID: "r-1", Name: "Event Program", URL: "https://example.com/program.pdf", Type: "pdf"},
				{ID: "r-2", Name: "Speaker Slide Deck", URL: "https://example.com/slides.pptx", Type: "presentation"},
			},
			CreatedAt: day("2025-06-01T00:00:00Z"),
			UpdatedAt: day("2025-06-01T00:00:00Z"),
		},
		{
			ID:          uuid.MustParse("9b41f7be-2f50-4c11-8d3a-2e9a6c2e0002"),
			TenantID:    seedTenantShowPro,
			Title:       "Behind the Scenes: Hybrid Production Workshop",
			Slug:        "hybrid-production-workshop",
			Status:      StatusDraft,
			StartAt:     day("2025-11-02T13:00:00Z"),
			EndAt:       day("2025-11-02T16:00:00Z"),
			Timezone:    "America/Chicago",
			Venue:       "ShowPro Studio, Austin, TX",
			Description: "A hands-on workshop covering multi-camera switching, virtual backgrounds, and audience engagement tools.",
			Sessions:    []Session{},
			Speakers:    []Speaker{},
			Resources: []EventResource{
				{ID: "r-3", Name: "Workshop Prerequisites", URL: "https://example.com/prereqs.pdf", Type: "pdf"},
			},
			CreatedAt: day("2025-07-10T00:00:00Z"),
			UpdatedAt: day("2025-07-10T00:00:00Z"),
		},
		{
			ID:          uuid.MustParse("9b41f7be-2f50-4c11-8d3a-2e9a6c2e0003"),
			TenantID:    seedTenantBrightLights,
			Title:       "Bright Lights Product Launch",
			Slug:        "product-launch",
			Status:      StatusPublished,
			StartAt:     day("2025-10-05T18:00:00Z"),
			EndAt:       day("2025-10-05T20:00:00Z"),
			Timezone:    "Europe/London",
			Venue:       "The Roundhouse, London",
			Description: "Live unveiling of the next generation of stage lighting rigs.",
			Stream: &StreamConfig{
				Provider:  ProviderVimeo,
				EmbedURL:  "https://player.vimeo.com/video/76979871",
				IsLive:    true,
				ReplayURL: "https://vimeo.com/76979871",
			},
			Sessions:  []Session{},
			Speakers:  []Speaker{},
			Resources: []EventResource{},
			CreatedAt: day("2025-08-01T00:00:00Z"),
			UpdatedAt: day("2025-08-01T00:00:00Z"),
		},
	}
}
