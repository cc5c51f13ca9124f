package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/showpro/showpro-server/internal/helpers"
	"github.com/showpro/showpro-server/internal/models"
	"github.com/showpro/showpro-server/internal/safeurl"
)

// MaxInlineBannerBytes caps the decoded size of inline banner uploads. The
// safety gate only checks format; size is enforced here, before the gate.
const MaxInlineBannerBytes = 2 << 20

type EventService struct {
	eventsRepo models.EventsRepo
}

func NewEventService(eventsRepo models.EventsRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
	}
}

// UpdateEventInput carries a partial update; nil fields are left unchanged.
type UpdateEventInput struct {
	Title       *string                 `json:"title"`
	Slug        *string                 `json:"slug"`
	Status      *models.EventStatus     `json:"status"`
	StartAt     *time.Time              `json:"start_at"`
	EndAt       *time.Time              `json:"end_at"`
	Timezone    *string                 `json:"timezone"`
	Venue       *string                 `json:"venue"`
	Description *string                 `json:"description"`
	BannerURL   *string                 `json:"banner_url"`
	Stream      *models.StreamConfig    `json:"stream"`
	Sessions    *[]models.Session       `json:"sessions"`
	Speakers    *[]models.Speaker       `json:"speakers"`
	Resources   *[]models.EventResource `json:"resources"`
}

func (es *EventService) CreateEvent(ctx context.Context, tenantID uuid.UUID, event *models.Event) (*models.Event, error) {
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid tenant ID", models.ErrValidation)
	}

	if event.Slug == "" {
		event.Slug = helpers.GenerateSlug(event.Title)
	}

	now := time.Now().UTC()
	event.ID = uuid.New()
	event.TenantID = tenantID
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Status == "" {
		event.Status = models.StatusDraft
	}
	normalizeEventCollections(event)

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	return es.eventsRepo.CreateEvent(ctx, event)
}

func (es *EventService) GetEventByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Event, error) {
	if tenantID == uuid.Nil || id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid tenant or event ID", models.ErrValidation)
	}
	return es.eventsRepo.GetEventByID(ctx, tenantID, id)
}

func (es *EventService) GetEventBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*models.Event, error) {
	if tenantID == uuid.Nil || slug == "" {
		return nil, fmt.Errorf("%w: invalid tenant ID or slug", models.ErrValidation)
	}
	return es.eventsRepo.GetEventBySlug(ctx, tenantID, slug)
}

// GetPublicEventBySlug is the landing-page read: only published events are
// visible; drafts and archived events read as absent.
func (es *EventService) GetPublicEventBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*models.Event, error) {
	event, err := es.GetEventBySlug(ctx, tenantID, slug)
	if err != nil {
		return nil, err
	}
	if event.Status != models.StatusPublished {
		return nil, models.ErrEventNotFound
	}
	return event, nil
}

func (es *EventService) ListEvents(ctx context.Context, tenantID uuid.UUID, status models.EventStatus, offset, limit int) ([]*models.Event, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("%w: invalid offset or limit", models.ErrValidation)
	}
	if status != "" && status != models.StatusDraft && status != models.StatusPublished && status != models.StatusArchived {
		return nil, 0, fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
	}
	return es.eventsRepo.ListEvents(ctx, tenantID, status, offset, limit)
}

func (es *EventService) UpdateEvent(ctx context.Context, tenantID, id uuid.UUID, input *UpdateEventInput) (*models.Event, error) {
	event, err := es.GetEventByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	slugChanged := applyUpdate(event, input)
	event.UpdatedAt = time.Now().UTC()
	normalizeEventCollections(event)

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	// A renamed slug must still be unique within the tenant.
	if slugChanged {
		existing, err := es.eventsRepo.GetEventBySlug(ctx, tenantID, event.Slug)
		if err == nil && existing.ID != event.ID {
			return nil, models.ErrSlugTaken
		}
	}

	return es.eventsRepo.UpdateEvent(ctx, event)
}

func (es *EventService) DeleteEvent(ctx context.Context, tenantID, id uuid.UUID) error {
	if tenantID == uuid.Nil || id == uuid.Nil {
		return fmt.Errorf("%w: invalid tenant or event ID", models.ErrValidation)
	}
	return es.eventsRepo.DeleteEvent(ctx, tenantID, id)
}

// EmbedView is the rendering decision for a landing page's stream block. The
// frontend constructs a sandboxed iframe only when Decision is "embeddable".
type EmbedView struct {
	Decision string `json:"decision"`
	URL      string `json:"url,omitempty"`
	Sandbox  string `json:"sandbox,omitempty"`
	IsLive   bool   `json:"is_live"`
	IsReplay bool   `json:"is_replay"`
}

// BuildEmbedView runs the stream config through the safety gate and picks the
// live URL or the replay fallback. Returns nil when the event has no stream.
func BuildEmbedView(event *models.Event) *EmbedView {
	stream := event.Stream
	if stream == nil {
		return nil
	}

	streamURL := stream.EmbedURL
	isReplay := false
	if !stream.IsLive && stream.ReplayURL != "" {
		streamURL = stream.ReplayURL
		isReplay = true
	}

	view := &EmbedView{
		Decision: safeurl.ClassifyStreamEmbed(streamURL, string(stream.Provider)).String(),
		IsLive:   stream.IsLive,
		IsReplay: isReplay,
	}

	switch safeurl.ClassifyStreamEmbed(streamURL, string(stream.Provider)) {
	case safeurl.Embeddable:
		view.URL = streamURL
		view.Sandbox = safeurl.SandboxFlags
	case safeurl.ExternalLinkOnly:
		view.URL = streamURL
	}
	return view
}

func applyUpdate(event *models.Event, input *UpdateEventInput) (slugChanged bool) {
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Slug != nil && *input.Slug != event.Slug {
		event.Slug = *input.Slug
		slugChanged = true
	}
	if input.Status != nil {
		event.Status = *input.Status
	}
	if input.StartAt != nil {
		event.StartAt = *input.StartAt
	}
	if input.EndAt != nil {
		event.EndAt = *input.EndAt
	}
	if input.Timezone != nil {
		event.Timezone = *input.Timezone
	}
	if input.Venue != nil {
		event.Venue = *input.Venue
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.BannerURL != nil {
		event.BannerURL = *input.BannerURL
	}
	if input.Stream != nil {
		event.Stream = input.Stream
	}
	if input.Sessions != nil {
		event.Sessions = *input.Sessions
	}
	if input.Speakers != nil {
		event.Speakers = *input.Speakers
	}
	if input.Resources != nil {
		event.Resources = *input.Resources
	}
	return slugChanged
}

func normalizeEventCollections(event *models.Event) {
	if event.Sessions == nil {
		event.Sessions = []models.Session{}
	}
	if event.Speakers == nil {
		event.Speakers = []models.Speaker{}
	}
	if event.Resources == nil {
		event.Resources = []models.EventResource{}
	}
	for i := range event.Sessions {
		if event.Sessions[i].ID == "" {
			event.Sessions[i].ID = uuid.New().String()
		}
	}
	for i := range event.Speakers {
		if event.Speakers[i].ID == "" {
			event.Speakers[i].ID = uuid.New().String()
		}
	}
	for i := range event.Resources {
		if event.Resources[i].ID == "" {
			event.Resources[i].ID = uuid.New().String()
		}
	}
}

func validateEvent(event *models.Event) error {
	if err := models.Validate.Struct(event); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	if !models.IsValidSlug(event.Slug) {
		return fmt.Errorf("%w: slug must match [a-z0-9-]+", models.ErrValidation)
	}
	if event.EndAt.Before(event.StartAt) {
		return fmt.Errorf("%w: event end_at precedes start_at", models.ErrValidation)
	}
	for _, s := range event.Sessions {
		if s.EndAt.Before(s.StartAt) {
			return fmt.Errorf("%w: session %q end_at precedes start_at", models.ErrValidation, s.Title)
		}
	}

	if event.BannerURL != "" {
		if err := validateBanner(event.BannerURL); err != nil {
			return err
		}
	}

	if event.Stream != nil {
		if safeurl.ClassifyStreamEmbed(event.Stream.EmbedURL, string(event.Stream.Provider)) == safeurl.Rejected {
			return fmt.Errorf("%w: stream embed URL is not allowed for provider %s", models.ErrValidation, event.Stream.Provider)
		}
		if event.Stream.ReplayURL != "" {
			if safeurl.ClassifyStreamEmbed(event.Stream.ReplayURL, string(event.Stream.Provider)) == safeurl.Rejected {
				return fmt.Errorf("%w: stream replay URL is not allowed for provider %s", models.ErrValidation, event.Stream.Provider)
			}
		}
	}

	return nil
}

func validateBanner(banner string) error {
	if strings.HasPrefix(banner, "data:") {
		if payload, _, ok := splitDataURL(banner); ok {
			if len(payload)/4*3 > MaxInlineBannerBytes {
				return fmt.Errorf("%w: inline banner exceeds 2 MiB", models.ErrValidation)
			}
		}
	}
	if !safeurl.IsValidBannerURL(banner) {
		return fmt.Errorf("%w: banner must be an https URL or an inline jpeg/png/gif/webp image", models.ErrValidation)
	}
	return nil
}

func splitDataURL(s string) (payload, mediaType string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return "", "", false
	}
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	return payload, strings.TrimSuffix(meta, ";base64"), true
}
