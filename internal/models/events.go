package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusArchived  EventStatus = "archived"
)

type StreamProvider string

const (
	ProviderYouTube StreamProvider = "youtube"
	ProviderVimeo   StreamProvider = "vimeo"
	ProviderOther   StreamProvider = "other"
)

// StreamConfig describes the live/replay stream attached to an event. The
// embed URL is operator-supplied and must pass the safety gate before it is
// ever rendered.
type StreamConfig struct {
	Provider  StreamProvider `bson:"provider" json:"provider" validate:"required,oneof=youtube vimeo other"`
	EmbedURL  string         `bson:"embed_url" json:"embed_url" validate:"required"`
	IsLive    bool           `bson:"is_live" json:"is_live"`
	ReplayURL string         `bson:"replay_url,omitempty" json:"replay_url,omitempty"`
}

// Session is a scheduled slot within an event's agenda. Sessions have no
// identity outside their parent event; ordering is display order.
type Session struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title" validate:"required"`
	StartAt     time.Time `bson:"start_at" json:"start_at" validate:"required"`
	EndAt       time.Time `bson:"end_at" json:"end_at" validate:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	SpeakerName string    `bson:"speaker_name,omitempty" json:"speaker_name,omitempty"`
}

type Speaker struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name" validate:"required"`
	Title       string `bson:"title" json:"title" validate:"required"`
	Company     string `bson:"company" json:"company" validate:"required"`
	HeadshotURL string `bson:"headshot_url,omitempty" json:"headshot_url,omitempty"`
	Bio         string `bson:"bio,omitempty" json:"bio,omitempty"`
}

// EventResource is a named downloadable link shown on the landing page.
type EventResource struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name" validate:"required"`
	URL  string `bson:"url" json:"url" validate:"required,url"`
	Type string `bson:"type" json:"type" validate:"required"`
}

// Event is the central aggregate. It belongs to exactly one tenant and its
// slug is unique within that tenant, not globally. StartAt/EndAt are UTC
// instants; Timezone is only used for display.
type Event struct {
	ID          uuid.UUID       `bson:"_id" json:"id"`
	TenantID    uuid.UUID       `bson:"tenant_id" json:"tenant_id"`
	Title       string          `bson:"title" json:"title" validate:"required"`
	Slug        string          `bson:"slug" json:"slug" validate:"required"`
	Status      EventStatus     `bson:"status" json:"status" validate:"required,oneof=draft published archived"`
	StartAt     time.Time       `bson:"start_at" json:"start_at" validate:"required"`
	EndAt       time.Time       `bson:"end_at" json:"end_at" validate:"required"`
	Timezone    string          `bson:"timezone" json:"timezone" validate:"required"`
	Venue       string          `bson:"venue,omitempty" json:"venue,omitempty"`
	Description string          `bson:"description" json:"description" validate:"required"`
	BannerURL   string          `bson:"banner_url,omitempty" json:"banner_url,omitempty"`
	Stream      *StreamConfig   `bson:"stream,omitempty" json:"stream,omitempty"`
	Sessions    []Session       `bson:"sessions" json:"sessions" validate:"dive"`
	Speakers    []Speaker       `bson:"speakers" json:"speakers" validate:"dive"`
	Resources   []EventResource `bson:"resources" json:"resources" validate:"dive"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// EventsRepo is the event persistence collaborator. All reads and writes are
// keyed by tenant so one workspace can never touch another's events.
type EventsRepo interface {
	// CreateEvent inserts the event; returns ErrSlugTaken when the slug is
	// already used within the same tenant.
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, tenantID, id uuid.UUID) (*Event, error)
	GetEventBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*Event, error)
	// ListEvents returns a page of the tenant's events plus the total count.
	// An empty status matches all lifecycle states.
	ListEvents(ctx context.Context, tenantID uuid.UUID, status EventStatus, offset, limit int) ([]*Event, int, error)
	// UpdateEvent replaces the stored document; the caller is responsible for
	// merging partial input and re-validating first.
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, tenantID, id uuid.UUID) error
}
