package tenancy

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"

	"github.com/showpro/showpro-server/internal/models"
)

// State describes where a resolution stands.
type State int

const (
	StateLoading State = iota
	StateResolved
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateResolved:
		return "resolved"
	case StateNotFound:
		return "not_found"
	default:
		return "loading"
	}
}

// Resolution is the outcome of mapping request context to a tenant. On
// StateNotFound the Slug records which workspace was asked for; the caller
// must render a distinct not-found experience, never substitute another
// tenant.
type Resolution struct {
	State  State
	Slug   string
	Tenant *models.Tenant
}

// Options configure slug derivation.
type Options struct {
	// DefaultSlug is used when neither the path nor the hostname yields a
	// candidate.
	DefaultSlug string
	// PlatformSuffix is a reserved hosting suffix (e.g. ".platform.app")
	// whose subdomains are never tenant slugs.
	PlatformSuffix string
}

// blockedHosts never contribute a hostname-derived candidate.
var blockedHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"::1":       true,
}

// SlugFromHost derives a candidate tenant slug from a request hostname: the
// first label, provided the host has at least two labels, is not "www", and
// is not a known non-tenant host. The second return reports whether a
// candidate was found.
func SlugFromHost(host, platformSuffix string) (string, bool) {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	if host == "" || blockedHosts[host] {
		return "", false
	}
	if platformSuffix != "" && strings.HasSuffix(host, platformSuffix) {
		return "", false
	}

	parts := strings.Split(host, ".")
	if len(parts) >= 2 && parts[0] != "www" {
		return parts[0], true
	}
	return "", false
}

// DetermineSlug picks the slug a request resolves under. An explicit path
// slug always wins and bypasses hostname parsing entirely.
func DetermineSlug(pathSlug, host string, opts Options) string {
	if pathSlug != "" {
		return pathSlug
	}
	if candidate, ok := SlugFromHost(host, opts.PlatformSuffix); ok {
		return candidate
	}
	return opts.DefaultSlug
}

// Resolver maps request context to a tenant scope through the lookup
// collaborator.
type Resolver struct {
	lookup models.TenantRepo
	opts   Options
}

func NewResolver(lookup models.TenantRepo, opts Options) *Resolver {
	return &Resolver{lookup: lookup, opts: opts}
}

// Resolve runs the full resolution algorithm for one request. A lookup miss
// is a NotFound resolution, not an error; only infrastructure failures
// return a non-nil error.
func (r *Resolver) Resolve(ctx context.Context, pathSlug, host string) (Resolution, error) {
	slug := DetermineSlug(pathSlug, host, r.opts)

	tenant, err := r.lookup.GetTenantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			return Resolution{State: StateNotFound, Slug: slug}, nil
		}
		return Resolution{State: StateLoading, Slug: slug}, err
	}

	return Resolution{State: StateResolved, Slug: slug, Tenant: tenant}, nil
}

// SessionResolver tracks the visible resolution for one logical user session
// navigating between workspaces. Every Resolve call captures a generation
// number; a completion is applied to the visible state only while its
// generation is still the newest, so a slow lookup for a superseded slug can
// never overwrite a fresher result.
type SessionResolver struct {
	resolver *Resolver

	mu      sync.Mutex
	gen     uint64
	current Resolution
}

func NewSessionResolver(resolver *Resolver) *SessionResolver {
	return &SessionResolver{
		resolver: resolver,
		current:  Resolution{State: StateLoading},
	}
}

// Resolve starts a resolution for the given request context and returns its
// outcome. The session's visible state is only updated when this call is
// still the latest one issued.
func (s *SessionResolver) Resolve(ctx context.Context, pathSlug, host string) (Resolution, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	res, err := s.resolver.Resolve(ctx, pathSlug, host)
	if err != nil {
		return res, err
	}

	s.mu.Lock()
	if gen == s.gen {
		s.current = res
	}
	s.mu.Unlock()

	return res, nil
}

// Current returns the session's visible resolution.
func (s *SessionResolver) Current() Resolution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Registry hands out one SessionResolver per logical session.
type Registry struct {
	resolver *Resolver

	mu       sync.Mutex
	sessions map[string]*SessionResolver
}

func NewRegistry(resolver *Resolver) *Registry {
	return &Registry{
		resolver: resolver,
		sessions: make(map[string]*SessionResolver),
	}
}

// Session returns the resolver for the given session id, creating it on
// first use.
func (r *Registry) Session(id string) *SessionResolver {
	r.mu.Lock()
	defer r.mu.Unlock()

	sr, ok := r.sessions[id]
	if !ok {
		sr = NewSessionResolver(r.resolver)
		r.sessions[id] = sr
	}
	return sr
}

// Drop forgets a session, typically on logout.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
