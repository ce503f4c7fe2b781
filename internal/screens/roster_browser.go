package screens

import (
	"context"
	"strings"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
)

// BrowserBackend is the slice of the gateway client the roster browser uses.
type BrowserBackend interface {
	ListRoster(ctx context.Context, token string, teamID int64) ([]models.TeamRosterEntry, error)
	RemoveRosterEntry(ctx context.Context, token string, entryID int64) error
}

// RosterBrowser lists a team's members. Everything shown comes denormalized
// from the backend; the browser performs no joins of its own.
type RosterBrowser struct {
	backend BrowserBackend
	token   string
	origin  string

	TeamID  int64
	Entries []models.TeamRosterEntry
}

func NewRosterBrowser(backend BrowserBackend, token, origin string) *RosterBrowser {
	return &RosterBrowser{
		backend: backend,
		token:   token,
		origin:  origin,
	}
}

func (b *RosterBrowser) Load(ctx context.Context, teamID int64) error {
	entries, err := b.backend.ListRoster(ctx, b.token, teamID)
	if err != nil {
		return &LoadError{err: err}
	}
	b.TeamID = teamID
	b.Entries = entries
	return nil
}

// Remove deletes one entry and reloads the roster. When the delete fails the
// stale list stays visible alongside the error.
func (b *RosterBrowser) Remove(ctx context.Context, entryID int64) error {
	if err := b.backend.RemoveRosterEntry(ctx, b.token, entryID); err != nil {
		return &SubmitError{err: err}
	}
	return b.Load(ctx, b.TeamID)
}

// SpriteURL resolves an entry's sprite against the frontend origin.
func (b *RosterBrowser) SpriteURL(entry models.TeamRosterEntry) string {
	return ResolveImageURL(b.origin, entry.Image)
}

// ItemIconURL resolves an entry's held-item icon, or "" when no item is held.
func (b *RosterBrowser) ItemIconURL(entry models.TeamRosterEntry) string {
	if entry.ItemImage == "" {
		return ""
	}
	return ResolveImageURL(b.origin, entry.ItemImage)
}

// ResolveImageURL preserves the backend's freedom to return either fully
// qualified URLs or origin-relative paths: a value that already starts with an
// absolute scheme is used verbatim, anything else is prefixed with the
// frontend origin.
func ResolveImageURL(origin, stored string) string {
	if strings.HasPrefix(stored, "http") {
		return stored
	}
	return origin + stored
}
