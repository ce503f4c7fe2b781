package handlers

import (
	"fmt"
	"strings"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/middleware"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/screens"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/view"
	"github.com/m1z23r/drift/pkg/drift"
)

// RosterHandler serves a team's roster and the per-entry editor.
type RosterHandler struct {
	backend  BackendInterface
	renderer *view.Renderer
	origin   string
}

func NewRosterHandler(backend BackendInterface, renderer *view.Renderer, origin string) *RosterHandler {
	return &RosterHandler{
		backend:  backend,
		renderer: renderer,
		origin:   origin,
	}
}

func (h *RosterHandler) Show(c *drift.Context) {
	teamID, ok := paramID(c, "teamId")
	if !ok {
		c.BadRequest("invalid team id")
		return
	}

	browser := screens.NewRosterBrowser(h.backend, middleware.GetToken(c), h.origin)
	data := view.RosterData{
		Page:    view.Page{Title: "Team roster", User: middleware.GetUser(c)},
		Browser: browser,
		Path:    c.Request.URL.Path,
	}
	if err := browser.Load(c.Request.Context(), teamID); err != nil {
		data.Error = errorText(err)
	}
	render(c, h.renderer, 200, "roster", data)
}

// rosterPath recovers the roster page's own URL from an action posted beneath
// it, so the same handler works under both the user and the admin mounts.
func rosterPath(c *drift.Context) string {
	path := c.Request.URL.Path
	if i := strings.Index(path, "/remove/"); i > 0 {
		return path[:i]
	}
	return path
}

// Remove deletes one roster entry. A failed delete keeps the stale list on
// screen with the error alongside it.
func (h *RosterHandler) Remove(c *drift.Context) {
	teamID, ok := paramID(c, "teamId")
	if !ok {
		c.BadRequest("invalid team id")
		return
	}
	entryID, ok := paramID(c, "entryId")
	if !ok {
		c.BadRequest("invalid entry id")
		return
	}

	browser := screens.NewRosterBrowser(h.backend, middleware.GetToken(c), h.origin)
	data := view.RosterData{
		Page:    view.Page{Title: "Team roster", User: middleware.GetUser(c)},
		Browser: browser,
		Path:    rosterPath(c),
	}

	if err := browser.Load(c.Request.Context(), teamID); err != nil {
		data.Error = errorText(err)
		render(c, h.renderer, 200, "roster", data)
		return
	}

	if err := browser.Remove(c.Request.Context(), entryID); err != nil {
		data.FormError = errorText(err)
		render(c, h.renderer, 200, "roster", data)
		return
	}

	redirect(c, data.Path)
}

// ShowEditor loads the entry and its reference lists and renders the form.
func (h *RosterHandler) ShowEditor(c *drift.Context) {
	entryID, ok := paramID(c, "entryId")
	if !ok {
		c.BadRequest("invalid entry id")
		return
	}

	editor := screens.NewRosterEditor(h.backend, middleware.GetToken(c), h.origin)
	data := view.EditorData{
		Page:    view.Page{Title: "Modify team Pokémon", User: middleware.GetUser(c)},
		Editor:  editor,
		BackURL: "/userDashboard",
	}
	if err := editor.Load(c.Request.Context(), entryID); err != nil {
		data.Error = errorText(err)
		render(c, h.renderer, 200, "editor", data)
		return
	}

	data.BackURL = fmt.Sprintf("/userDashboard/teamPokemonManagement/%d", editor.TeamID)
	render(c, h.renderer, 200, "editor", data)
}

// SaveEditor re-loads the entry, applies the submitted form on top and sends
// the full draft. Success returns to the team's roster; failure re-renders the
// form with the draft intact.
func (h *RosterHandler) SaveEditor(c *drift.Context) {
	entryID, ok := paramID(c, "entryId")
	if !ok {
		c.BadRequest("invalid entry id")
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.BadRequest("invalid form")
		return
	}

	editor := screens.NewRosterEditor(h.backend, middleware.GetToken(c), h.origin)
	data := view.EditorData{
		Page:    view.Page{Title: "Modify team Pokémon", User: middleware.GetUser(c)},
		Editor:  editor,
		BackURL: "/userDashboard",
	}

	if err := editor.Load(c.Request.Context(), entryID); err != nil {
		data.Error = errorText(err)
		render(c, h.renderer, 200, "editor", data)
		return
	}
	data.BackURL = fmt.Sprintf("/userDashboard/teamPokemonManagement/%d", editor.TeamID)

	editor.ApplyForm(c.Request.PostForm)
	if err := editor.Submit(c.Request.Context()); err != nil {
		data.FormError = errorText(err)
		render(c, h.renderer, 200, "editor", data)
		return
	}

	redirect(c, data.BackURL)
}
