package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/middleware"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/screens"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/view"
	"github.com/m1z23r/drift/pkg/drift"
)

// DashboardHandler serves the team dashboard. The same handler backs the user
// home and the admin teams screen; only the base path and title differ.
type DashboardHandler struct {
	backend  BackendInterface
	renderer *view.Renderer
	basePath string
	title    string
}

func NewDashboardHandler(backend BackendInterface, renderer *view.Renderer, basePath, title string) *DashboardHandler {
	return &DashboardHandler{
		backend:  backend,
		renderer: renderer,
		basePath: basePath,
		title:    title,
	}
}

// Show renders the dashboard. Query parameters drive the type-ahead (q), the
// picked suggestion (pokemon) and the team selected for rename (edit).
func (h *DashboardHandler) Show(c *drift.Context) {
	data := view.DashboardData{
		Page:       view.Page{Title: h.title, User: middleware.GetUser(c)},
		BasePath:   h.basePath,
		Query:      c.QueryParam("q"),
		ChosenName: c.QueryParam("pokemon"),
	}

	dashboard := screens.NewTeamDashboard(h.backend, middleware.GetToken(c))
	if err := dashboard.Load(c.Request.Context()); err != nil {
		data.Error = errorText(err)
		render(c, h.renderer, 200, "dashboard", data)
		return
	}

	data.Dashboard = dashboard
	data.Suggestions = dashboard.Search(data.Query)

	if edit := c.QueryParam("edit"); edit != "" {
		if teamID, err := strconv.ParseInt(edit, 10, 64); err == nil {
			for i := range dashboard.Teams {
				if dashboard.Teams[i].ID == teamID {
					data.SelectedTeam = &dashboard.Teams[i]
					break
				}
			}
		}
	}

	render(c, h.renderer, 200, "dashboard", data)
}

// SaveTeam creates a team, or renames when the form carries a teamId.
func (h *DashboardHandler) SaveTeam(c *drift.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.BadRequest("invalid form")
		return
	}

	var teamID int64
	if raw := c.Request.PostFormValue("teamId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.BadRequest("invalid team id")
			return
		}
		teamID = id
	}
	name := c.Request.PostFormValue("name")

	dashboard := screens.NewTeamDashboard(h.backend, middleware.GetToken(c))
	if err := dashboard.SaveTeam(c.Request.Context(), teamID, name); err != nil {
		h.showWithError(c, dashboard, err, func(data *view.DashboardData) {
			if teamID != 0 {
				data.SelectedTeam = &models.Team{ID: teamID, Name: name}
			}
		})
		return
	}

	redirect(c, h.basePath)
}

func (h *DashboardHandler) DeleteTeam(c *drift.Context) {
	teamID, ok := paramID(c, "teamId")
	if !ok {
		c.BadRequest("invalid team id")
		return
	}

	dashboard := screens.NewTeamDashboard(h.backend, middleware.GetToken(c))
	if err := dashboard.DeleteTeam(c.Request.Context(), teamID); err != nil {
		h.showWithError(c, dashboard, err, nil)
		return
	}

	redirect(c, h.basePath)
}

// AddPokemon resolves the picked name against the assembly list and creates
// the roster entry. Success lands on the team's roster.
func (h *DashboardHandler) AddPokemon(c *drift.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.BadRequest("invalid form")
		return
	}

	name := c.Request.PostFormValue("pokemon")
	nickname := c.Request.PostFormValue("nickname")

	dashboard := screens.NewTeamDashboard(h.backend, middleware.GetToken(c))
	if err := dashboard.Load(c.Request.Context()); err != nil {
		data := view.DashboardData{
			Page:     view.Page{Title: h.title, User: middleware.GetUser(c), Error: errorText(err)},
			BasePath: h.basePath,
		}
		render(c, h.renderer, 200, "dashboard", data)
		return
	}

	teamID, err := strconv.ParseInt(c.Request.PostFormValue("teamId"), 10, 64)
	if err != nil || teamID <= 0 {
		h.showLoaded(c, dashboard, "select a team", name, nickname)
		return
	}

	if err := dashboard.AddPokemon(c.Request.Context(), teamID, name, nickname); err != nil {
		h.showLoaded(c, dashboard, errorText(err), name, nickname)
		return
	}

	redirect(c, fmt.Sprintf("%s/teamPokemonManagement/%d", h.basePath, teamID))
}

// showWithError loads the dashboard fresh and renders the action's failure
// inline. A load failure on top of the action failure blocks the screen.
func (h *DashboardHandler) showWithError(c *drift.Context, dashboard *screens.TeamDashboard, actionErr error, adjust func(*view.DashboardData)) {
	data := view.DashboardData{
		Page:     view.Page{Title: h.title, User: middleware.GetUser(c)},
		BasePath: h.basePath,
	}

	if err := dashboard.Load(c.Request.Context()); err != nil {
		data.Error = errorText(err)
		render(c, h.renderer, 200, "dashboard", data)
		return
	}

	data.Dashboard = dashboard
	data.FormError = errorText(actionErr)
	if adjust != nil {
		adjust(&data)
	}
	render(c, h.renderer, 200, "dashboard", data)
}

func (h *DashboardHandler) showLoaded(c *drift.Context, dashboard *screens.TeamDashboard, formError, chosen, nickname string) {
	render(c, h.renderer, 200, "dashboard", view.DashboardData{
		Page:       view.Page{Title: h.title, User: middleware.GetUser(c)},
		BasePath:   h.basePath,
		Dashboard:  dashboard,
		FormError:  formError,
		ChosenName: chosen,
		Nickname:   nickname,
	})
}

// errorText maps a screen error to its display message: validation errors
// carry their own text, backend failures surface the backend's bare message.
func errorText(err error) string {
	var validation *screens.ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
