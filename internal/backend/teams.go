package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
)

func (c *Client) ListTeams(ctx context.Context, token string) ([]models.Team, error) {
	var teams []models.Team
	if err := c.doJSON(ctx, http.MethodGet, "team/", token, nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) CreateTeam(ctx context.Context, token string, req dto.CreateTeamRequest) (*models.Team, error) {
	var created models.Team
	if err := c.doJSON(ctx, http.MethodPost, "team/createTeam", token, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTeam(ctx context.Context, token string, teamID int64, req dto.UpdateTeamRequest) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("team/updateTeam/%d", teamID), token, req, nil)
}

func (c *Client) DeleteTeam(ctx context.Context, token string, teamID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("team/deleteTeam/%d", teamID), token, nil, nil)
}

// ListRoster returns a team's entries in server order, display fields included.
func (c *Client) ListRoster(ctx context.Context, token string, teamID int64) ([]models.TeamRosterEntry, error) {
	var entries []models.TeamRosterEntry
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("teamPokemon/%d", teamID), token, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) GetRosterEntry(ctx context.Context, token string, entryID int64) (*models.TeamRosterEntry, error) {
	var entry models.TeamRosterEntry
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("teamPokemon/pokemon/%d", entryID), token, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) AddRosterEntry(ctx context.Context, token string, teamID int64, req dto.AddRosterEntryRequest) (*models.TeamRosterEntry, error) {
	var created models.TeamRosterEntry
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("teamPokemon/createTeamPokemon/%d", teamID), token, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateRosterEntry(ctx context.Context, token string, entryID int64, req dto.UpdateRosterEntryRequest) error {
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("teamPokemon/updateTeamPokemon/%d", entryID), token, req, nil)
}

func (c *Client) RemoveRosterEntry(ctx context.Context, token string, entryID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("teamPokemon/deleteTeamPokemon/%d", entryID), token, nil, nil)
}
