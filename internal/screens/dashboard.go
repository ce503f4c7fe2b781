package screens

import (
	"context"
	"strings"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
)

// Suggestion lists cap out well below the full dex.
const maxSuggestions = 10

// DashboardBackend is the slice of the gateway client the team dashboard uses.
type DashboardBackend interface {
	ListTeams(ctx context.Context, token string) ([]models.Team, error)
	CreateTeam(ctx context.Context, token string, req dto.CreateTeamRequest) (*models.Team, error)
	UpdateTeam(ctx context.Context, token string, teamID int64, req dto.UpdateTeamRequest) error
	DeleteTeam(ctx context.Context, token string, teamID int64) error
	ListPokemonForAssembly(ctx context.Context, token string) ([]models.Pokemon, error)
	AddRosterEntry(ctx context.Context, token string, teamID int64, req dto.AddRosterEntryRequest) (*models.TeamRosterEntry, error)
}

// TeamDashboard drives the user home screen: the team list, team CRUD and the
// add-Pokémon type-ahead.
type TeamDashboard struct {
	backend DashboardBackend
	token   string

	Teams      []models.Team
	Candidates []models.Pokemon
}

func NewTeamDashboard(backend DashboardBackend, token string) *TeamDashboard {
	return &TeamDashboard{
		backend: backend,
		token:   token,
	}
}

func (d *TeamDashboard) Load(ctx context.Context) error {
	teams, err := d.backend.ListTeams(ctx, d.token)
	if err != nil {
		return &LoadError{err: err}
	}

	candidates, err := d.backend.ListPokemonForAssembly(ctx, d.token)
	if err != nil {
		return &LoadError{err: err}
	}

	d.Teams = teams
	d.Candidates = candidates
	return nil
}

// SaveTeam creates or renames depending on whether an existing team was
// selected for edit (teamID == 0 means create).
func (d *TeamDashboard) SaveTeam(ctx context.Context, teamID int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Message: "team name is required"}
	}

	if teamID == 0 {
		if _, err := d.backend.CreateTeam(ctx, d.token, dto.CreateTeamRequest{Name: name}); err != nil {
			return &SubmitError{err: err}
		}
		return nil
	}

	if err := d.backend.UpdateTeam(ctx, d.token, teamID, dto.UpdateTeamRequest{Name: name}); err != nil {
		return &SubmitError{err: err}
	}
	return nil
}

func (d *TeamDashboard) DeleteTeam(ctx context.Context, teamID int64) error {
	if err := d.backend.DeleteTeam(ctx, d.token, teamID); err != nil {
		return &SubmitError{err: err}
	}
	return nil
}

// Search filters the held candidate list: case-insensitive substring match on
// the name, first 10 hits. An empty query suggests nothing.
func (d *TeamDashboard) Search(query string) []models.Pokemon {
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var matches []models.Pokemon
	for _, p := range d.Candidates {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

// Resolve finds the candidate whose name matches exactly. Submitting free
// text that resolves to nothing is the "select a valid Pokémon" case.
func (d *TeamDashboard) Resolve(name string) (*models.Pokemon, bool) {
	for i := range d.Candidates {
		if d.Candidates[i].Name == name {
			return &d.Candidates[i], true
		}
	}
	return nil, false
}

// AddPokemon validates locally before any network call: the typed name must
// resolve against the held list and the nickname must be non-empty.
func (d *TeamDashboard) AddPokemon(ctx context.Context, teamID int64, name, nickname string) error {
	pokemon, ok := d.Resolve(name)
	if !ok {
		return &ValidationError{Message: "select a valid Pokémon from the suggestions"}
	}
	if strings.TrimSpace(nickname) == "" {
		return &ValidationError{Message: "nickname is required"}
	}

	req := dto.AddRosterEntryRequest{
		PokemonID: pokemon.ID,
		Nickname:  nickname,
	}
	if _, err := d.backend.AddRosterEntry(ctx, d.token, teamID, req); err != nil {
		return &SubmitError{err: err}
	}
	return nil
}
