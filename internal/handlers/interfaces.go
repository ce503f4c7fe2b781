package handlers

import (
	"context"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
)

// BackendInterface defines the slice of the gateway client the handlers use.
type BackendInterface interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
	Me(ctx context.Context, token string) (*models.User, error)

	ListUsers(ctx context.Context, token string) ([]models.User, error)
	UpdateUser(ctx context.Context, token string, userID int64, diff map[string]any) error

	ListTypes(ctx context.Context, token string) ([]models.PokemonType, error)
	CreateType(ctx context.Context, token string, req dto.CreateTypeRequest) (*models.PokemonType, error)
	UpdateType(ctx context.Context, token string, typeID int64, diff map[string]any) error
	DeleteType(ctx context.Context, token string, typeID int64) error

	ListMoves(ctx context.Context, token string) ([]models.Move, error)
	CreateMove(ctx context.Context, token string, req dto.CreateMoveRequest) (*models.Move, error)
	UpdateMove(ctx context.Context, token string, moveID int64, diff map[string]any) error
	DeleteMove(ctx context.Context, token string, moveID int64) error

	ListItems(ctx context.Context, token string) ([]models.Item, error)
	CreateItem(ctx context.Context, token string, form backend.ItemForm) (*models.Item, error)
	UpdateItem(ctx context.Context, token string, itemID int64, form backend.ItemForm) error
	DeleteItem(ctx context.Context, token string, itemID int64) error

	ListPokemon(ctx context.Context, token string) ([]models.Pokemon, error)
	ListPokemonForAssembly(ctx context.Context, token string) ([]models.Pokemon, error)
	CreatePokemon(ctx context.Context, token string, form backend.PokemonForm) (*models.Pokemon, error)
	UpdatePokemon(ctx context.Context, token string, pokemonID int64, form backend.PokemonForm) error
	DeletePokemon(ctx context.Context, token string, pokemonID int64) error

	ListAbilities(ctx context.Context, token string, pokemonID int64) ([]models.Ability, error)
	ListNatures(ctx context.Context, token string) ([]models.Nature, error)

	ListTeams(ctx context.Context, token string) ([]models.Team, error)
	CreateTeam(ctx context.Context, token string, req dto.CreateTeamRequest) (*models.Team, error)
	UpdateTeam(ctx context.Context, token string, teamID int64, req dto.UpdateTeamRequest) error
	DeleteTeam(ctx context.Context, token string, teamID int64) error

	ListRoster(ctx context.Context, token string, teamID int64) ([]models.TeamRosterEntry, error)
	GetRosterEntry(ctx context.Context, token string, entryID int64) (*models.TeamRosterEntry, error)
	AddRosterEntry(ctx context.Context, token string, teamID int64, req dto.AddRosterEntryRequest) (*models.TeamRosterEntry, error)
	UpdateRosterEntry(ctx context.Context, token string, entryID int64, req dto.UpdateRosterEntryRequest) error
	RemoveRosterEntry(ctx context.Context, token string, entryID int64) error
}
