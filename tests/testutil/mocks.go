package testutil

import (
	"context"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockBackend mocks the gateway client behind the handlers and screens.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockBackend) Register(ctx context.Context, req dto.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBackend) Me(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockBackend) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockBackend) UpdateUser(ctx context.Context, token string, userID int64, diff map[string]any) error {
	args := m.Called(ctx, token, userID, diff)
	return args.Error(0)
}

func (m *MockBackend) ListTypes(ctx context.Context, token string) ([]models.PokemonType, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PokemonType), args.Error(1)
}

func (m *MockBackend) CreateType(ctx context.Context, token string, req dto.CreateTypeRequest) (*models.PokemonType, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PokemonType), args.Error(1)
}

func (m *MockBackend) UpdateType(ctx context.Context, token string, typeID int64, diff map[string]any) error {
	args := m.Called(ctx, token, typeID, diff)
	return args.Error(0)
}

func (m *MockBackend) DeleteType(ctx context.Context, token string, typeID int64) error {
	args := m.Called(ctx, token, typeID)
	return args.Error(0)
}

func (m *MockBackend) ListMoves(ctx context.Context, token string) ([]models.Move, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Move), args.Error(1)
}

func (m *MockBackend) CreateMove(ctx context.Context, token string, req dto.CreateMoveRequest) (*models.Move, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Move), args.Error(1)
}

func (m *MockBackend) UpdateMove(ctx context.Context, token string, moveID int64, diff map[string]any) error {
	args := m.Called(ctx, token, moveID, diff)
	return args.Error(0)
}

func (m *MockBackend) DeleteMove(ctx context.Context, token string, moveID int64) error {
	args := m.Called(ctx, token, moveID)
	return args.Error(0)
}

func (m *MockBackend) ListItems(ctx context.Context, token string) ([]models.Item, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockBackend) CreateItem(ctx context.Context, token string, form backend.ItemForm) (*models.Item, error) {
	args := m.Called(ctx, token, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockBackend) UpdateItem(ctx context.Context, token string, itemID int64, form backend.ItemForm) error {
	args := m.Called(ctx, token, itemID, form)
	return args.Error(0)
}

func (m *MockBackend) DeleteItem(ctx context.Context, token string, itemID int64) error {
	args := m.Called(ctx, token, itemID)
	return args.Error(0)
}

func (m *MockBackend) ListPokemon(ctx context.Context, token string) ([]models.Pokemon, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockBackend) ListPokemonForAssembly(ctx context.Context, token string) ([]models.Pokemon, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockBackend) CreatePokemon(ctx context.Context, token string, form backend.PokemonForm) (*models.Pokemon, error) {
	args := m.Called(ctx, token, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pokemon), args.Error(1)
}

func (m *MockBackend) UpdatePokemon(ctx context.Context, token string, pokemonID int64, form backend.PokemonForm) error {
	args := m.Called(ctx, token, pokemonID, form)
	return args.Error(0)
}

func (m *MockBackend) DeletePokemon(ctx context.Context, token string, pokemonID int64) error {
	args := m.Called(ctx, token, pokemonID)
	return args.Error(0)
}

func (m *MockBackend) ListAbilities(ctx context.Context, token string, pokemonID int64) ([]models.Ability, error) {
	args := m.Called(ctx, token, pokemonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ability), args.Error(1)
}

func (m *MockBackend) ListNatures(ctx context.Context, token string) ([]models.Nature, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Nature), args.Error(1)
}

func (m *MockBackend) ListTeams(ctx context.Context, token string) ([]models.Team, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockBackend) CreateTeam(ctx context.Context, token string, req dto.CreateTeamRequest) (*models.Team, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockBackend) UpdateTeam(ctx context.Context, token string, teamID int64, req dto.UpdateTeamRequest) error {
	args := m.Called(ctx, token, teamID, req)
	return args.Error(0)
}

func (m *MockBackend) DeleteTeam(ctx context.Context, token string, teamID int64) error {
	args := m.Called(ctx, token, teamID)
	return args.Error(0)
}

func (m *MockBackend) ListRoster(ctx context.Context, token string, teamID int64) ([]models.TeamRosterEntry, error) {
	args := m.Called(ctx, token, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeamRosterEntry), args.Error(1)
}

func (m *MockBackend) GetRosterEntry(ctx context.Context, token string, entryID int64) (*models.TeamRosterEntry, error) {
	args := m.Called(ctx, token, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamRosterEntry), args.Error(1)
}

func (m *MockBackend) AddRosterEntry(ctx context.Context, token string, teamID int64, req dto.AddRosterEntryRequest) (*models.TeamRosterEntry, error) {
	args := m.Called(ctx, token, teamID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamRosterEntry), args.Error(1)
}

func (m *MockBackend) UpdateRosterEntry(ctx context.Context, token string, entryID int64, req dto.UpdateRosterEntryRequest) error {
	args := m.Called(ctx, token, entryID, req)
	return args.Error(0)
}

func (m *MockBackend) RemoveRosterEntry(ctx context.Context, token string, entryID int64) error {
	args := m.Called(ctx, token, entryID)
	return args.Error(0)
}
