package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
)

func (c *Client) ListTypes(ctx context.Context, token string) ([]models.PokemonType, error) {
	var types []models.PokemonType
	if err := c.doJSON(ctx, http.MethodGet, "type/", token, nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (c *Client) CreateType(ctx context.Context, token string, req dto.CreateTypeRequest) (*models.PokemonType, error) {
	var created models.PokemonType
	if err := c.doJSON(ctx, http.MethodPost, "type/createType", token, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateType(ctx context.Context, token string, typeID int64, diff map[string]any) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("type/updateType/%d", typeID), token, diff, nil)
}

func (c *Client) DeleteType(ctx context.Context, token string, typeID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("type/deleteType/%d", typeID), token, nil, nil)
}

func (c *Client) ListMoves(ctx context.Context, token string) ([]models.Move, error) {
	var moves []models.Move
	if err := c.doJSON(ctx, http.MethodGet, "move/", token, nil, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

func (c *Client) CreateMove(ctx context.Context, token string, req dto.CreateMoveRequest) (*models.Move, error) {
	var created models.Move
	if err := c.doJSON(ctx, http.MethodPost, "move/createMove", token, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateMove(ctx context.Context, token string, moveID int64, diff map[string]any) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("move/updateMove/%d", moveID), token, diff, nil)
}

func (c *Client) DeleteMove(ctx context.Context, token string, moveID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("move/deleteMove/%d", moveID), token, nil, nil)
}

// ListAbilities returns the abilities legal for one species. The set depends
// on the species and on nothing else, so the editor fetches it once at load.
func (c *Client) ListAbilities(ctx context.Context, token string, pokemonID int64) ([]models.Ability, error) {
	var abilities []models.Ability
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("ability/%d", pokemonID), token, nil, &abilities); err != nil {
		return nil, err
	}
	return abilities, nil
}

func (c *Client) ListNatures(ctx context.Context, token string) ([]models.Nature, error) {
	var natures []models.Nature
	if err := c.doJSON(ctx, http.MethodGet, "nature/", token, nil, &natures); err != nil {
		return nil, err
	}
	return natures, nil
}
