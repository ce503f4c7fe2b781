package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
)

// PokemonForm is the full Pokémon form. Like items, Pokémon updates always
// resend the whole form because the image travels with it; move references go
// as one JSON-encoded id list alongside the multipart fields.
type PokemonForm struct {
	Name  string
	Image *FileUpload

	Type1ID *int64
	Type2ID *int64

	HP    int
	Atk   int
	Def   int
	SpAtk int
	SpDef int
	Speed int

	MoveIDs []int64
}

// ListPokemon returns the full administrative list.
func (c *Client) ListPokemon(ctx context.Context, token string) ([]models.Pokemon, error) {
	var pokemon []models.Pokemon
	if err := c.doJSON(ctx, http.MethodGet, "pokemon/", token, nil, &pokemon); err != nil {
		return nil, err
	}
	return pokemon, nil
}

// ListPokemonForAssembly returns the candidate list the team-building
// type-ahead filters over.
func (c *Client) ListPokemonForAssembly(ctx context.Context, token string) ([]models.Pokemon, error) {
	var pokemon []models.Pokemon
	if err := c.doJSON(ctx, http.MethodGet, "pokemon/pokemons", token, nil, &pokemon); err != nil {
		return nil, err
	}
	return pokemon, nil
}

func (c *Client) CreatePokemon(ctx context.Context, token string, form PokemonForm) (*models.Pokemon, error) {
	var created models.Pokemon
	err := c.doMultipart(ctx, http.MethodPost, "pokemon/createPokemon", token, form.fill, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePokemon(ctx context.Context, token string, pokemonID int64, form PokemonForm) error {
	return c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("pokemon/updatePokemon/%d", pokemonID), token, form.fill, nil)
}

func (c *Client) DeletePokemon(ctx context.Context, token string, pokemonID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("pokemon/deletePokemon/%d", pokemonID), token, nil, nil)
}

func (f PokemonForm) fill(w *multipart.Writer) error {
	if err := w.WriteField("name", f.Name); err != nil {
		return err
	}

	if f.Type1ID != nil {
		if err := w.WriteField("type1Id", strconv.FormatInt(*f.Type1ID, 10)); err != nil {
			return err
		}
	}
	if f.Type2ID != nil {
		if err := w.WriteField("type2Id", strconv.FormatInt(*f.Type2ID, 10)); err != nil {
			return err
		}
	}

	stats := map[string]int{
		"hp":    f.HP,
		"atk":   f.Atk,
		"def":   f.Def,
		"spAtk": f.SpAtk,
		"spDef": f.SpDef,
		"speed": f.Speed,
	}
	for field, value := range stats {
		if err := w.WriteField(field, strconv.Itoa(value)); err != nil {
			return err
		}
	}

	moveIDs := f.MoveIDs
	if moveIDs == nil {
		moveIDs = []int64{}
	}
	encoded, err := json.Marshal(moveIDs)
	if err != nil {
		return err
	}
	if err := w.WriteField("moves", string(encoded)); err != nil {
		return err
	}

	return writeUpload(w, "image", f.Image)
}
