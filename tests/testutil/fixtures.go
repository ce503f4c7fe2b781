package testutil

import "github.com/IngFreddyRosales/pokemon-frontend/internal/models"

func Int64Ptr(v int64) *int64 {
	return &v
}

func TestUser() *models.User {
	return &models.User{
		ID:    1,
		Name:  "ash",
		Email: "ash@example.com",
	}
}

func TestAdmin() *models.User {
	return &models.User{
		ID:      2,
		Name:    "oak",
		Email:   "oak@example.com",
		IsAdmin: true,
	}
}

func TestTeam() models.Team {
	return models.Team{ID: 7, Name: "Kanto Starters"}
}

func TestPokemon() models.Pokemon {
	return models.Pokemon{
		ID:    25,
		Name:  "Pikachu",
		Image: "/media/pikachu.png",
		HP:    35, Atk: 55, Def: 40, SpAtk: 50, SpDef: 50, Speed: 90,
	}
}

func TestRosterEntry() *models.TeamRosterEntry {
	return &models.TeamRosterEntry{
		ID:        11,
		TeamID:    7,
		PokemonID: 25,
		Nickname:  "Sparky",
		Name:      "Pikachu",
		Image:     "/media/pikachu.png",
		EVHP:      4, EVSpe: 252,
		IVHP: 31, IVAtk: 31, IVDef: 31, IVSpA: 31, IVSpD: 31, IVSpe: 31,
	}
}
