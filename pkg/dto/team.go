package dto

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type UpdateTeamRequest struct {
	Name string `json:"name"`
}

// AddRosterEntryRequest adds a Pokémon to a team. Everything beyond species
// and nickname defaults server-side (null references, zeroed EV/IV spreads).
type AddRosterEntryRequest struct {
	PokemonID int64  `json:"pokemon_id"`
	Nickname  string `json:"nickname"`
}

// UpdateRosterEntryRequest is the full draft of one roster entry. Optional
// references carry explicit null when unset; the backend must be able to tell
// "cleared" apart from "never sent", so none of them use omitempty.
type UpdateRosterEntryRequest struct {
	Nickname  string `json:"nickname"`
	ItemID    *int64 `json:"itemId"`
	AbilityID *int64 `json:"abilityId"`
	NatureID  *int64 `json:"natureId"`

	EVHP  int `json:"evHp"`
	EVAtk int `json:"evAtk"`
	EVDef int `json:"evDef"`
	EVSpA int `json:"evSpa"`
	EVSpD int `json:"evSpd"`
	EVSpe int `json:"evSpe"`

	IVHP  int `json:"ivHp"`
	IVAtk int `json:"ivAtk"`
	IVDef int `json:"ivDef"`
	IVSpA int `json:"ivSpa"`
	IVSpD int `json:"ivSpd"`
	IVSpe int `json:"ivSpe"`
}
