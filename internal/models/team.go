package models

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TeamRosterEntry is one Pokémon slot inside a team. The backend denormalizes
// display fields (species name, sprite, item icon, ability/nature/item names)
// so the client never joins reference data itself.
type TeamRosterEntry struct {
	ID        int64 `json:"id"`
	TeamID    int64 `json:"teamId"`
	PokemonID int64 `json:"pokemonId"`

	Nickname string `json:"nickname"`

	// Optional references. nil means no selection; the distinction between
	// nil and zero must survive serialization, so no omitempty here.
	ItemID    *int64 `json:"itemId"`
	AbilityID *int64 `json:"abilityId"`
	NatureID  *int64 `json:"natureId"`

	// Denormalized display fields, supplied by the backend.
	Name      string `json:"name,omitempty"`
	Image     string `json:"image,omitempty"`
	Item      string `json:"item,omitempty"`
	ItemImage string `json:"itemImage,omitempty"`
	Ability   string `json:"ability,omitempty"`
	Nature    string `json:"nature,omitempty"`

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

// DisplayName returns the nickname, falling back to the species name when the
// entry was never nicknamed.
func (e TeamRosterEntry) DisplayName() string {
	if e.Nickname != "" {
		return e.Nickname
	}
	return e.Name
}
