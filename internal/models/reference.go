package models

type PokemonType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
	CategoryStatus   MoveCategory = "status"
)

func (c MoveCategory) Valid() bool {
	switch c {
	case CategoryPhysical, CategorySpecial, CategoryStatus:
		return true
	}
	return false
}

type Move struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	TypeID      *int64       `json:"typeId"`
	Category    MoveCategory `json:"category"`
	Power       int          `json:"power"`
	Description string       `json:"description"`
}

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
