package models

type Pokemon struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`

	Type1ID *int64 `json:"type1Id"`
	Type2ID *int64 `json:"type2Id"`

	HP    int `json:"hp"`
	Atk   int `json:"atk"`
	Def   int `json:"def"`
	SpAtk int `json:"spAtk"`
	SpDef int `json:"spDef"`
	Speed int `json:"speed"`

	MoveIDs []int64 `json:"moves,omitempty"`
}

type Ability struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Nature struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
