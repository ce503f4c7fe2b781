package dto

type CreateTypeRequest struct {
	Name string `json:"name"`
}

type CreateMoveRequest struct {
	Name        string `json:"name"`
	TypeID      *int64 `json:"typeId"`
	Category    string `json:"category"`
	Power       int    `json:"power"`
	Description string `json:"description"`
}

// ErrorResponse is the backend's uniform error payload. Message may be empty,
// in which case callers fall back to a generic string.
type ErrorResponse struct {
	Message string `json:"message"`
}
