package screens

import (
	"context"
	"net/url"
	"strconv"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
)

// Stat allocations are bounded by the slider control, not by the backend.
// Treat the upper bound as a UI contract until the backend states otherwise.
const (
	StatMin = 0
	StatMax = 250
)

// EditorBackend is the slice of the gateway client the editor uses.
type EditorBackend interface {
	GetRosterEntry(ctx context.Context, token string, entryID int64) (*models.TeamRosterEntry, error)
	ListItems(ctx context.Context, token string) ([]models.Item, error)
	ListAbilities(ctx context.Context, token string, pokemonID int64) ([]models.Ability, error)
	ListNatures(ctx context.Context, token string) ([]models.Nature, error)
	UpdateRosterEntry(ctx context.Context, token string, entryID int64, req dto.UpdateRosterEntryRequest) error
}

// RosterEditor owns the form state for one team member's configuration:
// nickname, held item, ability, nature and the twelve EV/IV sliders. It is
// constructed fresh per navigation and discarded on exit.
type RosterEditor struct {
	backend EditorBackend
	token   string
	origin  string

	EntryID     int64
	TeamID      int64
	PokemonID   int64
	SpeciesName string
	Image       string

	Draft dto.UpdateRosterEntryRequest

	Items     []models.Item
	Abilities []models.Ability
	Natures   []models.Nature
}

func NewRosterEditor(backend EditorBackend, token, origin string) *RosterEditor {
	return &RosterEditor{
		backend: backend,
		token:   token,
		origin:  origin,
	}
}

// SpriteURL resolves the entry's sprite against the frontend origin.
func (e *RosterEditor) SpriteURL() string {
	if e.Image == "" {
		return ""
	}
	return ResolveImageURL(e.origin, e.Image)
}

// HeldItemIconURL resolves the icon of the item currently selected in the
// draft, or "" when no item is held or the item carries no image.
func (e *RosterEditor) HeldItemIconURL() string {
	if e.Draft.ItemID == nil {
		return ""
	}
	for _, item := range e.Items {
		if item.ID == *e.Draft.ItemID && item.Image != "" {
			return ResolveImageURL(e.origin, item.Image)
		}
	}
	return ""
}

// Load fetches the entry and the three reference lists, one after another.
// Any failure blocks the whole screen; nothing partial is kept. The ability
// list is keyed by the entry's species, which never changes after creation.
func (e *RosterEditor) Load(ctx context.Context, entryID int64) error {
	entry, err := e.backend.GetRosterEntry(ctx, e.token, entryID)
	if err != nil {
		return &LoadError{err: err}
	}

	items, err := e.backend.ListItems(ctx, e.token)
	if err != nil {
		return &LoadError{err: err}
	}

	abilities, err := e.backend.ListAbilities(ctx, e.token, entry.PokemonID)
	if err != nil {
		return &LoadError{err: err}
	}

	natures, err := e.backend.ListNatures(ctx, e.token)
	if err != nil {
		return &LoadError{err: err}
	}

	e.EntryID = entry.ID
	e.TeamID = entry.TeamID
	e.PokemonID = entry.PokemonID
	e.SpeciesName = entry.Name
	e.Image = entry.Image
	e.Draft = draftFromEntry(entry)
	e.Items = items
	e.Abilities = abilities
	e.Natures = natures
	return nil
}

func draftFromEntry(entry *models.TeamRosterEntry) dto.UpdateRosterEntryRequest {
	return dto.UpdateRosterEntryRequest{
		Nickname:  entry.Nickname,
		ItemID:    entry.ItemID,
		AbilityID: entry.AbilityID,
		NatureID:  entry.NatureID,

		EVHP: entry.EVHP, EVAtk: entry.EVAtk, EVDef: entry.EVDef,
		EVSpA: entry.EVSpA, EVSpD: entry.EVSpD, EVSpe: entry.EVSpe,

		IVHP: entry.IVHP, IVAtk: entry.IVAtk, IVDef: entry.IVDef,
		IVSpA: entry.IVSpA, IVSpD: entry.IVSpD, IVSpe: entry.IVSpe,
	}
}

// StatFields lists the slider field names in display order.
var StatFields = []string{
	"evHp", "evAtk", "evDef", "evSpa", "evSpd", "evSpe",
	"ivHp", "ivAtk", "ivDef", "ivSpa", "ivSpd", "ivSpe",
}

// EVFields and IVFields expose the slider columns to the view.
func (e *RosterEditor) EVFields() []string { return StatFields[:6] }
func (e *RosterEditor) IVFields() []string { return StatFields[6:] }

// ApplyForm copies submitted form values into the draft. Identity fields are
// taken verbatim; an empty optional reference becomes an explicit nil (unset),
// never an empty string; sliders are coerced to integers and clamped to the
// control's bounds.
func (e *RosterEditor) ApplyForm(values url.Values) {
	e.Draft.Nickname = values.Get("nickname")

	e.Draft.ItemID = parseOptionalID(values.Get("itemId"))
	e.Draft.AbilityID = parseOptionalID(values.Get("abilityId"))
	e.Draft.NatureID = parseOptionalID(values.Get("natureId"))

	for _, field := range StatFields {
		if !values.Has(field) {
			continue
		}
		e.SetStat(field, values.Get(field))
	}
}

// SetStat coerces one slider value. Unparseable input leaves the previous
// value in place; out-of-range input clamps.
func (e *RosterEditor) SetStat(field, raw string) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return
	}
	value = clampStat(value)

	switch field {
	case "evHp":
		e.Draft.EVHP = value
	case "evAtk":
		e.Draft.EVAtk = value
	case "evDef":
		e.Draft.EVDef = value
	case "evSpa":
		e.Draft.EVSpA = value
	case "evSpd":
		e.Draft.EVSpD = value
	case "evSpe":
		e.Draft.EVSpe = value
	case "ivHp":
		e.Draft.IVHP = value
	case "ivAtk":
		e.Draft.IVAtk = value
	case "ivDef":
		e.Draft.IVDef = value
	case "ivSpa":
		e.Draft.IVSpA = value
	case "ivSpd":
		e.Draft.IVSpD = value
	case "ivSpe":
		e.Draft.IVSpe = value
	}
}

// Stat reads one slider value back out of the draft, for rendering.
func (e *RosterEditor) Stat(field string) int {
	switch field {
	case "evHp":
		return e.Draft.EVHP
	case "evAtk":
		return e.Draft.EVAtk
	case "evDef":
		return e.Draft.EVDef
	case "evSpa":
		return e.Draft.EVSpA
	case "evSpd":
		return e.Draft.EVSpD
	case "evSpe":
		return e.Draft.EVSpe
	case "ivHp":
		return e.Draft.IVHP
	case "ivAtk":
		return e.Draft.IVAtk
	case "ivDef":
		return e.Draft.IVDef
	case "ivSpa":
		return e.Draft.IVSpA
	case "ivSpd":
		return e.Draft.IVSpD
	case "ivSpe":
		return e.Draft.IVSpe
	}
	return 0
}

// Submit sends the full draft as a partial-update request. On failure the
// draft stays populated so the user can retry.
func (e *RosterEditor) Submit(ctx context.Context) error {
	if err := e.backend.UpdateRosterEntry(ctx, e.token, e.EntryID, e.Draft); err != nil {
		return &SubmitError{err: err}
	}
	return nil
}

func clampStat(value int) int {
	if value < StatMin {
		return StatMin
	}
	if value > StatMax {
		return StatMax
	}
	return value
}

func parseOptionalID(raw string) *int64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
