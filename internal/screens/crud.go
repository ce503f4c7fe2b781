package screens

import (
	"context"
	"reflect"
)

// Record is one row of a reference-data screen, flattened to named fields the
// way the entity's form lays them out.
type Record map[string]any

// ID returns the record's id field, or 0 when absent.
func (r Record) ID() int64 {
	switch id := r["id"].(type) {
	case int64:
		return id
	case int:
		return int64(id)
	}
	return 0
}

// EntityEndpoints binds one reference-data screen to its backend endpoint
// set. The closures carry the session token.
type EntityEndpoints struct {
	List   func(ctx context.Context) ([]Record, error)
	Create func(ctx context.Context, form Record) error
	Update func(ctx context.Context, id int64, fields Record) error
	Delete func(ctx context.Context, id int64) error
}

// CRUDConfig parameterizes the one generic screen the five reference-data
// entities share.
type CRUDConfig struct {
	Entity string

	// FullUpdate resends the entire form on edit instead of a field diff.
	// The item and Pokémon screens need it so a re-uploaded image travels
	// with the update; the others send only what changed.
	FullUpdate bool
}

// CRUDScreen is the uniform list+modal-form pattern behind every
// reference-data screen.
type CRUDScreen struct {
	cfg       CRUDConfig
	endpoints EntityEndpoints

	Records []Record
}

func NewCRUDScreen(cfg CRUDConfig, endpoints EntityEndpoints) *CRUDScreen {
	return &CRUDScreen{
		cfg:       cfg,
		endpoints: endpoints,
	}
}

func (s *CRUDScreen) Config() CRUDConfig {
	return s.cfg
}

func (s *CRUDScreen) Load(ctx context.Context) error {
	records, err := s.endpoints.List(ctx)
	if err != nil {
		return &LoadError{err: err}
	}
	s.Records = records
	return nil
}

// Create appends the new record to local state and then re-fetches the full
// list, mirroring the modal's optimistic append.
func (s *CRUDScreen) Create(ctx context.Context, form Record) error {
	if err := s.endpoints.Create(ctx, form); err != nil {
		return &SubmitError{err: err}
	}
	s.Records = append(s.Records, form)
	return s.Load(ctx)
}

// Update sends a diff against the selected record, or the whole form when the
// entity is configured for full updates. A form identical to the record is
// rejected locally; no network call is made.
func (s *CRUDScreen) Update(ctx context.Context, selected, form Record) error {
	payload := form
	if !s.cfg.FullUpdate {
		payload = Diff(selected, form)
		if len(payload) == 0 {
			return &ValidationError{Message: "no changes to save"}
		}
	}

	if err := s.endpoints.Update(ctx, selected.ID(), payload); err != nil {
		return &SubmitError{err: err}
	}
	return s.Load(ctx)
}

// Delete removes the record server-side and drops it from local state without
// a re-fetch.
func (s *CRUDScreen) Delete(ctx context.Context, id int64) error {
	if err := s.endpoints.Delete(ctx, id); err != nil {
		return &SubmitError{err: err}
	}

	kept := s.Records[:0]
	for _, record := range s.Records {
		if record.ID() != id {
			kept = append(kept, record)
		}
	}
	s.Records = kept
	return nil
}

// Diff returns the form fields whose values differ from the selected record.
// Fields the form never set are not part of the diff.
func Diff(selected, form Record) Record {
	diff := Record{}
	for field, value := range form {
		if field == "id" {
			continue
		}
		if current, ok := selected[field]; ok && reflect.DeepEqual(current, value) {
			continue
		}
		diff[field] = value
	}
	return diff
}
