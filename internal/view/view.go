package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/screens"
)

// Page carries what every screen shares: the signed-in user (nil on the auth
// pages) and an optional blocking error.
type Page struct {
	Title string
	User  *models.User
	Error string
}

type LoginData struct {
	Page
	Name string
}

type RegisterData struct {
	Page
	Name  string
	Email string
}

// DashboardData renders the user home: teams, the team form and the
// add-Pokémon type-ahead state.
type DashboardData struct {
	Page
	Dashboard *screens.TeamDashboard

	SelectedTeam *models.Team

	Query       string
	Suggestions []models.Pokemon
	ChosenName  string
	Nickname    string
	FormError   string

	// BasePath distinguishes the user dashboard from the admin teams screen,
	// which share this template.
	BasePath string
}

type RosterData struct {
	Page
	Browser   *screens.RosterBrowser
	FormError string

	// Path is the roster page's own URL; the remove forms post beneath it, so
	// the screen works under both the user and the admin mounts.
	Path string
}

type EditorData struct {
	Page
	Editor    *screens.RosterEditor
	FormError string
	BackURL   string
}

// Option is one choice in a select field.
type Option struct {
	Value string
	Label string
}

// Field describes one form input of a reference-data screen; the admin
// template renders the whole form from the field list.
type Field struct {
	Name    string
	Label   string
	Type    string // text, number, password, checkbox, select, multiselect, file, textarea
	Options []Option
}

type AdminData struct {
	Page
	Entity    string
	BasePath  string
	Fields    []Field
	Records   []screens.Record
	FormError string

	// The user screen manages accounts that register themselves; it can only
	// list and update, so its create form and delete buttons are hidden.
	CanCreate bool
	CanDelete bool

	// Editing is the record selected for edit, or nil when the form creates.
	Editing screens.Record
}

// Renderer holds the parsed template set.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	root := template.New("").Funcs(template.FuncMap{
		"statLabel": statLabel,
		"optID":     optID,
		"cell":      cell,
		"hasOpt":    hasOpt,
	})

	for name, text := range pageTemplates {
		if _, err := root.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return &Renderer{templates: root}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// statLabel turns a slider field name into its display label: evHp -> HP.
func statLabel(field string) string {
	label := strings.TrimPrefix(strings.TrimPrefix(field, "ev"), "iv")
	return strings.ToUpper(label[:1]) + label[1:]
}

// optID renders an optional reference for a select's value attribute: the id
// as text, or "" when unset.
func optID(id *int64) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("%d", *id)
}

// hasOpt reports whether an option value is selected in a record field; it
// covers both single references and move multi-selects.
func hasOpt(record screens.Record, fieldName, option string) bool {
	value, ok := record[fieldName]
	if !ok || value == nil {
		return false
	}
	switch v := value.(type) {
	case string:
		return v == option
	case bool:
		return v && (option == "true" || option == "yes")
	case *int64:
		return optID(v) == option
	case int64:
		return fmt.Sprintf("%d", v) == option
	case []int64:
		for _, id := range v {
			if fmt.Sprintf("%d", id) == option {
				return true
			}
		}
	case []string:
		for _, s := range v {
			if s == option {
				return true
			}
		}
	}
	return false
}

// cell renders one record field for the admin table.
func cell(record screens.Record, field Field) string {
	value, ok := record[field.Name]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case *int64:
		return optID(v)
	default:
		return fmt.Sprint(v)
	}
}
