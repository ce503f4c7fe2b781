package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/handlers"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/middleware"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/view"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/require"
)

// fakeBackend is an in-memory rendition of the Pokémon API, just enough of it
// to walk the user flows end to end.
type fakeBackend struct {
	user models.User

	teams  map[int64]*models.Team
	roster map[int64]*models.TeamRosterEntry
	nextID int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		user:   models.User{ID: 1, Name: "ash", Email: "ash@example.com"},
		teams:  map[int64]*models.Team{},
		roster: map[int64]*models.TeamRosterEntry{},
		nextID: 100,
	}
}

func (f *fakeBackend) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Name != "ash" || req.Password != "pikapika" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, dto.ErrorResponse{Message: "invalid credentials"})
			return
		}
		writeJSON(w, dto.TokenResponse{Token: "upstream-token"})
	})

	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer upstream-token" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, dto.ErrorResponse{Message: "unauthorized"})
			return
		}
		writeJSON(w, f.user)
	})

	mux.HandleFunc("GET /team/", func(w http.ResponseWriter, r *http.Request) {
		teams := []models.Team{}
		for _, team := range f.teams {
			teams = append(teams, *team)
		}
		writeJSON(w, teams)
	})

	mux.HandleFunc("POST /team/createTeam", func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreateTeamRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		team := &models.Team{ID: f.id(), Name: req.Name}
		f.teams[team.ID] = team
		writeJSON(w, team)
	})

	mux.HandleFunc("GET /pokemon/pokemons", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []models.Pokemon{
			{ID: 25, Name: "Pikachu", Image: "/media/pikachu.png"},
			{ID: 1, Name: "Bulbasaur", Image: "/media/bulbasaur.png"},
		})
	})

	mux.HandleFunc("GET /item/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []models.Item{{ID: 1, Name: "Light Ball", Image: "/media/lightball.png"}})
	})

	mux.HandleFunc("GET /nature/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []models.Nature{{ID: 5, Name: "Timid"}})
	})

	mux.HandleFunc("GET /ability/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []models.Ability{{ID: 3, Name: "Static"}})
	})

	mux.HandleFunc("/teamPokemon/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/teamPokemon/")
		switch {
		case r.Method == http.MethodPost && strings.HasPrefix(path, "createTeamPokemon/"):
			teamID, _ := strconv.ParseInt(strings.TrimPrefix(path, "createTeamPokemon/"), 10, 64)
			var req dto.AddRosterEntryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			entry := &models.TeamRosterEntry{
				ID:        f.id(),
				TeamID:    teamID,
				PokemonID: req.PokemonID,
				Nickname:  req.Nickname,
				Name:      "Pikachu",
				Image:     "/media/pikachu.png",
			}
			f.roster[entry.ID] = entry
			writeJSON(w, entry)

		case r.Method == http.MethodGet && strings.HasPrefix(path, "pokemon/"):
			entryID, _ := strconv.ParseInt(strings.TrimPrefix(path, "pokemon/"), 10, 64)
			entry, ok := f.roster[entryID]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, dto.ErrorResponse{Message: "entry not found"})
				return
			}
			writeJSON(w, entry)

		case r.Method == http.MethodPatch && strings.HasPrefix(path, "updateTeamPokemon/"):
			entryID, _ := strconv.ParseInt(strings.TrimPrefix(path, "updateTeamPokemon/"), 10, 64)
			entry, ok := f.roster[entryID]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, dto.ErrorResponse{Message: "entry not found"})
				return
			}
			var req dto.UpdateRosterEntryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			entry.Nickname = req.Nickname
			entry.ItemID = req.ItemID
			entry.AbilityID = req.AbilityID
			entry.NatureID = req.NatureID
			entry.EVHP, entry.EVAtk, entry.EVDef = req.EVHP, req.EVAtk, req.EVDef
			entry.EVSpA, entry.EVSpD, entry.EVSpe = req.EVSpA, req.EVSpD, req.EVSpe
			entry.IVHP, entry.IVAtk, entry.IVDef = req.IVHP, req.IVAtk, req.IVDef
			entry.IVSpA, entry.IVSpD, entry.IVSpe = req.IVSpA, req.IVSpD, req.IVSpe
			writeJSON(w, entry)

		case r.Method == http.MethodDelete && strings.HasPrefix(path, "deleteTeamPokemon/"):
			entryID, _ := strconv.ParseInt(strings.TrimPrefix(path, "deleteTeamPokemon/"), 10, 64)
			delete(f.roster, entryID)
			w.WriteHeader(http.StatusOK)

		default:
			// List: /teamPokemon/{teamId}
			teamID, err := strconv.ParseInt(path, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			entries := []models.TeamRosterEntry{}
			for _, entry := range f.roster {
				if entry.TeamID == teamID {
					entries = append(entries, *entry)
				}
			}
			writeJSON(w, entries)
		}
	})

	return mux
}

// newFrontend wires the real page stack against the fake backend.
func newFrontend(t *testing.T, fake *fakeBackend) (http.Handler, *httptest.Server) {
	t.Helper()

	upstream := httptest.NewServer(fake.handler(t))
	t.Cleanup(upstream.Close)

	client := backend.NewClient(backend.Config{BaseURL: upstream.URL})
	codec := session.NewCodec("integration-secret", time.Hour, false)
	resolver := session.NewResolver(codec, client)

	renderer, err := view.New()
	require.NoError(t, err)

	authHandler := handlers.NewAuthHandler(client, codec, renderer)
	dashboard := handlers.NewDashboardHandler(client, renderer, "/userDashboard", "My teams")
	roster := handlers.NewRosterHandler(client, renderer, "http://localhost:8080")

	app := drift.New()
	app.SetMode(drift.ReleaseMode)
	app.Use(driftmw.Recovery())

	pages := app.Group("")
	pages.Use(middleware.Session(resolver))

	pages.Get("/login", authHandler.ShowLogin)
	pages.Post("/login", authHandler.Login)
	pages.Post("/logout", authHandler.Logout)

	pages.Get("/userDashboard", dashboard.Show)
	pages.Post("/userDashboard/saveTeam", dashboard.SaveTeam)
	pages.Post("/userDashboard/addPokemon", dashboard.AddPokemon)

	pages.Get("/userDashboard/teamPokemonManagement/:teamId", roster.Show)
	pages.Post("/userDashboard/teamPokemonManagement/:teamId/remove/:entryId", roster.Remove)

	pages.Get("/teamPokemonManagement/modifyPokemon/:entryId", roster.ShowEditor)
	pages.Post("/teamPokemonManagement/modifyPokemon/:entryId", roster.SaveEditor)

	return app, upstream
}
