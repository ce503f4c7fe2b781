package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/middleware"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/view"
	"github.com/IngFreddyRosales/pokemon-frontend/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "backend-token"

// newTestApp wires the page routes the way main does, against a mock backend.
// When user is non-nil the mock resolves testToken to that user.
func newTestApp(t *testing.T, mockBackend *testutil.MockBackend, user *models.User) (http.Handler, *session.Codec) {
	t.Helper()

	if user != nil {
		mockBackend.On("Me", mock.Anything, testToken).Return(user, nil)
	}

	codec := session.NewCodec("test-secret", time.Hour, false)
	resolver := session.NewResolver(codec, mockBackend)

	renderer, err := view.New()
	require.NoError(t, err)

	authHandler := NewAuthHandler(mockBackend, codec, renderer)
	userDashboard := NewDashboardHandler(mockBackend, renderer, "/userDashboard", "My teams")
	rosterHandler := NewRosterHandler(mockBackend, renderer, "http://localhost:8080")
	adminTeams := NewDashboardHandler(mockBackend, renderer, "/admin/teamsManagement", "Teams")

	app := drift.New()
	app.SetMode(drift.ReleaseMode)
	app.Use(driftmw.Recovery())

	pages := app.Group("")
	pages.Use(middleware.Session(resolver))

	pages.Get("/login", authHandler.ShowLogin)
	pages.Post("/login", authHandler.Login)
	pages.Get("/register", authHandler.ShowRegister)
	pages.Post("/register", authHandler.Register)
	pages.Post("/logout", authHandler.Logout)

	pages.Get("/userDashboard", userDashboard.Show)
	pages.Post("/userDashboard/saveTeam", userDashboard.SaveTeam)
	pages.Post("/userDashboard/deleteTeam/:teamId", userDashboard.DeleteTeam)
	pages.Post("/userDashboard/addPokemon", userDashboard.AddPokemon)

	pages.Get("/userDashboard/teamPokemonManagement/:teamId", rosterHandler.Show)
	pages.Post("/userDashboard/teamPokemonManagement/:teamId/remove/:entryId", rosterHandler.Remove)

	pages.Get("/teamPokemonManagement/modifyPokemon/:entryId", rosterHandler.ShowEditor)
	pages.Post("/teamPokemonManagement/modifyPokemon/:entryId", rosterHandler.SaveEditor)

	admin := pages.Group("")
	admin.Use(middleware.AdminGate(codec))

	for _, screen := range []*AdminHandler{
		NewUserAdmin(mockBackend, renderer),
		NewTypeAdmin(mockBackend, renderer),
		NewMoveAdmin(mockBackend, renderer),
		NewItemAdmin(mockBackend, renderer),
		NewPokemonAdmin(mockBackend, renderer),
	} {
		base := screen.BasePath()
		admin.Get(base, screen.Show)
		if screen.CanCreate() {
			admin.Post(base+"/create", screen.Create)
		}
		admin.Post(base+"/update/:id", screen.Update)
		if screen.CanDelete() {
			admin.Post(base+"/delete/:id", screen.Delete)
		}
	}

	admin.Get("/admin/teamsManagement", adminTeams.Show)
	admin.Post("/admin/teamsManagement/saveTeam", adminTeams.SaveTeam)
	admin.Post("/admin/teamsManagement/deleteTeam/:teamId", adminTeams.DeleteTeam)
	admin.Post("/admin/teamsManagement/addPokemon", adminTeams.AddPokemon)
	admin.Get("/admin/teamsManagement/teamPokemonManagement/:teamId", rosterHandler.Show)
	admin.Post("/admin/teamsManagement/teamPokemonManagement/:teamId/remove/:entryId", rosterHandler.Remove)

	return app, codec
}
