package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
	"github.com/IngFreddyRosales/pokemon-frontend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func dashboardMocks(mockBackend *testutil.MockBackend, candidates []models.Pokemon) {
	mockBackend.On("ListTeams", mock.Anything, testToken).Return([]models.Team{testutil.TestTeam()}, nil)
	mockBackend.On("ListPokemonForAssembly", mock.Anything, testToken).Return(candidates, nil)
}

func getWithSession(t *testing.T, app http.Handler, codec *session.Codec, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	testutil.AttachSession(t, req, codec, testToken)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func postWithSession(t *testing.T, app http.Handler, codec *session.Codec, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.FormRequest(path, form)
	testutil.AttachSession(t, req, codec, testToken)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestDashboard_Show(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	dashboardMocks(mockBackend, []models.Pokemon{testutil.TestPokemon()})
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	rec := getWithSession(t, app, codec, "/userDashboard")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kanto Starters")
}

func TestDashboard_TypeaheadSuggestions(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	dashboardMocks(mockBackend, []models.Pokemon{
		{ID: 25, Name: "Pikachu"},
		{ID: 1, Name: "Bulbasaur"},
	})
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	rec := getWithSession(t, app, codec, "/userDashboard?q=chu")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "?pokemon=Pikachu")
	assert.NotContains(t, rec.Body.String(), "?pokemon=Bulbasaur")
}

func TestDashboard_AddPokemon_Success(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	dashboardMocks(mockBackend, []models.Pokemon{testutil.TestPokemon()})
	mockBackend.On("AddRosterEntry", mock.Anything, testToken, int64(7),
		dto.AddRosterEntryRequest{PokemonID: 25, Nickname: "Sparky"}).
		Return(testutil.TestRosterEntry(), nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	form := url.Values{}
	form.Set("pokemon", "Pikachu")
	form.Set("teamId", "7")
	form.Set("nickname", "Sparky")
	rec := postWithSession(t, app, codec, "/userDashboard/addPokemon", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userDashboard/teamPokemonManagement/7", rec.Header().Get("Location"))
	mockBackend.AssertExpectations(t)
}

func TestDashboard_AddPokemon_MissingNickname(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	dashboardMocks(mockBackend, []models.Pokemon{testutil.TestPokemon()})
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	form := url.Values{}
	form.Set("pokemon", "Pikachu")
	form.Set("teamId", "7")
	form.Set("nickname", "")
	rec := postWithSession(t, app, codec, "/userDashboard/addPokemon", form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nickname is required")
	mockBackend.AssertNotCalled(t, "AddRosterEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboard_AddPokemon_FreeTextName(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	dashboardMocks(mockBackend, []models.Pokemon{testutil.TestPokemon()})
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	form := url.Values{}
	form.Set("pokemon", "Pikachuu")
	form.Set("teamId", "7")
	form.Set("nickname", "Sparky")
	rec := postWithSession(t, app, codec, "/userDashboard/addPokemon", form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "select a valid Pok")
	mockBackend.AssertNotCalled(t, "AddRosterEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminTeams_AddPokemon_RedirectsWithinAdmin(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	dashboardMocks(mockBackend, []models.Pokemon{testutil.TestPokemon()})
	mockBackend.On("AddRosterEntry", mock.Anything, testToken, int64(7),
		dto.AddRosterEntryRequest{PokemonID: 25, Nickname: "Sparky"}).
		Return(testutil.TestRosterEntry(), nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	form := url.Values{}
	form.Set("pokemon", "Pikachu")
	form.Set("teamId", "7")
	form.Set("nickname", "Sparky")
	rec := postWithSession(t, app, codec, "/admin/teamsManagement/addPokemon", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/teamsManagement/teamPokemonManagement/7", rec.Header().Get("Location"))
}

func TestDashboard_SaveTeam_BackendMessageShown(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	dashboardMocks(mockBackend, []models.Pokemon{testutil.TestPokemon()})
	mockBackend.On("CreateTeam", mock.Anything, testToken, dto.CreateTeamRequest{Name: "Johto"}).
		Return(nil, &backend.APIError{StatusCode: 500, Message: "team limit reached"})
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	form := url.Values{}
	form.Set("name", "Johto")
	rec := postWithSession(t, app, codec, "/userDashboard/saveTeam", form)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The backend's own message shows, without the status decoration.
	assert.Contains(t, rec.Body.String(), "team limit reached")
	assert.NotContains(t, rec.Body.String(), "status=500")
}

func TestDashboard_SaveTeam_Create(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	team := models.Team{ID: 9, Name: "Johto"}
	mockBackend.On("CreateTeam", mock.Anything, testToken, dto.CreateTeamRequest{Name: "Johto"}).
		Return(&team, nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	form := url.Values{}
	form.Set("name", "Johto")
	rec := postWithSession(t, app, codec, "/userDashboard/saveTeam", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userDashboard", rec.Header().Get("Location"))
	mockBackend.AssertExpectations(t)
}

func TestDashboard_SaveTeam_Rename(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("UpdateTeam", mock.Anything, testToken, int64(7), dto.UpdateTeamRequest{Name: "Johto"}).
		Return(nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	form := url.Values{}
	form.Set("teamId", "7")
	form.Set("name", "Johto")
	rec := postWithSession(t, app, codec, "/userDashboard/saveTeam", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	mockBackend.AssertExpectations(t)
}

func TestDashboard_DeleteTeam(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("DeleteTeam", mock.Anything, testToken, int64(7)).Return(nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	rec := postWithSession(t, app, codec, "/userDashboard/deleteTeam/7", url.Values{})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userDashboard", rec.Header().Get("Location"))
	mockBackend.AssertExpectations(t)
}
