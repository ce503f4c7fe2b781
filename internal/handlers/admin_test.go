package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserAdmin_Show_ListsWithoutCreateForm(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("ListUsers", mock.Anything, testToken).
		Return([]models.User{*testutil.TestUser(), *testutil.TestAdmin()}, nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	rec := getWithSession(t, app, codec, "/admin")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ash@example.com")
	assert.NotContains(t, rec.Body.String(), "New user")
	assert.NotContains(t, rec.Body.String(), "/admin/delete/")
}

func TestUserAdmin_Update_SendsDiffOnly(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("ListUsers", mock.Anything, testToken).
		Return([]models.User{*testutil.TestUser()}, nil)
	mockBackend.On("UpdateUser", mock.Anything, testToken, int64(1),
		map[string]any{"is_admin": true}).Return(nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	form := url.Values{}
	form.Set("name", "ash")
	form.Set("email", "ash@example.com")
	form.Set("is_admin", "true")
	rec := postWithSession(t, app, codec, "/admin/update/1", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	mockBackend.AssertExpectations(t)
}

func TestUserAdmin_Update_NoChanges(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("ListUsers", mock.Anything, testToken).
		Return([]models.User{*testutil.TestUser()}, nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	form := url.Values{}
	form.Set("name", "ash")
	form.Set("email", "ash@example.com")
	rec := postWithSession(t, app, codec, "/admin/update/1", form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "no changes to save")
	mockBackend.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTypeAdmin_CreateAndDelete(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("ListTypes", mock.Anything, testToken).
		Return([]models.PokemonType{{ID: 1, Name: "Fire"}}, nil)
	created := models.PokemonType{ID: 2, Name: "Fairy"}
	mockBackend.On("CreateType", mock.Anything, testToken, mock.Anything).Return(&created, nil)
	mockBackend.On("DeleteType", mock.Anything, testToken, int64(1)).Return(nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	form := url.Values{}
	form.Set("name", "Fairy")
	rec := postWithSession(t, app, codec, "/admin/typeManagement/create", form)
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = postWithSession(t, app, codec, "/admin/typeManagement/delete/1", url.Values{})
	assert.Equal(t, http.StatusFound, rec.Code)
	mockBackend.AssertExpectations(t)
}

func TestMoveAdmin_Update_SendsDiff(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	typeID := int64(1)
	mockBackend.On("ListTypes", mock.Anything, testToken).
		Return([]models.PokemonType{{ID: 1, Name: "Normal"}}, nil)
	mockBackend.On("ListMoves", mock.Anything, testToken).
		Return([]models.Move{{
			ID: 3, Name: "Tackle", TypeID: &typeID,
			Category: models.CategoryPhysical, Power: 40, Description: "A basic hit",
		}}, nil)
	mockBackend.On("UpdateMove", mock.Anything, testToken, int64(3),
		map[string]any{"power": int64(50)}).Return(nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	form := url.Values{}
	form.Set("name", "Tackle")
	form.Set("typeId", "1")
	form.Set("category", "physical")
	form.Set("power", "50")
	form.Set("description", "A basic hit")
	rec := postWithSession(t, app, codec, "/admin/moveManagement/update/3", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	mockBackend.AssertExpectations(t)
}

func TestItemAdmin_Create_FullForm(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("ListItems", mock.Anything, testToken).Return([]models.Item{}, nil)
	created := models.Item{ID: 4, Name: "Potion"}
	mockBackend.On("CreateItem", mock.Anything, testToken,
		mock.MatchedBy(func(form backend.ItemForm) bool {
			return form.Name == "Potion" && form.Description == "Heals 20 HP" && form.Image == nil
		})).Return(&created, nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	form := url.Values{}
	form.Set("name", "Potion")
	form.Set("description", "Heals 20 HP")
	rec := postWithSession(t, app, codec, "/admin/itemManagement/create", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	mockBackend.AssertExpectations(t)
}

func TestItemAdmin_Update_ResendsWholeForm(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("ListItems", mock.Anything, testToken).
		Return([]models.Item{{ID: 4, Name: "Potion", Description: "Heals 20 HP"}}, nil)
	mockBackend.On("UpdateItem", mock.Anything, testToken, int64(4),
		mock.MatchedBy(func(form backend.ItemForm) bool {
			// Unchanged fields still travel on a full update.
			return form.Name == "Potion" && form.Description == "Heals 20 HP"
		})).Return(nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	form := url.Values{}
	form.Set("name", "Potion")
	form.Set("description", "Heals 20 HP")
	rec := postWithSession(t, app, codec, "/admin/itemManagement/update/4", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	mockBackend.AssertExpectations(t)
}

func TestPokemonAdmin_Create_ParsesTypesStatsAndMoves(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	mockBackend.On("ListPokemon", mock.Anything, testToken).Return([]models.Pokemon{}, nil)
	mockBackend.On("ListTypes", mock.Anything, testToken).
		Return([]models.PokemonType{{ID: 13, Name: "Electric"}}, nil)
	mockBackend.On("ListMoves", mock.Anything, testToken).
		Return([]models.Move{{ID: 1, Name: "Thunder Shock"}, {ID: 2, Name: "Quick Attack"}}, nil)
	created := testutil.TestPokemon()
	mockBackend.On("CreatePokemon", mock.Anything, testToken,
		mock.MatchedBy(func(form backend.PokemonForm) bool {
			return form.Name == "Pikachu" &&
				form.Type1ID != nil && *form.Type1ID == 13 &&
				form.Type2ID == nil &&
				form.Speed == 90 &&
				len(form.MoveIDs) == 2
		})).Return(&created, nil)
	app, codec := newTestApp(t, mockBackend, testutil.TestAdmin())

	form := url.Values{}
	form.Set("name", "Pikachu")
	form.Set("type1Id", "13")
	form.Set("type2Id", "")
	form.Set("hp", "35")
	form.Set("atk", "55")
	form.Set("def", "40")
	form.Set("spAtk", "50")
	form.Set("spDef", "50")
	form.Set("speed", "90")
	form["moves"] = []string{"1", "2"}
	rec := postWithSession(t, app, codec, "/admin/pokemonManagement/create", form)

	assert.Equal(t, http.StatusFound, rec.Code)
	mockBackend.AssertExpectations(t)
}

func TestAdmin_NonAdminIsEvicted(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	rec := getWithSession(t, app, codec, "/admin/typeManagement")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	mockBackend.AssertNotCalled(t, "ListTypes", mock.Anything, mock.Anything)
}
