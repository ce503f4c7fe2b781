package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
	"github.com/IngFreddyRosales/pokemon-frontend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	app, _ := newTestApp(t, mockBackend, nil)

	mockBackend.On("Login", mock.Anything, dto.LoginRequest{Name: "ash", Password: "pikapika"}).
		Return(&dto.TokenResponse{Token: testToken}, nil)

	form := url.Values{}
	form.Set("name", "ash")
	form.Set("password", "pikapika")

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, testutil.FormRequest("/login", form))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)

	mockBackend.AssertExpectations(t)
}

func TestLogin_BadCredentials(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	app, _ := newTestApp(t, mockBackend, nil)

	mockBackend.On("Login", mock.Anything, mock.Anything).
		Return(nil, &backend.APIError{StatusCode: 401, Message: "invalid credentials"})

	form := url.Values{}
	form.Set("name", "ash")
	form.Set("password", "wrong")

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, testutil.FormRequest("/login", form))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
	// The typed name is kept so the user only re-enters the password.
	assert.Contains(t, rec.Body.String(), `value="ash"`)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRegister_Success(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	app, _ := newTestApp(t, mockBackend, nil)

	mockBackend.On("Register", mock.Anything, dto.RegisterRequest{
		Name:     "misty",
		Email:    "misty@example.com",
		Password: "starmie",
	}).Return(nil)

	form := url.Values{}
	form.Set("name", "misty")
	form.Set("email", "misty@example.com")
	form.Set("password", "starmie")

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, testutil.FormRequest("/register", form))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	mockBackend.AssertExpectations(t)
}

func TestLogout_ClearsSession(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	req := testutil.FormRequest("/logout", url.Values{})
	testutil.AttachSession(t, req, codec, testToken)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestLogin_SignedInUserIsBouncedHome(t *testing.T) {
	mockBackend := new(testutil.MockBackend)
	app, codec := newTestApp(t, mockBackend, testutil.TestUser())

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	testutil.AttachSession(t, req, codec, testToken)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userDashboard", rec.Header().Get("Location"))
}
