package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/stretchr/testify/require"
)

// FormRequest builds an urlencoded POST the way a browser submits our forms.
func FormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AttachSession signs credentials with the codec and sets the session cookie
// on the request.
func AttachSession(t *testing.T, req *http.Request, codec *session.Codec, token string) {
	t.Helper()
	value, err := codec.Issue(session.Credentials{Token: token})
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})
}
