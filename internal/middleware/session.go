package middleware

import (
	"net/http"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	UserKey  = "current_user"
	TokenKey = "session_token"
)

func isAuthPage(path string) bool {
	return path == "/login" || path == "/register"
}

// Session resolves the current user once per navigation and applies the
// redirect rules: no user off the auth pages goes to /login, a signed-in user
// on an auth page goes to their home. Resolution failures count as "no user".
func Session(resolver *session.Resolver) drift.HandlerFunc {
	return func(c *drift.Context) {
		user, token := resolver.CurrentUser(c.Request.Context(), c.Request)
		authPage := isAuthPage(c.Request.URL.Path)

		if user == nil {
			if !authPage {
				http.Redirect(c.Response, c.Request, "/login", http.StatusFound)
				return
			}
			c.Next()
			return
		}

		if authPage {
			http.Redirect(c.Response, c.Request, homeFor(user), http.StatusFound)
			return
		}

		c.Set(UserKey, user)
		c.Set(TokenKey, token)
		c.Next()
	}
}

func homeFor(user *models.User) string {
	if user.IsAdmin {
		return "/admin"
	}
	return "/userDashboard"
}

// GetUser returns the resolved user for this request, or nil.
func GetUser(c *drift.Context) *models.User {
	if v, ok := c.Get(UserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// GetToken returns the backend bearer token for this request's session.
func GetToken(c *drift.Context) string {
	if v, ok := c.Get(TokenKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
