package middleware

import (
	"net/http"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/m1z23r/drift/pkg/drift"
)

// AdminGate protects the reference-data screens. Anyone who is not a signed-in
// admin has their credential cleared and lands on /login before any admin data
// is fetched. This is a navigation convenience, not a security boundary; the
// backend authorizes admin endpoints on its own.
func AdminGate(codec *session.Codec) drift.HandlerFunc {
	return func(c *drift.Context) {
		user := GetUser(c)
		if user == nil || !user.IsAdmin {
			codec.Clear(c.Response)
			http.Redirect(c.Response, c.Request, "/login", http.StatusFound)
			return
		}
		c.Next()
	}
}
