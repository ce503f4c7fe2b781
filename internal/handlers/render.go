package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/logging"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/view"
	"github.com/m1z23r/drift/pkg/drift"
)

func render(c *drift.Context, renderer *view.Renderer, status int, name string, data any) {
	c.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Response.WriteHeader(status)
	if err := renderer.Render(c.Response, name, data); err != nil {
		logging.FromContext(c.Request.Context()).Error("failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
	}
}

func redirect(c *drift.Context, url string) {
	http.Redirect(c.Response, c.Request, url, http.StatusFound)
}

func paramID(c *drift.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
