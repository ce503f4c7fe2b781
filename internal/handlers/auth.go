package handlers

import (
	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/view"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AuthHandler struct {
	backend  BackendInterface
	codec    *session.Codec
	renderer *view.Renderer
}

func NewAuthHandler(backend BackendInterface, codec *session.Codec, renderer *view.Renderer) *AuthHandler {
	return &AuthHandler{
		backend:  backend,
		codec:    codec,
		renderer: renderer,
	}
}

func (h *AuthHandler) ShowLogin(c *drift.Context) {
	render(c, h.renderer, 200, "login", view.LoginData{
		Page: view.Page{Title: "Sign in"},
	})
}

// Login exchanges name/password for a backend token and wraps it in the
// session cookie. The follow-up redirect lands on /login again, where the
// session middleware routes the now signed-in user to their home.
func (h *AuthHandler) Login(c *drift.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.BadRequest("invalid form")
		return
	}

	req := dto.LoginRequest{
		Name:     c.Request.PostFormValue("name"),
		Password: c.Request.PostFormValue("password"),
	}

	resp, err := h.backend.Login(c.Request.Context(), req)
	if err != nil {
		render(c, h.renderer, 200, "login", view.LoginData{
			Page: view.Page{Title: "Sign in", Error: backend.Message(err)},
			Name: req.Name,
		})
		return
	}

	creds := session.Credentials{
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
	}
	if err := h.codec.Set(c.Response, creds); err != nil {
		c.InternalServerError("failed to establish session")
		return
	}

	redirect(c, "/login")
}

func (h *AuthHandler) ShowRegister(c *drift.Context) {
	render(c, h.renderer, 200, "register", view.RegisterData{
		Page: view.Page{Title: "Register"},
	})
}

func (h *AuthHandler) Register(c *drift.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.BadRequest("invalid form")
		return
	}

	req := dto.RegisterRequest{
		Name:     c.Request.PostFormValue("name"),
		Email:    c.Request.PostFormValue("email"),
		Password: c.Request.PostFormValue("password"),
	}

	if err := h.backend.Register(c.Request.Context(), req); err != nil {
		render(c, h.renderer, 200, "register", view.RegisterData{
			Page:  view.Page{Title: "Register", Error: backend.Message(err)},
			Name:  req.Name,
			Email: req.Email,
		})
		return
	}

	redirect(c, "/login")
}

// Logout clears the one durable piece of client state.
func (h *AuthHandler) Logout(c *drift.Context) {
	h.codec.Clear(c.Response)
	redirect(c, "/login")
}
