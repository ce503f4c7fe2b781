package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/config"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/handlers"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/logging"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/metrics"
	appmw "github.com/IngFreddyRosales/pokemon-frontend/internal/middleware"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/session"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/view"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.IsProduction())
	recorder := metrics.NewRecorder()

	api := backend.NewClient(backend.Config{
		BaseURL:  cfg.BackendURL,
		Timeout:  cfg.BackendTimeout,
		Observer: recorder,
	})

	codec := session.NewCodec(cfg.SessionSecret, cfg.SessionExpiry, cfg.IsProduction())
	resolver := session.NewResolver(codec, api)

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	authHandler := handlers.NewAuthHandler(api, codec, renderer)
	userDashboard := handlers.NewDashboardHandler(api, renderer, "/userDashboard", "My teams")
	rosterHandler := handlers.NewRosterHandler(api, renderer, cfg.PublicOrigin)
	adminTeams := handlers.NewDashboardHandler(api, renderer, "/admin/teamsManagement", "Teams")

	adminScreens := []*handlers.AdminHandler{
		handlers.NewUserAdmin(api, renderer),
		handlers.NewTypeAdmin(api, renderer),
		handlers.NewMoveAdmin(api, renderer),
		handlers.NewItemAdmin(api, renderer),
		handlers.NewPokemonAdmin(api, renderer),
	}

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(appmw.Logging(logger, recorder))

	app.Get("/healthz", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	metricsHandler := recorder.Handler()
	app.Get("/metrics", func(c *drift.Context) {
		metricsHandler.ServeHTTP(c.Response, c.Request)
	})

	pages := app.Group("")
	pages.Use(appmw.Session(resolver))

	pages.Get("/", func(c *drift.Context) {
		home := "/userDashboard"
		if user := appmw.GetUser(c); user != nil && user.IsAdmin {
			home = "/admin"
		}
		http.Redirect(c.Response, c.Request, home, http.StatusFound)
	})

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
	admin.Use(appmw.AdminGate(codec))

	for _, screen := range adminScreens {
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

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
