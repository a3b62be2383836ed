package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerProfile) }

func registerProfile(r chi.Router, d deps.Deps) {
	r.Get("/profile", handlers.GetProfile(d))
	r.Patch("/profile", handlers.PatchProfile(d))
	r.Post("/profile/theme/toggle", handlers.ToggleTheme(d))
	r.Post("/profile/role/toggle", handlers.ToggleRole(d))
}
