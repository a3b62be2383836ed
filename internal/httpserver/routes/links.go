package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerLinks) }

func registerLinks(r chi.Router, d deps.Deps) {
	r.Post("/links", handlers.AddLink(d))
	r.Post("/links/import", handlers.ImportLinks(d))
	r.Post("/links/seed/reload", handlers.SeedReload(d))
	r.Patch("/links/{id}", handlers.UpdateLink(d))
	r.Delete("/links/{id}", handlers.RemoveLink(d))
	r.Post("/links/{id}/move", handlers.MoveLink(d))
}
