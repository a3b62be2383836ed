package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerDrag) }

func registerDrag(r chi.Router, d deps.Deps) {
	r.Route("/sessions/{sid}/drag", func(r chi.Router) {
		r.Post("/begin", handlers.DragBegin(d))
		r.Post("/hover", handlers.DragHover(d))
		r.Post("/end", handlers.DragEnd(d))
	})
}
