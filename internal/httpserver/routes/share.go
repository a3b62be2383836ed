package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
)

func init() {
	RegisterAPI(registerShareAPI)
	Register(registerPublicPages)
}

func registerShareAPI(r chi.Router, d deps.Deps) {
	r.Get("/share", handlers.ShareURL(d))
	r.Get("/share/qr.png", handlers.ShareQR(d))
}

func registerPublicPages(r chi.Router, d deps.Deps) {
	r.Get("/preview", handlers.Preview(d))
	r.Get("/share/{userID}/{code}", handlers.SharedProfile(d))
}
