package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/editor"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
)

// GetProfile returns the current profile
func GetProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, d.Editor.Profile())
	}
}

// PatchProfile updates the name, bio, accent color, theme or role
func PatchProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch editor.ProfilePatch
		if err := decodeJSON(w, r, &patch); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		respond.JSON(w, http.StatusOK, d.Editor.UpdateProfile(r.Context(), patch))
	}
}

func ToggleTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, d.Editor.ToggleTheme(r.Context()))
	}
}

func ToggleRole(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, d.Editor.ToggleRole(r.Context()))
	}
}
