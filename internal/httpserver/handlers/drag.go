package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
)

type dragRequest struct {
	ID string `json:"id"`
}

type dragResponse struct {
	Profile domain.Profile     `json:"profile"`
	Drag    domain.DragSession `json:"drag"`
}

// DragBegin starts dragging the link {id} in session {sid}
func DragBegin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dragRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		drag := d.Editor.DragBegin(chi.URLParam(r, "sid"), req.ID)
		respond.JSON(w, http.StatusOK, dragResponse{Profile: d.Editor.Profile(), Drag: drag})
	}
}

// DragHover moves the dragged link to the position of link {id}
func DragHover(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dragRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		p, drag := d.Editor.DragHover(r.Context(), chi.URLParam(r, "sid"), req.ID)
		respond.JSON(w, http.StatusOK, dragResponse{Profile: p, Drag: drag})
	}
}

// DragEnd finishes the drag, keeping the order reached so far
func DragEnd(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drag := d.Editor.DragEnd(chi.URLParam(r, "sid"))
		respond.JSON(w, http.StatusOK, dragResponse{Profile: d.Editor.Profile(), Drag: drag})
	}
}
