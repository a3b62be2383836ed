package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/sources/homepage"
)

type updateLinkRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type moveLinkRequest struct {
	Direction string `json:"direction"`
}

type importResponse struct {
	Added   int            `json:"added"`
	Profile domain.Profile `json:"profile"`
}

// AddLink appends a blank link
func AddLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusCreated, d.Editor.AddLink(r.Context()))
	}
}

// UpdateLink sets one field of a link. Unknown links and fields are no-ops.
func UpdateLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateLinkRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		p := d.Editor.UpdateLink(r.Context(), chi.URLParam(r, "id"), req.Field, req.Value)
		respond.JSON(w, http.StatusOK, p)
	}
}

func RemoveLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, d.Editor.RemoveLink(r.Context(), chi.URLParam(r, "id")))
	}
}

// MoveLink moves a link one step "up" or "down"
func MoveLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moveLinkRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		p := d.Editor.MoveLink(r.Context(), chi.URLParam(r, "id"), req.Direction)
		respond.JSON(w, http.StatusOK, p)
	}
}

// ImportLinks appends the entries of a Homepage bookmarks.yaml or
// services.yaml body. URLs already in the profile are skipped.
func ImportLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "failed to read body")
			return
		}

		entries, err := homepage.Parse(data)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		links, err := homepage.NewMapper().MapLinks(entries)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		p, added := d.Editor.ImportLinks(r.Context(), links)
		d.Logger.Info("imported links",
			logger.Int("entries", len(entries)),
			logger.Int("added", added))

		status := http.StatusCreated
		if added == 0 {
			status = http.StatusOK
		}
		respond.JSON(w, status, importResponse{Added: added, Profile: p})
	}
}

// SeedReload triggers a manual re-import of the seed file
func SeedReload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.SeedReloadTrigger == nil {
			respond.Error(w, http.StatusNotFound, "no seed file configured")
			return
		}

		select {
		case d.SeedReloadTrigger <- struct{}{}:
			d.Logger.Info("manual seed reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			respond.JSON(w, http.StatusAccepted, map[string]string{"status": "reload triggered"})
		default:
			d.Logger.Warn("seed reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			respond.Error(w, http.StatusTooManyRequests, "reload already in progress, please wait")
		}
	}
}
