package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/share"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

type shareResponse struct {
	URL string `json:"url"`
}

// ShareURL returns the public share URL, creating it on first call
func ShareURL(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := d.Share.Resolve(r.Context())
		if err != nil {
			d.Logger.Error("failed to resolve share url", logger.Error(err))
			respond.Error(w, http.StatusInternalServerError, "share url unavailable")
			return
		}
		respond.JSON(w, http.StatusOK, shareResponse{URL: url})
	}
}

// ShareQR renders the share URL as a PNG QR code matching the profile theme
func ShareQR(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := d.Share.Resolve(r.Context())
		if err != nil {
			d.Logger.Error("failed to resolve share url", logger.Error(err))
			respond.Error(w, http.StatusInternalServerError, "share url unavailable")
			return
		}

		p := d.Editor.Profile()
		png, err := share.EncodeQR(url, p.Theme, d.QRSize)
		if err != nil {
			d.Logger.Error("failed to encode qr code", logger.Error(err))
			respond.Error(w, http.StatusInternalServerError, "qr code unavailable")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("inline; filename=%q", share.QRFilename(p.Name)))
		_, _ = w.Write(png)
	}
}

// Preview renders the current profile as the public page would show it
func Preview(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderProfile(w, d, d.Editor.Profile())
	}
}

// SharedProfile serves the read-only page behind the share URL. Any other
// identifier or code is a 404.
func SharedProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := d.Share.Lookup(r.Context())
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			d.Logger.Error("failed to load share url", logger.Error(err))
			respond.Error(w, http.StatusInternalServerError, "share url unavailable")
			return
		}
		if !share.Matches(stored, chi.URLParam(r, "userID"), chi.URLParam(r, "code")) {
			respond.Error(w, http.StatusNotFound, "profile not found")
			return
		}
		renderProfile(w, d, d.Editor.Profile().WithRole(domain.RoleViewer))
	}
}

func renderProfile(w http.ResponseWriter, d deps.Deps, p domain.Profile) {
	var buf bytes.Buffer
	if err := d.Preview.Render(&buf, p); err != nil {
		d.Logger.Error("failed to render preview", logger.Error(err))
		respond.Error(w, http.StatusInternalServerError, "preview unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
