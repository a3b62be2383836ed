package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	Driver      string `json:"driver,omitempty"`
	Links       *int   `json:"links,omitempty"`
	LastSync    string `json:"last_sync,omitempty"`
	Sessions    *int   `json:"sessions,omitempty"`
	ActiveDrags *int   `json:"active_drags,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links := d.MemoryIndex.LinkCount()
		sessions := d.MemoryIndex.SessionCount()
		drags := d.MemoryIndex.ActiveDragCount()

		lastSync := "never"
		if t := d.MemoryIndex.GetLastSync(); !t.IsZero() {
			lastSync = t.Format(time.DateTime)
		}

		components := map[string]componentStatus{
			"store": checkStore(r, d),
			"profile": {
				OK:       true,
				Links:    &links,
				LastSync: lastSync,
			},
			"sessions": {
				OK:          true,
				Sessions:    &sessions,
				ActiveDrags: &drags,
			},
			"share": checkShare(r, d),
		}

		respond.JSON(w, http.StatusOK, infraResponse{
			Status:     determineStatus(components),
			Components: components,
		})
	}
}

func determineStatus(components map[string]componentStatus) string {
	// Store down = edits live in memory only until it comes back
	if s, exists := components["store"]; exists && !s.OK {
		return "degraded"
	}
	return "ok"
}

func checkStore(r *http.Request, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{
			OK:     true,
			Mode:   "memory",
			Impact: "edits-lost-on-restart",
		}
	}
	if err := pingStore(r.Context(), d); err != nil {
		return componentStatus{
			OK:     false,
			Driver: d.StoreDriver,
			Mode:   "degraded",
			Impact: "edits-not-persisted",
			Error:  "unreachable",
		}
	}
	return componentStatus{OK: true, Driver: d.StoreDriver, Mode: "persistent"}
}

func checkShare(r *http.Request, d deps.Deps) componentStatus {
	if d.Share == nil {
		return componentStatus{OK: false, Error: "share resolver not configured"}
	}
	if url, err := d.Share.Lookup(r.Context()); err != nil || url == "" {
		return componentStatus{OK: true, Mode: "not-generated"}
	}
	return componentStatus{OK: true, Mode: "generated"}
}
