// Package editor is the application shell around the pure link list editor.
// It owns the current profile, applies one change at a time, and writes the
// result to the store.
package editor

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

// DefaultSaveTimeout bounds a single store write.
const DefaultSaveTimeout = 5 * time.Second

// ProfileSaver persists the profile after each change.
type ProfileSaver interface {
	SaveProfile(ctx context.Context, p domain.Profile) error
}

// ProfilePatch carries the profile fields to change. Nil fields are left
// alone.
type ProfilePatch struct {
	Name        *string `json:"name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	AccentColor *string `json:"accentColor,omitempty"`
	Theme       *string `json:"theme,omitempty"`
	Role        *string `json:"role,omitempty"`
}

// Service serializes edits to the profile held in the memory index.
type Service struct {
	editor      *domain.Editor
	index       *index.MemoryIndex
	store       ProfileSaver
	logger      logger.Logger
	saveTimeout time.Duration

	mu sync.Mutex
}

// NewService creates a new editor service. A nil store keeps edits in
// memory only.
func NewService(
	ed *domain.Editor,
	idx *index.MemoryIndex,
	store ProfileSaver,
	log logger.Logger,
) *Service {
	return &Service{
		editor:      ed,
		index:       idx,
		store:       store,
		logger:      log.Named("editor"),
		saveTimeout: DefaultSaveTimeout,
	}
}

// Profile returns the current profile
func (s *Service) Profile() domain.Profile {
	return s.index.Profile()
}

// AddLink appends a blank link
func (s *Service) AddLink(ctx context.Context) domain.Profile {
	return s.apply(ctx, "add_link", s.editor.Add)
}

// UpdateLink sets one field of a link. Unknown ids and fields change nothing.
func (s *Service) UpdateLink(ctx context.Context, id, field, value string) domain.Profile {
	f, ok := domain.ParseField(field)
	if !ok {
		return s.Profile()
	}
	return s.apply(ctx, "update_link", func(p domain.Profile) domain.Profile {
		return s.editor.UpdateField(p, id, f, value)
	})
}

// RemoveLink deletes a link
func (s *Service) RemoveLink(ctx context.Context, id string) domain.Profile {
	return s.apply(ctx, "remove_link", func(p domain.Profile) domain.Profile {
		return s.editor.Remove(p, id)
	})
}

// MoveLink moves a link one step up or down
func (s *Service) MoveLink(ctx context.Context, id, direction string) domain.Profile {
	d, ok := domain.ParseDirection(direction)
	if !ok {
		return s.Profile()
	}
	return s.apply(ctx, "move_link", func(p domain.Profile) domain.Profile {
		return s.editor.MoveStep(p, id, d)
	})
}

// ImportLinks appends links whose URL is not already in the profile and
// returns how many were added.
func (s *Service) ImportLinks(ctx context.Context, links []domain.Link) (domain.Profile, int) {
	added := 0
	p := s.apply(ctx, "import_links", func(p domain.Profile) domain.Profile {
		present := make(map[string]bool, len(p.Links))
		for _, l := range p.Links {
			present[l.URL] = true
		}
		fresh := make([]domain.Link, 0, len(links))
		for _, l := range links {
			if l.URL != "" && present[l.URL] {
				continue
			}
			present[l.URL] = true
			fresh = append(fresh, l)
		}
		added = len(fresh)
		return s.editor.Append(p, fresh...)
	})
	return p, added
}

// UpdateProfile applies the non-nil fields of patch
func (s *Service) UpdateProfile(ctx context.Context, patch ProfilePatch) domain.Profile {
	return s.apply(ctx, "update_profile", func(p domain.Profile) domain.Profile {
		if patch.Name != nil {
			p = p.WithName(*patch.Name)
		}
		if patch.Bio != nil {
			p = p.WithBio(*patch.Bio)
		}
		if patch.AccentColor != nil {
			p = p.WithAccentColor(*patch.AccentColor)
		}
		if patch.Theme != nil {
			p = p.WithTheme(domain.Theme(*patch.Theme))
		}
		if patch.Role != nil {
			p = p.WithRole(domain.Role(*patch.Role))
		}
		return p
	})
}

// ToggleTheme flips the theme unless the profile is in viewer mode
func (s *Service) ToggleTheme(ctx context.Context) domain.Profile {
	return s.apply(ctx, "toggle_theme", domain.Profile.ToggleTheme)
}

// ToggleRole flips between admin and viewer
func (s *Service) ToggleRole(ctx context.Context) domain.Profile {
	return s.apply(ctx, "toggle_role", domain.Profile.ToggleRole)
}

// ─────────────────────────────────────────────────────────────────
// Drag sessions
// ─────────────────────────────────────────────────────────────────

// DragBegin starts a drag of link id in an editor session
func (s *Service) DragBegin(sessionID, id string) domain.DragSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	drag := s.editor.DragBegin(id)
	s.index.SetDrag(sessionID, drag)
	return drag
}

// DragHover applies a hover event of the session's drag
func (s *Service) DragHover(ctx context.Context, sessionID, hoverID string) (domain.Profile, domain.DragSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drag := s.index.Drag(sessionID)
	current := s.index.Profile()
	next, drag := s.editor.DragHover(current, drag, hoverID)
	s.index.SetDrag(sessionID, drag)
	s.commit(ctx, "drag_hover", current, next)
	return next, drag
}

// DragEnd finishes the session's drag. The order reached so far is kept.
func (s *Service) DragEnd(sessionID string) domain.DragSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	drag := s.editor.DragEnd(s.index.Drag(sessionID))
	s.index.SetDrag(sessionID, drag)
	return drag
}

// apply runs fn against the current profile and adopts its result
func (s *Service) apply(ctx context.Context, op string, fn func(domain.Profile) domain.Profile) domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.index.Profile()
	next := fn(current)
	s.commit(ctx, op, current, next)
	return next
}

// commit stores next when it differs from current. Must hold s.mu.
func (s *Service) commit(ctx context.Context, op string, current, next domain.Profile) {
	if next.Equal(current) {
		s.logger.Debug("edit left profile unchanged", logger.String("op", op))
		return
	}

	s.index.SetProfile(next)
	if s.store == nil {
		return
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.saveTimeout)
	defer cancel()

	start := time.Now()
	if err := s.store.SaveProfile(saveCtx, next); err != nil {
		// The edit stays applied in memory; the next successful save
		// persists it.
		s.logger.Error("failed to persist profile",
			logger.String("op", op),
			logger.Error(err))
		return
	}
	s.logger.Debug("profile persisted",
		logger.String("op", op),
		logger.Int("links", len(next.Links)),
		logger.Duration("took", time.Since(start)))
}
