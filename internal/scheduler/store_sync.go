package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

// ProfileLoader reads the persisted profile
type ProfileLoader interface {
	LoadProfile(ctx context.Context) (domain.Profile, error)
}

// StoreSyncer loads the persisted profile into the memory index on startup
type StoreSyncer struct {
	store  ProfileLoader
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewStoreSyncer creates a new store syncer
func NewStoreSyncer(
	store ProfileLoader,
	idx *index.MemoryIndex,
	log logger.Logger,
) *StoreSyncer {
	return &StoreSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads the profile from the store and updates the memory index.
// Without a stored profile the index keeps the default one.
func (ss *StoreSyncer) Sync(ctx context.Context) error {
	ss.logger.Info("loading profile from store")

	p, err := ss.store.LoadProfile(ctx)
	if errors.Is(err, store.ErrNotFound) {
		ss.logger.Info("no stored profile, starting from defaults")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	ss.index.SetProfile(p)

	ss.logger.Info("loaded profile from store",
		logger.Int("links", len(p.Links)),
		logger.String("theme", string(p.Theme)))

	return nil
}
