package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/editor"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/sources/homepage"
)

// SeedReloader imports links from a Homepage bookmarks.yaml or services.yaml
// file. The first import runs only for a profile without links; later ones
// (periodic or manual) add the entries whose URL is not in the profile yet.
type SeedReloader struct {
	loader        *homepage.Loader
	mapper        *homepage.Mapper
	editor        *editor.Service
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSeedReloader creates a new seed reloader. An interval of zero disables
// periodic reloads.
func NewSeedReloader(
	seedFile string,
	svc *editor.Service,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedReloader {
	return &SeedReloader{
		loader:        homepage.NewLoader(seedFile),
		mapper:        homepage.NewMapper(),
		editor:        svc,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start seeds an empty profile, then waits for periodic or manual reloads
func (sr *SeedReloader) Start(ctx context.Context) error {
	if sr.index.LinkCount() == 0 {
		if _, err := sr.Reload(ctx); err != nil {
			return fmt.Errorf("initial seed import failed: %w", err)
		}
	} else {
		sr.logger.Info("profile already has links, skipping seed import")
	}

	go func() {
		var tick <-chan time.Time
		if sr.interval > 0 {
			ticker := time.NewTicker(sr.interval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			select {
			case <-tick:
				if _, err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed file",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual seed reload triggered")
				if _, err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed file",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (sr *SeedReloader) Stop() {
	close(sr.stopCh)
}

// Reload imports the seed file and returns how many links were added
func (sr *SeedReloader) Reload(ctx context.Context) (int, error) {
	sr.logger.Info("importing links from seed file")

	entries, err := sr.loader.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load seed file: %w", err)
	}

	links, err := sr.mapper.MapLinks(entries)
	if err != nil {
		return 0, fmt.Errorf("failed to map seed entries: %w", err)
	}

	_, added := sr.editor.ImportLinks(ctx, links)

	sr.logger.Info("imported links from seed file",
		logger.Int("entries", len(entries)),
		logger.Int("added", added))

	return added, nil
}
