package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/config"
	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/editor"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/preview"
	"github.com/MrSnakeDoc/linkhub/internal/scheduler"
	"github.com/MrSnakeDoc/linkhub/internal/share"
	"github.com/MrSnakeDoc/linkhub/internal/store"
	"github.com/MrSnakeDoc/linkhub/internal/version"
)

type App struct {
	cfg          *config.Config
	logger       logger.Logger
	server       *httpserver.Server
	store        store.Store
	memIndex     *index.MemoryIndex
	editor       *editor.Service
	seedReloader *scheduler.SeedReloader
	collector    *scheduler.SessionCollector
}

// Workspace is the profile state shared by the server and the CLI
// commands: the store, the memory index loaded from it, and the editor
// service writing back to it.
type Workspace struct {
	Store  store.Store
	Index  *index.MemoryIndex
	Editor *editor.Service
}

// OpenWorkspace connects the store and loads the persisted profile. A
// profile that cannot be read is logged and the defaults are used.
func OpenWorkspace(ctx context.Context, cfg *config.Config, log logger.Logger) (*Workspace, error) {
	st, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	memIndex := index.NewMemoryIndex()

	syncer := scheduler.NewStoreSyncer(st, memIndex, log)
	if err := syncer.Sync(ctx); err != nil {
		log.Warn("failed to load profile from store on startup, starting from defaults",
			logger.Error(err))
	}

	return &Workspace{
		Store:  st,
		Index:  memIndex,
		Editor: editor.NewService(domain.NewEditor(), memIndex, st, log),
	}, nil
}

func New(cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	// Initialize the store early - fail fast if unavailable
	ws, err := OpenWorkspace(context.Background(), cfg, loggerClient)
	if err != nil {
		return nil, err
	}
	loggerClient.Info("store initialized successfully",
		logger.String("driver", cfg.StoreDriver))

	renderer, err := preview.New()
	if err != nil {
		_ = ws.Store.Close()
		return nil, fmt.Errorf("failed to load preview templates: %w", err)
	}

	// Initialize seed reloader (if a seed file is configured)
	var seedReloader *scheduler.SeedReloader
	var seedReloadTrigger chan struct{}
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured, initializing seed reloader",
			logger.String("file", cfg.SeedFile))
		seedReloadTrigger = make(chan struct{}, 1)
		seedReloader = scheduler.NewSeedReloader(
			cfg.SeedFile,
			ws.Editor,
			ws.Index,
			loggerClient,
			cfg.SeedInterval,
			seedReloadTrigger,
		)
	} else {
		loggerClient.Info("seed file not configured, seed import disabled")
	}

	// Initialize session collector
	collector := scheduler.NewSessionCollector(
		ws.Index,
		loggerClient,
		cfg.SessionGCInterval,
		cfg.SessionIdleTTL,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           time.Now,
		AllowedHosts:      cfg.AllowedHosts,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
		RateLimitBurst:    cfg.RateLimitBurst,
		RateLimitRefill:   cfg.RateLimitRefill,
		Editor:            ws.Editor,
		MemoryIndex:       ws.Index,
		Store:             ws.Store,
		StoreDriver:       cfg.StoreDriver,
		Share:             share.NewResolver(ws.Store, cfg.PublicURL),
		Preview:           renderer,
		QRSize:            cfg.QRSize,
		SeedReloadTrigger: seedReloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:          cfg,
		logger:       loggerClient,
		server:       server,
		store:        ws.Store,
		memIndex:     ws.Index,
		editor:       ws.Editor,
		seedReloader: seedReloader,
		collector:    collector,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting LinkHub %s on %s", version.String(), a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start seed reloader (seeds an empty profile, then waits for reloads)
	if a.seedReloader != nil {
		if err := a.seedReloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start seed reloader: %w", err)
		}
		a.logger.Info("seed reloader started",
			logger.Duration("interval", a.cfg.SeedInterval))
	}

	// Start session collector
	if err := a.collector.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session collector: %w", err)
	}
	a.logger.Info("session collector started",
		logger.Duration("interval", a.cfg.SessionGCInterval),
		logger.Duration("idle_ttl", a.cfg.SessionIdleTTL))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.seedReloader != nil {
		a.seedReloader.Stop()
	}
	a.collector.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.store.Close(); err != nil {
		a.logger.Warnf("failed to close store: %v", err)
	} else {
		a.logger.Info("✅ Store closed cleanly")
	}

	a.logger.Info("✅ LinkHub stopped cleanly")
	return nil
}
