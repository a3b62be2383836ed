package deps

import (
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/editor"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/preview"
	"github.com/MrSnakeDoc/linkhub/internal/share"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

type Deps struct {
	Logger            logger.Logger
	StartTime         time.Time
	Version           string
	Commit            string
	BuildDate         string
	GoVersion         string
	TimeNow           func() time.Time   // for testing, defaults to time.Now
	AllowedHosts      []string           // Host headers allowed to reach the editor API
	AllowedCIDRS      []string           // IPs allowed to reach the editor API and readyz/infra
	TrustProxy        bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateLimitBurst    int                // editor API token bucket size per client IP
	RateLimitRefill   int                // tokens refilled per minute per client IP
	Editor            *editor.Service    // serialized profile edits
	MemoryIndex       *index.MemoryIndex // current profile and editor sessions
	Store             store.Store        // persistence backend, nil keeps everything in memory
	StoreDriver       string             // "redis" | "sqlite", reported by /infra
	Share             *share.Resolver    // share URL, created on first use
	Preview           *preview.Renderer  // HTML preview of the profile
	QRSize            int                // QR code edge in pixels
	SeedReloadTrigger chan struct{}      // Channel to trigger a manual seed import (nil if no seed file)
}
