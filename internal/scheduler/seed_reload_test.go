package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/editor"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

const seedYAML = `---
- Social:
    - Github:
        - abbr: GH
          href: https://github.com/ada
    - Youtube:
        - abbr: YT
          href: https://youtube.com/@ada
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}
	return path
}

func newSeedReloader(t *testing.T, path string, trigger chan struct{}) (*SeedReloader, *index.MemoryIndex, *editor.Service) {
	t.Helper()
	memIndex := index.NewMemoryIndex()
	svc := editor.NewService(domain.NewEditor(), memIndex, nil, logger.Nop())
	return NewSeedReloader(path, svc, memIndex, logger.Nop(), 0, trigger), memIndex, svc
}

func TestSeedReloader_StartSeedsEmptyProfile(t *testing.T) {
	sr, memIndex, _ := newSeedReloader(t, writeSeed(t, seedYAML), nil)

	if err := sr.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer sr.Stop()

	p := memIndex.Profile()
	if len(p.Links) != 2 {
		t.Fatalf("links = %d, want 2", len(p.Links))
	}
	if p.Links[0].Title != "Github" || p.Links[0].Icon != "Github" || p.Links[0].ID == "" {
		t.Errorf("first link = %+v", p.Links[0])
	}
}

func TestSeedReloader_StartSkipsExistingLinks(t *testing.T) {
	sr, memIndex, svc := newSeedReloader(t, writeSeed(t, seedYAML), nil)
	svc.AddLink(context.Background())

	if err := sr.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer sr.Stop()

	if memIndex.LinkCount() != 1 {
		t.Errorf("links = %d, want the existing link only", memIndex.LinkCount())
	}
}

func TestSeedReloader_StartMissingFile(t *testing.T) {
	sr, _, _ := newSeedReloader(t, "/nonexistent/bookmarks.yaml", nil)
	if err := sr.Start(context.Background()); err == nil {
		sr.Stop()
		t.Error("Start() with missing seed file should return error")
	}
}

func TestSeedReloader_ManualTrigger(t *testing.T) {
	path := writeSeed(t, seedYAML)
	trigger := make(chan struct{}, 1)
	sr, memIndex, _ := newSeedReloader(t, path, trigger)

	if err := sr.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer sr.Stop()

	extended := seedYAML + `- Music:
    - Radio:
        - abbr: RA
          href: https://radio.example
`
	if err := os.WriteFile(path, []byte(extended), 0o644); err != nil {
		t.Fatal(err)
	}
	trigger <- struct{}{}

	deadline := time.Now().Add(2 * time.Second)
	for memIndex.LinkCount() != 3 {
		if time.Now().After(deadline) {
			t.Fatalf("links = %d after manual reload, want 3", memIndex.LinkCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSeedReloader_ReloadIsIdempotent(t *testing.T) {
	sr, memIndex, _ := newSeedReloader(t, writeSeed(t, seedYAML), nil)
	ctx := context.Background()

	if added, err := sr.Reload(ctx); err != nil || added != 2 {
		t.Fatalf("Reload() = %d, %v; want 2, nil", added, err)
	}
	if added, err := sr.Reload(ctx); err != nil || added != 0 {
		t.Fatalf("second Reload() = %d, %v; want 0, nil", added, err)
	}
	if memIndex.LinkCount() != 2 {
		t.Errorf("links = %d, want 2", memIndex.LinkCount())
	}
}
