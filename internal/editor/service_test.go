package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

type recordingSaver struct {
	mu    sync.Mutex
	saved []domain.Profile
	err   error
}

func (r *recordingSaver) SaveProfile(_ context.Context, p domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, p.Clone())
	return nil
}

func (r *recordingSaver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func (r *recordingSaver) last() domain.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved[len(r.saved)-1]
}

func newTestService(t *testing.T) (*Service, *recordingSaver) {
	t.Helper()
	n := 0
	ed := domain.NewEditorWithIDs(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	saver := &recordingSaver{}
	return NewService(ed, index.NewMemoryIndex(), saver, logger.Nop()), saver
}

func linkIDs(p domain.Profile) []string {
	out := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		out = append(out, l.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestServiceEditsArePersisted(t *testing.T) {
	svc, saver := newTestService(t)
	ctx := context.Background()

	svc.AddLink(ctx)
	svc.AddLink(ctx)
	p := svc.UpdateLink(ctx, "id-1", "url", "https://example.org")

	if got := p.Links[0].URL; got != "https://example.org" {
		t.Errorf("UpdateLink() url = %q", got)
	}
	if saver.count() != 3 {
		t.Errorf("saves = %d, want 3", saver.count())
	}
	if !saver.last().Equal(svc.Profile()) {
		t.Error("last saved profile differs from the current profile")
	}
}

func TestServiceNoOpsAreNotPersisted(t *testing.T) {
	svc, saver := newTestService(t)
	ctx := context.Background()
	svc.AddLink(ctx)

	tests := []struct {
		name string
		run  func() domain.Profile
	}{
		{"unknown field", func() domain.Profile { return svc.UpdateLink(ctx, "id-1", "color", "red") }},
		{"unknown link", func() domain.Profile { return svc.UpdateLink(ctx, "missing", "title", "x") }},
		{"remove absent", func() domain.Profile { return svc.RemoveLink(ctx, "missing") }},
		{"move at top", func() domain.Profile { return svc.MoveLink(ctx, "id-1", "up") }},
		{"bad direction", func() domain.Profile { return svc.MoveLink(ctx, "id-1", "left") }},
		{"same value", func() domain.Profile { return svc.UpdateLink(ctx, "id-1", "title", domain.DefaultLinkTitle) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := svc.Profile()
			got := tt.run()
			if !got.Equal(before) {
				t.Errorf("profile changed: %+v", got)
			}
			if saver.count() != 1 {
				t.Errorf("saves = %d, want 1", saver.count())
			}
		})
	}
}

func TestServiceMoveAndRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		svc.AddLink(ctx)
	}

	p := svc.MoveLink(ctx, "id-3", "up")
	if want := []string{"id-1", "id-3", "id-2"}; !equalIDs(linkIDs(p), want) {
		t.Errorf("MoveLink() = %v, want %v", linkIDs(p), want)
	}
	p = svc.RemoveLink(ctx, "id-1")
	if want := []string{"id-3", "id-2"}; !equalIDs(linkIDs(p), want) {
		t.Errorf("RemoveLink() = %v, want %v", linkIDs(p), want)
	}
}

func TestServiceStoreFailureKeepsEdit(t *testing.T) {
	svc, saver := newTestService(t)
	saver.err = errors.New("store down")

	p := svc.AddLink(context.Background())
	if len(p.Links) != 1 || svc.Profile().Links[0].ID != "id-1" {
		t.Errorf("AddLink() with failing store = %+v, want the edit applied", p)
	}
}

func TestServiceWithoutStore(t *testing.T) {
	svc := NewService(domain.NewEditor(), index.NewMemoryIndex(), nil, logger.Nop())
	if p := svc.AddLink(context.Background()); len(p.Links) != 1 {
		t.Errorf("AddLink() = %+v", p)
	}
}

func TestServiceUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	name, theme, role := "Ada", "dark", "owner"
	p := svc.UpdateProfile(ctx, ProfilePatch{Name: &name, Theme: &theme, Role: &role})

	if p.Name != "Ada" || p.Theme != domain.ThemeDark {
		t.Errorf("UpdateProfile() = %+v", p)
	}
	if p.Role != domain.RoleAdmin {
		t.Errorf("UpdateProfile() role = %v, want unknown role ignored", p.Role)
	}
	if p.Bio != "" || p.AccentColor != domain.DefaultAccentColor {
		t.Errorf("UpdateProfile() touched nil fields: %+v", p)
	}
}

func TestServiceToggles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if p := svc.ToggleTheme(ctx); p.Theme != domain.ThemeDark {
		t.Errorf("ToggleTheme() = %v, want dark", p.Theme)
	}
	if p := svc.ToggleRole(ctx); p.Role != domain.RoleViewer {
		t.Errorf("ToggleRole() = %v, want viewer", p.Role)
	}
	if p := svc.ToggleTheme(ctx); p.Theme != domain.ThemeDark {
		t.Errorf("ToggleTheme() as viewer = %v, want unchanged", p.Theme)
	}
}

func TestServiceImportLinks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	svc.AddLink(ctx)
	svc.UpdateLink(ctx, "id-1", "url", "https://a.example")

	links := []domain.Link{
		{Title: "A", URL: "https://a.example", Icon: "Link"},
		{Title: "B", URL: "https://b.example", Icon: "Globe"},
		{Title: "B again", URL: "https://b.example", Icon: "Globe"},
	}
	p, added := svc.ImportLinks(ctx, links)

	if added != 1 {
		t.Errorf("ImportLinks() added = %d, want 1", added)
	}
	if want := []string{"id-1", "id-2"}; !equalIDs(linkIDs(p), want) {
		t.Errorf("ImportLinks() ids = %v, want %v", linkIDs(p), want)
	}
	if p.Links[1].Title != "B" {
		t.Errorf("imported link = %+v", p.Links[1])
	}

	if _, added = svc.ImportLinks(ctx, links); added != 0 {
		t.Errorf("second ImportLinks() added = %d, want 0", added)
	}
}

func TestServiceDragGesture(t *testing.T) {
	svc, saver := newTestService(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		svc.AddLink(ctx)
	}
	saves := saver.count()

	if d := svc.DragBegin("s1", "id-1"); d.Dragged != "id-1" {
		t.Fatalf("DragBegin() = %+v", d)
	}

	p, d := svc.DragHover(ctx, "s1", "id-3")
	if want := []string{"id-2", "id-3", "id-1"}; !equalIDs(linkIDs(p), want) {
		t.Errorf("DragHover() = %v, want %v", linkIDs(p), want)
	}
	if d.Dragged != "id-1" {
		t.Errorf("DragHover() session = %+v, want still dragging id-1", d)
	}

	// Hovering over the dragged link itself changes nothing
	if p, _ = svc.DragHover(ctx, "s1", "id-1"); !equalIDs(linkIDs(p), []string{"id-2", "id-3", "id-1"}) {
		t.Errorf("self hover = %v", linkIDs(p))
	}

	if d = svc.DragEnd("s1"); d.Active() {
		t.Errorf("DragEnd() = %+v, want inactive", d)
	}
	if p, _ = svc.DragHover(ctx, "s1", "id-2"); !equalIDs(linkIDs(p), []string{"id-2", "id-3", "id-1"}) {
		t.Errorf("hover after end = %v, want no change", linkIDs(p))
	}
	if saver.count() != saves+1 {
		t.Errorf("saves = %d, want %d", saver.count(), saves+1)
	}
}

func TestServiceDragSessionsAreIndependent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		svc.AddLink(ctx)
	}

	svc.DragBegin("s1", "id-1")
	if p, _ := svc.DragHover(ctx, "s2", "id-3"); !equalIDs(linkIDs(p), []string{"id-1", "id-2", "id-3"}) {
		t.Errorf("hover in idle session = %v, want no change", linkIDs(p))
	}

	// A link removed mid-drag turns further hovers into no-ops
	svc.RemoveLink(ctx, "id-1")
	if p, _ := svc.DragHover(ctx, "s1", "id-3"); !equalIDs(linkIDs(p), []string{"id-2", "id-3"}) {
		t.Errorf("hover after removal = %v", linkIDs(p))
	}
}

func TestServiceConcurrentEdits(t *testing.T) {
	svc, saver := newTestService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddLink(ctx)
		}()
	}
	wg.Wait()

	p := svc.Profile()
	if len(p.Links) != 50 {
		t.Errorf("links = %d, want 50", len(p.Links))
	}
	seen := make(map[string]bool)
	for _, l := range p.Links {
		if seen[l.ID] {
			t.Errorf("duplicate id %s", l.ID)
		}
		seen[l.ID] = true
	}
	if saver.count() != 50 {
		t.Errorf("saves = %d, want 50", saver.count())
	}
}
