package index

import (
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

func TestNewMemoryIndex(t *testing.T) {
	index := NewMemoryIndex()
	if index == nil {
		t.Fatal("NewMemoryIndex() returned nil")
	}
	p := index.Profile()
	if p.Theme != domain.ThemeLight || p.Role != domain.RoleAdmin || len(p.Links) != 0 {
		t.Errorf("NewMemoryIndex() should start with the default profile, got %+v", p)
	}
	if index.SessionCount() != 0 {
		t.Errorf("NewMemoryIndex() should start without sessions, got %v", index.SessionCount())
	}
}

func TestSetProfile(t *testing.T) {
	index := NewMemoryIndex()

	p := domain.DefaultProfile().WithName("Ada")
	p.Links = []domain.Link{{ID: "a", Title: "A", Icon: "Link"}, {ID: "b", Title: "B", Icon: "Link"}}
	index.SetProfile(p)

	if got := index.Profile(); got.Name != "Ada" || len(got.Links) != 2 {
		t.Errorf("Profile() = %+v", got)
	}
	if index.LinkCount() != 2 {
		t.Errorf("LinkCount() = %v, want 2", index.LinkCount())
	}
	if index.GetLastSync().IsZero() {
		t.Error("SetProfile() should record the sync time")
	}
}

func TestProfileReturnsSnapshot(t *testing.T) {
	index := NewMemoryIndex()

	p := domain.DefaultProfile()
	p.Links = []domain.Link{{ID: "a", Title: "A", Icon: "Link"}}
	index.SetProfile(p)

	// Writing to the caller's copy must not leak into the index
	p.Links[0].Title = "changed"
	snapshot := index.Profile()
	snapshot.Links[0].Title = "changed too"

	if got := index.Profile().Links[0].Title; got != "A" {
		t.Errorf("Profile() title = %q, want A", got)
	}
}

func TestDragSessions(t *testing.T) {
	index := NewMemoryIndex()

	if d := index.Drag("unknown"); d.Active() {
		t.Errorf("Drag() for unknown session = %+v, want inactive", d)
	}
	if index.SessionCount() != 0 {
		t.Error("Drag() must not create sessions")
	}

	index.SetDrag("s1", domain.DragSession{Dragged: "a"})
	index.SetDrag("s2", domain.DragSession{})

	if d := index.Drag("s1"); d.Dragged != "a" {
		t.Errorf("Drag(s1) = %+v, want dragged a", d)
	}
	if index.SessionCount() != 2 {
		t.Errorf("SessionCount() = %v, want 2", index.SessionCount())
	}
	if index.ActiveDragCount() != 1 {
		t.Errorf("ActiveDragCount() = %v, want 1", index.ActiveDragCount())
	}

	sessions := index.GetAllSessions()
	if sessions["s1"].Drag.Dragged != "a" || sessions["s2"].Drag.Active() {
		t.Errorf("GetAllSessions() = %+v", sessions)
	}
}

func TestDeleteSessionIfIdle(t *testing.T) {
	index := NewMemoryIndex()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	index.now = func() time.Time { return now }

	index.SetDrag("old", domain.DragSession{Dragged: "a"})
	now = now.Add(time.Hour)
	index.SetDrag("fresh", domain.DragSession{})

	cutoff := now.Add(-30 * time.Minute)
	tests := []struct {
		id   string
		want bool
	}{
		{"fresh", false},
		{"old", true},
		{"old", false},
		{"missing", false},
	}
	for _, tt := range tests {
		if got := index.DeleteSessionIfIdle(tt.id, cutoff); got != tt.want {
			t.Errorf("DeleteSessionIfIdle(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
	if index.SessionCount() != 1 {
		t.Errorf("SessionCount() = %v, want 1", index.SessionCount())
	}
}

func TestConcurrentAccess(t *testing.T) {
	index := NewMemoryIndex()

	var wg sync.WaitGroup

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = index.Profile()
			_ = index.ActiveDragCount()
		}()
	}

	// Concurrent writes
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			index.SetDrag("shared", domain.DragSession{Dragged: "x"})
			index.SetProfile(domain.DefaultProfile())
		}()
	}

	wg.Wait()

	if index.SessionCount() != 1 {
		t.Errorf("SessionCount() = %v, want 1", index.SessionCount())
	}
}
