package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewStore(client)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestLoadProfileNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.LoadProfile(context.Background())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("LoadProfile() error = %v, want ErrNotFound", err)
	}
}

func TestSaveAndLoadProfile(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	p := domain.DefaultProfile().WithName("Ada").WithTheme(domain.ThemeDark)
	p.Links = []domain.Link{
		{ID: "b", Title: "Blog", URL: "https://blog.example", Icon: "Globe"},
		{ID: "a", Title: "Code", URL: "https://github.com/ada", Icon: "Github"},
	}

	if err := s.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	if !mr.Exists(KeyProfile) {
		t.Fatalf("profile not stored under %s", KeyProfile)
	}

	got, err := s.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if got.Name != "Ada" || got.Theme != domain.ThemeDark {
		t.Errorf("LoadProfile() = %+v", got)
	}
	if len(got.Links) != 2 || got.Links[0].ID != "b" || got.Links[1].ID != "a" {
		t.Errorf("LoadProfile() links = %+v, want order preserved", got.Links)
	}
}

func TestLoadProfileCorrupt(t *testing.T) {
	s, mr := newTestStore(t)
	if err := mr.Set(KeyProfile, "{not json"); err != nil {
		t.Fatal(err)
	}

	_, err := s.LoadProfile(context.Background())
	if err == nil || errors.Is(err, store.ErrNotFound) {
		t.Errorf("LoadProfile() error = %v, want decode error", err)
	}
}

func TestShareURLIsWrittenOnce(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.LoadShareURL(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("LoadShareURL() error = %v, want ErrNotFound", err)
	}

	if err := s.SaveShareURL(ctx, "https://links.example/share/first/abcd1234"); err != nil {
		t.Fatalf("SaveShareURL() error = %v", err)
	}
	if err := s.SaveShareURL(ctx, "https://links.example/share/second/zzzz9999"); err != nil {
		t.Fatalf("SaveShareURL() error = %v", err)
	}

	got, err := s.LoadShareURL(ctx)
	if err != nil {
		t.Fatalf("LoadShareURL() error = %v", err)
	}
	if got != "https://links.example/share/first/abcd1234" {
		t.Errorf("LoadShareURL() = %q, want the first URL", got)
	}
}

func TestPing(t *testing.T) {
	s, mr := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	mr.Close()
	if err := s.Ping(context.Background()); err == nil {
		t.Error("Ping() after server close should fail")
	}
}
