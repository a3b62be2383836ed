package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

type stubLoader struct {
	profile domain.Profile
	err     error
}

func (s stubLoader) LoadProfile(context.Context) (domain.Profile, error) {
	return s.profile, s.err
}

func TestStoreSyncer_Sync(t *testing.T) {
	stored := domain.DefaultProfile().WithName("Ada")
	stored.Links = []domain.Link{{ID: "a", Title: "A", Icon: "Link"}}
	boom := errors.New("connection refused")

	tests := []struct {
		name     string
		loader   stubLoader
		wantErr  error
		wantName string
		wantLen  int
	}{
		{name: "stored profile", loader: stubLoader{profile: stored}, wantName: "Ada", wantLen: 1},
		{name: "nothing stored", loader: stubLoader{err: store.ErrNotFound}},
		{name: "store error", loader: stubLoader{err: boom}, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memIndex := index.NewMemoryIndex()
			err := NewStoreSyncer(tt.loader, memIndex, logger.Nop()).Sync(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Sync() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("Sync() error = %v", err)
			}

			p := memIndex.Profile()
			if p.Name != tt.wantName || len(p.Links) != tt.wantLen {
				t.Errorf("index profile = %+v", p)
			}
		})
	}
}
