// Package store defines the persistence boundary of LinkHub: one profile
// and one cached share URL, both read at startup and rewritten on change.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

// ErrNotFound is returned when nothing has been stored yet.
var ErrNotFound = errors.New("not found")

// Store persists the profile and the share URL.
type Store interface {
	LoadProfile(ctx context.Context) (domain.Profile, error)
	SaveProfile(ctx context.Context, p domain.Profile) error

	LoadShareURL(ctx context.Context) (string, error)
	SaveShareURL(ctx context.Context, url string) error

	Ping(ctx context.Context) error
	Close() error
}

// EncodeProfile serializes a profile to JSON.
func EncodeProfile(p domain.Profile) ([]byte, error) {
	if p.Links == nil {
		p.Links = []domain.Link{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	return data, nil
}

// DecodeProfile parses a stored profile on top of the defaults, so fields
// missing from older records keep their default values and unknown fields
// are ignored.
func DecodeProfile(data []byte) (domain.Profile, error) {
	p := domain.DefaultProfile()
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if p.Links == nil {
		p.Links = []domain.Link{}
	}
	return p, nil
}
