// Package share derives the public share URL of the profile and renders it
// as a QR code.
package share

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/xid"

	"github.com/MrSnakeDoc/linkhub/internal/store"
)

const (
	// CodeLength is the length of the random part of a share URL.
	CodeLength = 8
	charset    = "abcdefghijklmnopqrstuvwxyz0123456789"
	pathPrefix = "/share/"
)

// NewUserID returns a new opaque, globally unique share identifier.
func NewUserID() string {
	return xid.New().String()
}

// ShortCode returns CodeLength characters drawn uniformly from [a-z0-9].
func ShortCode() (string, error) {
	code := make([]byte, CodeLength)
	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

// Build joins the share URL for id and code under baseURL.
func Build(baseURL, id, code string) string {
	return strings.TrimRight(baseURL, "/") + pathPrefix + id + "/" + code
}

// Parse extracts the identifier and code from a share URL.
func Parse(raw string) (id, code string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", false
	}
	i := strings.LastIndex(u.Path, pathPrefix)
	if i < 0 {
		return "", "", false
	}
	parts := strings.Split(u.Path[i+len(pathPrefix):], "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Matches reports whether id and code are the ones embedded in stored.
func Matches(stored, id, code string) bool {
	sid, scode, ok := Parse(stored)
	return ok && sid == id && scode == code
}

// URLStore is the part of store.Store the resolver needs.
type URLStore interface {
	LoadShareURL(ctx context.Context) (string, error)
	SaveShareURL(ctx context.Context, url string) error
}

// Resolver hands out the share URL, generating it on first use.
type Resolver struct {
	store   URLStore
	baseURL string

	mu sync.Mutex
}

// NewResolver creates a resolver building URLs under baseURL.
func NewResolver(s URLStore, baseURL string) *Resolver {
	return &Resolver{store: s, baseURL: baseURL}
}

// Resolve returns the stored share URL, or creates and stores one. The URL
// read back after saving wins, so racing processes agree on one value.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.store.LoadShareURL(ctx)
	if err == nil && existing != "" {
		return existing, nil
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	code, err := ShortCode()
	if err != nil {
		return "", err
	}
	generated := Build(r.baseURL, NewUserID(), code)
	if err := r.store.SaveShareURL(ctx, generated); err != nil {
		return "", err
	}

	stored, err := r.store.LoadShareURL(ctx)
	if err != nil {
		return "", err
	}
	return stored, nil
}

// Lookup returns the stored share URL without generating one.
func (r *Resolver) Lookup(ctx context.Context) (string, error) {
	return r.store.LoadShareURL(ctx)
}
