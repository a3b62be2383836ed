package share

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

type memoryURLStore struct {
	mu      sync.Mutex
	url     string
	loadErr error
	saves   int
}

func (m *memoryURLStore) LoadShareURL(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return "", m.loadErr
	}
	if m.url == "" {
		return "", store.ErrNotFound
	}
	return m.url, nil
}

func (m *memoryURLStore) SaveShareURL(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.url == "" {
		m.url = url
	}
	return nil
}

func TestShortCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := ShortCode()
		if err != nil {
			t.Fatalf("ShortCode() error = %v", err)
		}
		if len(code) != CodeLength {
			t.Fatalf("ShortCode() = %q, want %d chars", code, CodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(charset, r) {
				t.Fatalf("ShortCode() = %q contains %q", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 45 {
		t.Errorf("ShortCode() produced only %d distinct codes out of 50", len(seen))
	}
}

func TestBuildAndParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantID   string
		wantCode string
		wantOK   bool
	}{
		{"built url", Build("https://links.example/", "abc", "k2x9p0qa"), "abc", "k2x9p0qa", true},
		{"base path", "https://links.example/app/share/id1/code1", "id1", "code1", true},
		{"missing code", "https://links.example/share/id1", "", "", false},
		{"extra segment", "https://links.example/share/id1/code1/x", "", "", false},
		{"no share path", "https://links.example/preview", "", "", false},
		{"empty id", "https://links.example/share//code1", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, code, ok := Parse(tt.raw)
			if ok != tt.wantOK || id != tt.wantID || code != tt.wantCode {
				t.Errorf("Parse(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.raw, id, code, ok, tt.wantID, tt.wantCode, tt.wantOK)
			}
		})
	}

	if got := Build("https://links.example/", "abc", "code"); got != "https://links.example/share/abc/code" {
		t.Errorf("Build() = %q", got)
	}
}

func TestMatches(t *testing.T) {
	stored := "https://links.example/share/abc/k2x9p0qa"
	if !Matches(stored, "abc", "k2x9p0qa") {
		t.Error("Matches() = false for the stored pair")
	}
	if Matches(stored, "abc", "other") {
		t.Error("Matches() = true for a wrong code")
	}
	if Matches("", "abc", "k2x9p0qa") {
		t.Error("Matches() = true with nothing stored")
	}
}

func TestResolverGeneratesOnce(t *testing.T) {
	s := &memoryURLStore{}
	r := NewResolver(s, "https://links.example")
	ctx := context.Background()

	first, err := r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !strings.HasPrefix(first, "https://links.example/share/") {
		t.Errorf("Resolve() = %q, want share URL under base", first)
	}
	if _, _, ok := Parse(first); !ok {
		t.Errorf("Resolve() = %q does not parse", first)
	}

	second, err := r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if second != first {
		t.Errorf("Resolve() = %q, want reused %q", second, first)
	}
	if s.saves != 1 {
		t.Errorf("saves = %d, want 1", s.saves)
	}
}

func TestResolverKeepsExistingURL(t *testing.T) {
	s := &memoryURLStore{url: "https://old.example/share/x/y"}
	got, err := NewResolver(s, "https://links.example").Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "https://old.example/share/x/y" {
		t.Errorf("Resolve() = %q, want stored URL", got)
	}
}

func TestResolverStoreError(t *testing.T) {
	boom := errors.New("boom")
	s := &memoryURLStore{loadErr: boom}
	if _, err := NewResolver(s, "https://links.example").Resolve(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Resolve() error = %v, want %v", err, boom)
	}
}

func TestEncodeQR(t *testing.T) {
	tests := []struct {
		name  string
		theme domain.Theme
		want  uint32
	}{
		{"light theme draws black", domain.ThemeLight, 0},
		{"dark theme draws white", domain.ThemeDark, 0xffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeQR("https://links.example/share/abc/k2x9p0qa", tt.theme, 0)
			if err != nil {
				t.Fatalf("EncodeQR() error = %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			b := img.Bounds()
			if b.Dx() != DefaultQRSize || b.Dy() != DefaultQRSize {
				t.Errorf("size = %dx%d, want %d", b.Dx(), b.Dy(), DefaultQRSize)
			}
			if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
				t.Errorf("corner alpha = %d, want transparent", a)
			}

			found := false
			for y := b.Min.Y; y < b.Max.Y && !found; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					r, _, _, a := img.At(x, y).RGBA()
					if a == 0 {
						continue
					}
					found = true
					if r != tt.want {
						t.Errorf("module red = %#x, want %#x", r, tt.want)
					}
					break
				}
			}
			if !found {
				t.Error("no opaque module found")
			}
		})
	}
}

func TestQRFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "linkhub-qrcode.png"},
		{"Ada", "Ada-qrcode.png"},
		{"Ada/Lovelace", "Ada-Lovelace-qrcode.png"},
		{"../../tmp/evil", "..-..-tmp-evil-qrcode.png"},
		{`C:\Users\ada`, "C:-Users-ada-qrcode.png"},
		{"..", "linkhub-qrcode.png"},
		{" . ", "linkhub-qrcode.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QRFilename(tt.name)
			if got != tt.want {
				t.Errorf("QRFilename(%q) = %q, want %q", tt.name, got, tt.want)
			}
			if filepath.Base(got) != got {
				t.Errorf("QRFilename(%q) = %q is not a single path element", tt.name, got)
			}
		})
	}
}
