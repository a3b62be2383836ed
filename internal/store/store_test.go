package store

import (
	"testing"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

func TestDecodeProfileKeepsDefaults(t *testing.T) {
	p, err := DecodeProfile([]byte(`{"name":"Ada","links":[{"id":"x","title":"Blog","url":"","icon":"Globe"}],"future":"field"}`))
	if err != nil {
		t.Fatalf("DecodeProfile() error = %v", err)
	}
	if p.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", p.Name)
	}
	if p.Theme != domain.ThemeLight || p.Role != domain.RoleAdmin || p.AccentColor != domain.DefaultAccentColor {
		t.Errorf("missing fields should keep defaults, got %+v", p)
	}
	if len(p.Links) != 1 || p.Links[0].Icon != "Globe" {
		t.Errorf("Links = %+v", p.Links)
	}
}

func TestDecodeProfileNullLinks(t *testing.T) {
	p, err := DecodeProfile([]byte(`{"links":null}`))
	if err != nil {
		t.Fatalf("DecodeProfile() error = %v", err)
	}
	if p.Links == nil {
		t.Error("Links should never decode to nil")
	}
}

func TestDecodeProfileInvalid(t *testing.T) {
	if _, err := DecodeProfile([]byte(`{"name":`)); err == nil {
		t.Error("DecodeProfile() with truncated JSON should return error")
	}
}

func TestEncodeProfileShape(t *testing.T) {
	p := domain.DefaultProfile()
	p.Links = nil
	data, err := EncodeProfile(p)
	if err != nil {
		t.Fatalf("EncodeProfile() error = %v", err)
	}
	want := `{"name":"","bio":"","links":[],"theme":"light","accentColor":"#3B82F6","role":"admin"}`
	if string(data) != want {
		t.Errorf("EncodeProfile() = %s, want %s", data, want)
	}
}
