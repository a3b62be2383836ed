package domain

import (
	"github.com/google/uuid"
)

const (
	// DefaultLinkTitle is the placeholder title given to freshly added links.
	DefaultLinkTitle = "New Link"
	// DefaultIcon is the generic symbol used for new links and as the
	// render-time fallback for unknown icon names.
	DefaultIcon = "Link"
)

// Link is one entry of a profile's ordered link list.
type Link struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is assigned once by Editor.Add and never reused or reassigned.
	ID string `json:"id"`

	// ─────────────────────────────
	// Mutable attributes
	// ─────────────────────────────

	// Title is free text and may be empty.
	Title string `json:"title"`

	// URL is free text, it is not validated at write time.
	URL string `json:"url"`

	// Icon is a symbolic name. Unknown names are stored as-is and only
	// fall back to DefaultIcon when rendered.
	Icon string `json:"icon"`
}

// Field selects one of the mutable attributes of a Link.
type Field string

const (
	FieldTitle Field = "title"
	FieldURL   Field = "url"
	FieldIcon  Field = "icon"
)

// ParseField returns the Field named by s.
func ParseField(s string) (Field, bool) {
	switch f := Field(s); f {
	case FieldTitle, FieldURL, FieldIcon:
		return f, true
	default:
		return "", false
	}
}

// with returns a copy of l with field f set to value.
func (l Link) with(f Field, value string) (Link, bool) {
	switch f {
	case FieldTitle:
		l.Title = value
	case FieldURL:
		l.URL = value
	case FieldIcon:
		l.Icon = value
	default:
		return l, false
	}
	return l, true
}

// NewLinkID returns a UUIDv7: a millisecond timestamp followed by random
// bits, so ids never collide within a session.
func NewLinkID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return uuid.NewString()
	}
	return id.String()
}
