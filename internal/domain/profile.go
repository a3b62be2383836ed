package domain

import "slices"

// Theme is the display theme of a profile.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Role is a view-mode flag. It is not an authorization mechanism.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// DefaultAccentColor is the blue accent of a fresh profile.
const DefaultAccentColor = "#3B82F6"

// Profile is the complete editable record for one user.
//
// Profiles are values: every operation in this package returns a new Profile
// and leaves its input, including the Links backing array, untouched.
type Profile struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Links       []Link `json:"links"`
	Theme       Theme  `json:"theme"`
	AccentColor string `json:"accentColor"`
	Role        Role   `json:"role"`
}

// DefaultProfile returns the profile a new session starts with.
func DefaultProfile() Profile {
	return Profile{
		Links:       []Link{},
		Theme:       ThemeLight,
		AccentColor: DefaultAccentColor,
		Role:        RoleAdmin,
	}
}

// Clone returns a copy of p that shares no memory with it.
func (p Profile) Clone() Profile {
	out := p
	out.Links = make([]Link, len(p.Links))
	copy(out.Links, p.Links)
	return out
}

// IndexOf returns the position of the link with the given id, or -1.
func (p Profile) IndexOf(id string) int {
	for i, l := range p.Links {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Link returns the link with the given id.
func (p Profile) Link(id string) (Link, bool) {
	if i := p.IndexOf(id); i >= 0 {
		return p.Links[i], true
	}
	return Link{}, false
}

// Equal reports whether p and o hold the same fields and the same links in
// the same order.
func (p Profile) Equal(o Profile) bool {
	return p.Name == o.Name &&
		p.Bio == o.Bio &&
		p.Theme == o.Theme &&
		p.AccentColor == o.AccentColor &&
		p.Role == o.Role &&
		slices.Equal(p.Links, o.Links)
}

// IsViewer reports whether the profile is in read-only view mode.
func (p Profile) IsViewer() bool {
	return p.Role == RoleViewer
}

// WithName returns p with its display name replaced.
func (p Profile) WithName(name string) Profile {
	out := p.Clone()
	out.Name = name
	return out
}

// WithBio returns p with its bio replaced.
func (p Profile) WithBio(bio string) Profile {
	out := p.Clone()
	out.Bio = bio
	return out
}

// WithAccentColor returns p with its accent color replaced. Values outside
// the palette are kept as-is; see PaletteName.
func (p Profile) WithAccentColor(color string) Profile {
	out := p.Clone()
	out.AccentColor = color
	return out
}

// WithTheme returns p with the given theme. Unknown themes are ignored.
func (p Profile) WithTheme(t Theme) Profile {
	if t != ThemeLight && t != ThemeDark {
		return p
	}
	out := p.Clone()
	out.Theme = t
	return out
}

// ToggleTheme flips between light and dark. Viewers cannot change the theme.
func (p Profile) ToggleTheme() Profile {
	if p.IsViewer() {
		return p
	}
	if p.Theme == ThemeDark {
		return p.WithTheme(ThemeLight)
	}
	return p.WithTheme(ThemeDark)
}

// WithRole returns p with the given role. Unknown roles are ignored.
func (p Profile) WithRole(r Role) Profile {
	if r != RoleAdmin && r != RoleViewer {
		return p
	}
	out := p.Clone()
	out.Role = r
	return out
}

// ToggleRole flips between admin and viewer.
func (p Profile) ToggleRole() Profile {
	if p.IsViewer() {
		return p.WithRole(RoleAdmin)
	}
	return p.WithRole(RoleViewer)
}
