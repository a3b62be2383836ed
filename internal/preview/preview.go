// Package preview renders a profile as the read-only public page.
package preview

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

const (
	placeholderName  = "Your Name"
	placeholderTitle = "Untitled Link"
	unknownInitial   = "?"

	maxTitleLen  = 60
	maxDomainLen = 40
)

//go:embed templates/*.html
var templates embed.FS

// Renderer renders profile pages.
type Renderer struct {
	tmpl *template.Template
}

type page struct {
	Name       string
	Initial    string
	Bio        string
	Accent     string
	AccentName string
	Dark       bool
	Links      []linkView
}

type linkView struct {
	Title  string
	URL    string
	Domain string
	Icon   string
}

// New parses the embedded page template.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/profile.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse preview template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page for p to w.
func (r *Renderer) Render(w io.Writer, p domain.Profile) error {
	if err := r.tmpl.Execute(w, newPage(p)); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}

func newPage(p domain.Profile) page {
	pg := page{
		Name:    p.Name,
		Initial: initial(p.Name),
		Bio:     p.Bio,
		Accent:  p.AccentColor,
		Dark:    p.Theme == domain.ThemeDark,
		Links:   make([]linkView, 0, len(p.Links)),
	}
	if pg.Name == "" {
		pg.Name = placeholderName
	}
	if pg.Accent == "" {
		pg.Accent = domain.DefaultAccentColor
	}
	pg.AccentName, _ = domain.PaletteName(pg.Accent)

	for _, l := range p.Links {
		v := linkView{
			Title: domain.Truncate(l.Title, maxTitleLen),
			URL:   l.URL,
			Icon:  domain.IconOrDefault(l.Icon),
		}
		if v.Title == "" {
			v.Title = placeholderTitle
		}
		// Only links that read as a URL get a domain line
		if l.URL != "" && domain.IsValidURL(domain.EnsureHTTPS(l.URL)) {
			v.Domain = domain.Truncate(domain.ExtractDomain(l.URL), maxDomainLen)
		}
		pg.Links = append(pg.Links, v)
	}
	return pg
}

func initial(name string) string {
	if name == "" {
		return unknownInitial
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
