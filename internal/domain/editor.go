package domain

// Direction is the direction of a step move.
type Direction string

const (
	// Up moves a link toward index 0.
	Up Direction = "up"
	// Down moves a link toward the end of the list.
	Down Direction = "down"
)

// ParseDirection returns the Direction named by s.
func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(s); d {
	case Up, Down:
		return d, true
	default:
		return "", false
	}
}

// Editor owns the add/update/remove/reorder operations over a profile's
// link list.
//
// Lookups by id never fail: an unknown id (NotFound) or a step move past
// either end (OutOfRange) returns the input profile unchanged.
type Editor struct {
	newID func() string
}

// NewEditor returns an Editor that assigns ids with NewLinkID.
func NewEditor() *Editor {
	return &Editor{newID: NewLinkID}
}

// NewEditorWithIDs returns an Editor using a custom id generator.
// The generator must never return an id twice.
func NewEditorWithIDs(newID func() string) *Editor {
	if newID == nil {
		newID = NewLinkID
	}
	return &Editor{newID: newID}
}

// Add appends a new link with a fresh id, the placeholder title, an empty
// url and the default icon.
func (e *Editor) Add(p Profile) Profile {
	return e.Append(p, Link{Title: DefaultLinkTitle, Icon: DefaultIcon})
}

// Append appends copies of the given links, each with a fresh id. Any id
// set on the inputs is discarded.
func (e *Editor) Append(p Profile, links ...Link) Profile {
	out := p.Clone()
	for _, l := range links {
		l.ID = e.freshID(out)
		out.Links = append(out.Links, l)
	}
	return out
}

// freshID draws ids until one is unused in p.
func (e *Editor) freshID(p Profile) string {
	for {
		id := e.newID()
		if id != "" && p.IndexOf(id) < 0 {
			return id
		}
	}
}

// UpdateField replaces one field of the link with the given id.
func (e *Editor) UpdateField(p Profile, id string, f Field, value string) Profile {
	i := p.IndexOf(id)
	if i < 0 {
		return p
	}
	updated, ok := p.Links[i].with(f, value)
	if !ok {
		return p
	}
	out := p.Clone()
	out.Links[i] = updated
	return out
}

// Remove drops the link with the given id, keeping the relative order of
// the others. Removing an absent id is a no-op.
func (e *Editor) Remove(p Profile, id string) Profile {
	i := p.IndexOf(id)
	if i < 0 {
		return p
	}
	out := p.Clone()
	out.Links = append(out.Links[:i], out.Links[i+1:]...)
	return out
}

// MoveStep swaps the link with its neighbour in the given direction.
// It is a single adjacent transposition.
func (e *Editor) MoveStep(p Profile, id string, d Direction) Profile {
	i := p.IndexOf(id)
	if i < 0 {
		return p
	}

	var j int
	switch d {
	case Up:
		j = i - 1
	case Down:
		j = i + 1
	default:
		return p
	}
	if j < 0 || j >= len(p.Links) {
		return p
	}

	out := p.Clone()
	out.Links[i], out.Links[j] = out.Links[j], out.Links[i]
	return out
}
