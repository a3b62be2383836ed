package domain

// DragSession tracks which link is being repositioned by a pointer drag.
// It is transient UI state, never persisted with the profile.
type DragSession struct {
	// Dragged is the id of the link under the pointer, empty when no drag
	// is in progress.
	Dragged string `json:"dragged,omitempty"`
}

// Active reports whether a drag is in progress.
func (s DragSession) Active() bool {
	return s.Dragged != ""
}

// DragBegin starts a drag of the link with the given id.
func (e *Editor) DragBegin(id string) DragSession {
	return DragSession{Dragged: id}
}

// DragHover applies one hover event of a drag gesture.
//
// The dragged link is moved (not swapped) to the position of the hover
// target: it is removed from its index and reinserted at the target index,
// both computed against the current order before removal. Indices are looked
// up again on every call. Self-hover, hover with no drag in progress, a
// dragged or hover id that is no longer present, and equal indices all leave
// the profile unchanged.
func (e *Editor) DragHover(p Profile, s DragSession, hoverID string) (Profile, DragSession) {
	if !s.Active() || hoverID == s.Dragged {
		return p, s
	}

	from := p.IndexOf(s.Dragged)
	to := p.IndexOf(hoverID)
	if from < 0 || to < 0 || from == to {
		return p, s
	}

	out := p.Clone()
	dragged := out.Links[from]
	out.Links = append(out.Links[:from], out.Links[from+1:]...)
	out.Links = append(out.Links[:to], append([]Link{dragged}, out.Links[to:]...)...)
	return out, s
}

// DragEnd clears the session. The profile was already updated by the hover
// events and nothing is rolled back.
func (e *Editor) DragEnd(DragSession) DragSession {
	return DragSession{}
}
