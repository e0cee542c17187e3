package popup

import "github.com/google/uuid"

// Registry remembers which pages have shown their popup during this
// session. The shell creates one and passes it to every popup.
type Registry struct {
	session uuid.UUID
	seen    map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{session: uuid.New(), seen: make(map[string]bool)}
}

// ShouldShow reports whether page has not shown its popup yet.
func (r *Registry) ShouldShow(page string) bool {
	if r == nil {
		return false
	}
	return !r.seen[page]
}

func (r *Registry) MarkShown(page string) {
	if r == nil {
		return
	}
	r.seen[page] = true
}

// Claim marks page as shown and reports whether it had not been before.
func (r *Registry) Claim(page string) bool {
	if !r.ShouldShow(page) {
		return false
	}
	r.MarkShown(page)
	return true
}

// Reset forgets every page and starts a new session.
func (r *Registry) Reset() {
	if r == nil {
		return
	}
	r.seen = make(map[string]bool)
	r.session = uuid.New()
}

// Session identifies the current session in logs.
func (r *Registry) Session() string {
	if r == nil {
		return ""
	}
	return r.session.String()
}

// Seen returns the number of pages that have shown their popup.
func (r *Registry) Seen() int {
	if r == nil {
		return 0
	}
	return len(r.seen)
}
