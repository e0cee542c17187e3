// Package route maps URL-style paths to pages and queues navigation
// requests raised by widgets.
package route

import "strings"

// Page identifies one content page.
type Page string

const (
	About     Page = "about"
	Skills    Page = "skills"
	Academics Page = "academics"
	Projects  Page = "projects"
	CP        Page = "cp"
	Contact   Page = "contact"
)

// Path returns the canonical path of the page.
func (p Page) Path() string { return "/" + string(p) }

var pages = map[string]Page{
	"/":          About,
	"/about":     About,
	"/skills":    Skills,
	"/academics": Academics,
	"/projects":  Projects,
	"/cp":        CP,
	"/contact":   Contact,
}

// Resolve returns the page for path and whether path is known. Unknown
// paths resolve to About.
func Resolve(path string) (Page, bool) {
	p := normalize(path)
	if page, ok := pages[p]; ok {
		return page, true
	}
	return About, false
}

// Canonical returns the canonical path for path, so "/" and "/about/"
// both become "/about".
func Canonical(path string) string {
	page, _ := Resolve(path)
	return page.Path()
}

func normalize(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return strings.ToLower(p)
}

// Link is one header navigation entry.
type Link struct {
	To    string
	Label string
}

// NavLinks are the header entries in display order.
var NavLinks = []Link{
	{To: "/about", Label: "About"},
	{To: "/skills", Label: "Skills"},
	{To: "/academics", Label: "Education"},
	{To: "/projects", Label: "Projects"},
	{To: "/cp", Label: "Coding"},
	{To: "/contact", Label: "Contact"},
}

// IsActive reports whether link should be highlighted for the current
// path. "/" counts as "/about".
func IsActive(link Link, current string) bool {
	cur := normalize(current)
	return cur == link.To || (link.To == "/about" && cur == "/")
}

// Event asks the shell to navigate.
type Event struct {
	To string
}

// Queue is a FIFO of navigation events.
type Queue struct {
	items []Event
}

func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
