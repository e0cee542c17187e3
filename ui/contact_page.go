package ui

import (
	"time"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/vignesh-b/portfolio/contact"
	"github.com/vignesh-b/portfolio/content"
)

const (
	copiedText     = "Email copied to clipboard."
	copyFailedText = "Could not copy the email address."
)

// contactForm holds the draft across rebuilds and the widgets showing it.
type contactForm struct {
	draft  contact.Form
	inputs []*widget.TextInput
	status *widget.Text
	send   *widget.Button

	notice  string
	expires time.Time
}

func (s *Shell) contactPage(body *widget.Container, site *content.Site) {
	body.AddChild(s.title("Get in Touch"))

	info := s.card()
	if email := site.Contact.Email; email != "" {
		row := hstack(12)
		row.AddChild(s.paragraph(email, false))
		row.AddChild(s.button("Copy", false, func() { s.copyEmail(email) }))
		row.AddChild(s.link("Write", "mailto:"+email))
		info.AddChild(row)
	}
	links := hstack(8)
	if site.Contact.LinkedIn != "" {
		links.AddChild(s.link("LinkedIn Profile", site.Contact.LinkedIn))
	}
	if site.Contact.GitHub != "" {
		links.AddChild(s.link("GitHub", site.Contact.GitHub))
	}
	info.AddChild(links)
	body.AddChild(info)

	f := &s.form
	form := s.card()
	form.AddChild(s.heading("Send a message"))
	f.inputs = f.inputs[:0]
	field := func(label string, value string, set func(string)) {
		form.AddChild(s.small(label))
		in := s.input(value, set)
		f.inputs = append(f.inputs, in)
		form.AddChild(in)
	}
	field("Name", f.draft.Name, func(v string) { f.draft.Name = v })
	field("Email", f.draft.Email, func(v string) { f.draft.Email = v })
	field("Message", f.draft.Message, func(v string) { f.draft.Message = v })

	f.send = s.button("Send", true, s.submitContact)
	form.AddChild(f.send)
	f.status = s.small("")
	form.AddChild(f.status)
	body.AddChild(form)

	s.refreshContact(time.Now())
}

func (s *Shell) submitContact() {
	if s.contact == nil {
		return
	}
	if err := s.contact.Submit(s.form.draft, time.Now()); err != nil {
		s.logger.Debug("contact submit", "err", err)
	}
	s.refreshContact(time.Now())
}

// clearContact empties the form after a successful send.
func (s *Shell) clearContact() {
	s.form.draft = contact.Form{}
	for _, in := range s.form.inputs {
		in.SetText("")
	}
}

func (s *Shell) copyEmail(email string) {
	s.form.notice = copiedText
	if err := s.desktop.CopyText(email); err != nil {
		s.logger.Warn("copy email", "err", err)
		s.form.notice = copyFailedText
	}
	s.form.expires = time.Now().Add(contact.StatusTTL)
	s.refreshContact(time.Now())
}

// refreshContact shows the controller status, or the copy notice when no
// status is active.
func (s *Shell) refreshContact(now time.Time) {
	f := &s.form
	if f.status == nil {
		return
	}
	if f.notice != "" && !now.Before(f.expires) {
		f.notice = ""
	}
	label := ""
	if s.contact != nil {
		label = s.contact.Status().Text
	}
	if label == "" {
		label = f.notice
	}
	f.status.Label = label
	if f.send != nil && s.contact != nil {
		f.send.GetWidget().Disabled = s.contact.Sending()
	}
}
