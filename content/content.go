// Package content holds the site's biographical data. The embedded
// site.yaml is used unless a content directory on disk overrides it.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vignesh-b/portfolio/popup"
	"gopkg.in/yaml.v3"
)

// FileName is the content file looked up in a content directory.
const FileName = "site.yaml"

//go:embed site.yaml
var embedded []byte

var ErrInvalid = errors.New("content: invalid site")

type Site struct {
	Profile        Profile                `yaml:"profile"`
	About          []string               `yaml:"about"`
	Skills         []string               `yaml:"skills"`
	AcademicsIntro string                 `yaml:"academics_intro"`
	Academics      []Academic             `yaml:"academics"`
	Projects       []Project              `yaml:"projects"`
	CP             []CPProfile            `yaml:"cp"`
	Contact        Contact                `yaml:"contact"`
	Popups         map[string]popup.Entry `yaml:"popups"`
}

type Profile struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Photo   string `yaml:"photo"`
}

type Academic struct {
	Title      string `yaml:"title"`
	Program    string `yaml:"program"`
	Link       string `yaml:"link"`
	Logo       string `yaml:"logo"`
	Year       string `yaml:"year"`
	ScoreLabel string `yaml:"score_label"`
	Score      string `yaml:"score"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	Links       []Link   `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type CPProfile struct {
	Platform string `yaml:"platform"`
	Handle   string `yaml:"handle"`
	URL      string `yaml:"url"`
	Note     string `yaml:"note"`
}

type Contact struct {
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
}

// Embedded returns the bytes compiled into the binary.
func Embedded() []byte {
	return embedded
}

// Load reads site.yaml from dir, falling back to the embedded copy when dir
// is empty or has no such file.
func Load(dir string) (*Site, error) {
	data := embedded
	source := "embedded " + FileName
	if dir != "" {
		path := filepath.Join(dir, FileName)
		disk, err := os.ReadFile(path)
		switch {
		case err == nil:
			data, source = disk, path
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("content: load %s: %w", path, err)
		}
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: load %s: %w", source, err)
	}
	return site, nil
}

// Parse decodes and validates a site document.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("content: unmarshal: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the fields every page relies on.
func (s *Site) Validate() error {
	var problems []string
	if strings.TrimSpace(s.Profile.Name) == "" {
		problems = append(problems, "profile.name is required")
	}
	for i, a := range s.Academics {
		if strings.TrimSpace(a.Title) == "" {
			problems = append(problems, fmt.Sprintf("academics[%d].title is required", i))
		}
	}
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			problems = append(problems, fmt.Sprintf("projects[%d].title is required", i))
		}
		for j, l := range p.Links {
			if l.Href == "" {
				problems = append(problems, fmt.Sprintf("projects[%d].links[%d].href is required", i, j))
			}
		}
	}
	for i, c := range s.CP {
		if strings.TrimSpace(c.Platform) == "" {
			problems = append(problems, fmt.Sprintf("cp[%d].platform is required", i))
		}
	}
	for key := range s.Popups {
		if !strings.HasPrefix(key, "/") {
			problems = append(problems, fmt.Sprintf("popups key %q must be a route path", key))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Popup returns the popup entry for route and whether one is configured.
func (s *Site) Popup(route string) (popup.Entry, bool) {
	if s == nil {
		return popup.Entry{}, false
	}
	e, ok := s.Popups[route]
	return e, ok
}
