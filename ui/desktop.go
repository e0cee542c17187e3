package ui

import (
	"errors"
	"strings"
	"sync"

	"github.com/pkg/browser"
	"golang.design/x/clipboard"
)

// Desktop is the OS integration the pages use for links and copying.
type Desktop interface {
	OpenURL(url string) error
	CopyText(s string) error
}

var errNoClipboard = errors.New("ui: clipboard unavailable")

// SystemDesktop opens links in the default browser and writes to the
// system clipboard.
type SystemDesktop struct {
	once    sync.Once
	initErr error
}

func (d *SystemDesktop) OpenURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("ui: empty url")
	}
	return browser.OpenURL(url)
}

func (d *SystemDesktop) CopyText(s string) error {
	d.once.Do(func() {
		d.initErr = clipboard.Init()
	})
	if d.initErr != nil {
		return errors.Join(errNoClipboard, d.initErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
