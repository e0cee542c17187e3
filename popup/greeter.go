package popup

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// TengoGreeter runs an entry's script with the globals page and hour. The
// script sets text to override the greeting.
type TengoGreeter struct {
	Now    func() time.Time
	logger *log.Logger
	cache  map[string]*tengo.Compiled
}

func NewTengoGreeter(logger *log.Logger) *TengoGreeter {
	if logger == nil {
		logger = log.Default()
	}
	return &TengoGreeter{Now: time.Now, logger: logger, cache: make(map[string]*tengo.Compiled)}
}

func (g *TengoGreeter) Greet(page string, e Entry) (string, error) {
	compiled, err := g.compile(e.Script)
	if err != nil {
		return "", err
	}
	if err := compiled.Set("page", page); err != nil {
		return "", fmt.Errorf("popup: set page: %w", err)
	}
	if err := compiled.Set("hour", g.Now().Hour()); err != nil {
		return "", fmt.Errorf("popup: set hour: %w", err)
	}
	if err := compiled.Set("text", e.Text); err != nil {
		return "", fmt.Errorf("popup: set text: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return "", fmt.Errorf("popup: run script: %w", err)
	}
	return strings.TrimSpace(compiled.Get("text").String()), nil
}

func (g *TengoGreeter) compile(src string) (*tengo.Compiled, error) {
	if c, ok := g.cache[src]; ok {
		return c, nil
	}
	script := tengo.NewScript([]byte(src))
	_ = script.Add("page", "")
	_ = script.Add("hour", 0)
	_ = script.Add("text", "")
	script.SetImports(stdlib.GetModuleMap("text", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("popup: compile script: %w", err)
	}
	g.cache[src] = compiled
	g.logger.Debug("compiled popup script", "bytes", len(src))
	return compiled, nil
}
