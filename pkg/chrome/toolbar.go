package chrome

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/command"
	"github.com/karooapp/karoo/pkg/logging"
	"github.com/karooapp/karoo/pkg/toolkit"
)

// SeparatorItem is the sentinel item ID that inserts a separator instead of
// a command slot.
const SeparatorItem = "_SEPARATOR_"

// ToolbarSpec declares one toolbar: its identity, placement, default
// visibility, and ordered command slots.
type ToolbarSpec struct {
	ID      string   `yaml:"id" validate:"required"`
	Title   string   `yaml:"title" validate:"required"`
	Area    string   `yaml:"area" validate:"omitempty,oneof=top bottom left right"`
	Visible *bool    `yaml:"visible"`
	Items   []string `yaml:"items" validate:"required,min=1,dive,required"`
}

// DefaultVisible reports the declared default visibility, true when omitted.
func (s ToolbarSpec) DefaultVisible() bool {
	if s.Visible == nil {
		return true
	}
	return *s.Visible
}

// ToolbarConfig is the full declarative toolbar set, in display order.
type ToolbarConfig struct {
	Toolbars []ToolbarSpec `yaml:"toolbars" validate:"required,min=1,dive"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ParseToolbarConfig decodes and validates a YAML toolbar declaration.
func ParseToolbarConfig(data []byte) (*ToolbarConfig, error) {
	var cfg ToolbarConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing toolbar config: %w", err)
	}
	if err := getValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating toolbar config: %w", err)
	}
	seen := make(map[string]bool, len(cfg.Toolbars))
	for _, tb := range cfg.Toolbars {
		if seen[tb.ID] {
			return nil, fmt.Errorf("validating toolbar config: duplicate toolbar id %q", tb.ID)
		}
		seen[tb.ID] = true
	}
	return &cfg, nil
}

// ToolbarManager builds the toolbar strips and persists their visibility
// under "toolbars/{id}/visible".
type ToolbarManager struct {
	binder   *Binder
	registry *command.Registry
	settings Settings
	log      *logging.Logger

	toolbars map[string]toolkit.Toolbar
	order    []string
}

// NewToolbarManager creates a manager; Build populates it.
func NewToolbarManager(binder *Binder, reg *command.Registry, settings Settings, log *logging.Logger) *ToolbarManager {
	if log == nil {
		log = logging.Nop()
	}
	return &ToolbarManager{
		binder:   binder,
		registry: reg,
		settings: settings,
		log:      log,
		toolbars: make(map[string]toolkit.Toolbar),
	}
}

// Build creates every declared toolbar on the window, in declaration order.
// Unregistered or disabled commands are skipped with a warning; one bad slot
// never blocks the rest of the toolbar.
func (t *ToolbarManager) Build(win toolkit.Window, cfg *ToolbarConfig) {
	for _, spec := range cfg.Toolbars {
		tb := win.AddToolbar(spec.ID, spec.Title, toolkit.ParseDockArea(spec.Area))
		t.fill(tb, spec)

		visible := t.settings.Bool(visibilityKey(spec.ID), spec.DefaultVisible())
		tb.SetVisible(visible)
		id := spec.ID
		tb.OnVisibilityChanged(func(v bool) {
			t.settings.SetBool(visibilityKey(id), v)
		})

		t.toolbars[spec.ID] = tb
		t.order = append(t.order, spec.ID)
	}
}

func (t *ToolbarManager) fill(tb toolkit.Toolbar, spec ToolbarSpec) {
	for _, item := range spec.Items {
		if item == SeparatorItem {
			tb.AddSeparator()
			continue
		}
		cmd, err := t.registry.Get(item)
		if err != nil {
			t.log.WithFields(map[string]any{"toolbar": spec.ID, "command": item}).
				Warn("toolbar slot skipped: unknown command")
			continue
		}
		if !t.registry.CanExecute(item) {
			t.log.WithFields(map[string]any{"toolbar": spec.ID, "command": item}).
				Warn("toolbar slot skipped: command disabled")
			continue
		}
		t.binder.CreateCommandAction(tb, cmd, art.SizeToolbar)
	}
}

// Toolbar returns a built toolbar by ID, nil when unknown.
func (t *ToolbarManager) Toolbar(id string) toolkit.Toolbar {
	return t.toolbars[id]
}

// IDs returns the built toolbar IDs in declaration order.
func (t *ToolbarManager) IDs() []string {
	return append([]string(nil), t.order...)
}

// SetVisible shows or hides one toolbar and persists the choice.
func (t *ToolbarManager) SetVisible(id string, visible bool) {
	tb, ok := t.toolbars[id]
	if !ok {
		return
	}
	tb.SetVisible(visible)
	t.settings.SetBool(visibilityKey(id), visible)
}

func visibilityKey(id string) string {
	return "toolbars/" + id + "/visible"
}
