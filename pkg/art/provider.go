package art

import (
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/karooapp/karoo/pkg/logging"
)

// iconEntry is one registered icon: the built-in template plus optional user
// customizations. Resolution order is user template over default, override
// color over theme color.
type iconEntry struct {
	defaultTemplate string
	label           string
	userTemplate    string
	colorOverride   string // normalized hex, "" when unset
}

func (e *iconEntry) effectiveTemplate() string {
	if e.userTemplate != "" {
		return e.userTemplate
	}
	return e.defaultTemplate
}

type cacheKey struct {
	iconID string
	color  string
	px     int
}

// Provider is the process-wide visual resource manager. It owns the icon
// table, the active theme, the size-class mapping, and the resolved-bitmap
// cache. Any change to theme, sizes, or per-icon overrides invalidates the
// whole cache and then synchronously notifies every subscriber, so no stale
// icon is observable after the mutating call returns.
type Provider struct {
	mu      sync.Mutex
	icons   map[string]*iconEntry
	theme   Theme
	sizes   SizeConfig
	cache   map[cacheKey]*Bitmap
	subs    map[int]func()
	nextSub int

	log *logging.Logger
}

// NewProvider creates a provider with the light theme and factory sizes.
func NewProvider(log *logging.Logger) *Provider {
	if log == nil {
		log = logging.Nop()
	}
	return &Provider{
		icons: make(map[string]*iconEntry),
		theme: LightTheme,
		sizes: DefaultSizes,
		cache: make(map[cacheKey]*Bitmap),
		subs:  make(map[int]func()),
		log:   log,
	}
}

// RegisterIcon adds an icon template under a logical ID. Re-registering an
// ID replaces the default template but keeps user customizations.
func (p *Provider) RegisterIcon(id, template, label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok := p.icons[id]; ok {
		entry.defaultTemplate = template
		entry.label = label
		return
	}
	p.icons[id] = &iconEntry{defaultTemplate: template, label: label}
}

// HasIcon reports whether an icon ID is registered.
func (p *Provider) HasIcon(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.icons[id]
	return ok
}

// IconIDs returns all registered IDs, sorted.
func (p *Provider) IconIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.icons))
	for id := range p.icons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IconLabel returns the display label for an icon, "" when unknown.
func (p *Provider) IconLabel(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok := p.icons[id]; ok {
		return entry.label
	}
	return ""
}

// EffectiveTemplate returns the template that resolution would use: the user
// override when present, else the default, else "" for unknown IDs. Callers
// seeing "" fall back to a toolkit default icon.
func (p *Provider) EffectiveTemplate(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok := p.icons[id]; ok {
		return entry.effectiveTemplate()
	}
	return ""
}

// EffectiveColor returns the hex color resolution would substitute: the
// per-icon override when present, else the active theme's primary color.
func (p *Provider) EffectiveColor(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.effectiveColorLocked(id)
}

func (p *Provider) effectiveColorLocked(id string) string {
	if entry, ok := p.icons[id]; ok && entry.colorOverride != "" {
		return entry.colorOverride
	}
	return p.theme.Primary.Hex()
}

// Theme returns the active theme.
func (p *Provider) Theme() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// SetTheme switches the active theme, drops every cached bitmap, and
// notifies subscribers before returning.
func (p *Provider) SetTheme(t Theme) {
	p.invalidate(func() {
		p.theme = t
		p.log.WithFields(map[string]any{"theme": t.Name}).Info("theme changed")
	})
}

// Sizes returns the size-class mapping.
func (p *Provider) Sizes() SizeConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sizes
}

// SetSizes replaces the size-class mapping and invalidates.
func (p *Provider) SetSizes(c SizeConfig) {
	p.invalidate(func() {
		p.sizes = c
		p.log.Debug("icon size configuration changed")
	})
}

// SetSize changes one size-class mapping and invalidates.
func (p *Provider) SetSize(class SizeClass, px int) {
	p.invalidate(func() {
		p.sizes = p.sizes.With(class, px)
		p.log.WithFields(map[string]any{"class": class.String(), "px": px}).
			Debug("icon size changed")
	})
}

// SetIconColor sets a per-icon color override. The hex value is normalized;
// invalid colors and unknown IDs are logged and ignored.
func (p *Provider) SetIconColor(id, hex string) {
	c, err := colorful.Hex(hex)
	if err != nil {
		p.log.WithFields(map[string]any{"icon": id, "color": hex}).
			Warn("invalid override color")
		return
	}
	p.invalidate(func() {
		entry, ok := p.icons[id]
		if !ok {
			p.log.WithFields(map[string]any{"icon": id}).
				Warn("color override for unregistered icon")
			return
		}
		entry.colorOverride = c.Hex()
	})
}

// ClearIconColor removes a per-icon color override.
func (p *Provider) ClearIconColor(id string) {
	p.invalidate(func() {
		if entry, ok := p.icons[id]; ok {
			entry.colorOverride = ""
		}
	})
}

// IconColorOverride returns the override color for an icon, "" when unset.
func (p *Provider) IconColorOverride(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok := p.icons[id]; ok {
		return entry.colorOverride
	}
	return ""
}

// SetCustomTemplate installs a user-supplied template for an icon.
func (p *Provider) SetCustomTemplate(id, template string) {
	p.invalidate(func() {
		entry, ok := p.icons[id]
		if !ok {
			p.log.WithFields(map[string]any{"icon": id}).
				Warn("custom template for unregistered icon")
			return
		}
		entry.userTemplate = template
	})
}

// ClearCustomTemplate removes a user-supplied template.
func (p *Provider) ClearCustomTemplate(id string) {
	p.invalidate(func() {
		if entry, ok := p.icons[id]; ok {
			entry.userTemplate = ""
		}
	})
}

// ResetCustomizations clears every user template and color override and
// restores factory sizes.
func (p *Provider) ResetCustomizations() {
	p.invalidate(func() {
		for _, entry := range p.icons {
			entry.userTemplate = ""
			entry.colorOverride = ""
		}
		p.sizes = DefaultSizes
		p.log.Info("icon customizations reset")
	})
}

// Resolve renders the icon for a size class, using the class's configured
// pixel size.
func (p *Provider) Resolve(id string, class SizeClass) *Bitmap {
	p.mu.Lock()
	px := p.sizes.For(class)
	p.mu.Unlock()
	return p.ResolvePixels(id, px)
}

// ResolvePixels renders the icon at an explicit pixel size. Results are
// cached by (icon, effective color, size) until the next invalidation.
// Unknown icons and unparseable templates yield nil; the caller falls back
// to a toolkit default.
func (p *Provider) ResolvePixels(id string, px int) *Bitmap {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.icons[id]
	if !ok {
		return nil
	}
	template := entry.effectiveTemplate()
	if template == "" {
		return nil
	}

	hex := p.effectiveColorLocked(id)
	key := cacheKey{iconID: id, color: hex, px: px}
	if cached, hit := p.cache[key]; hit {
		return cached
	}

	bundle, err := renderBundle(substituteColor(template, hex), px)
	if err != nil {
		p.log.WithFields(map[string]any{
			"icon":    id,
			"preview": templatePreview(template),
		}).Warn("icon template parse failed")
		return nil
	}

	p.cache[key] = bundle
	return bundle
}

// Subscribe registers a change listener and returns its cancel function.
// Listeners run synchronously, on the mutating call's goroutine, after the
// cache has been invalidated.
func (p *Provider) Subscribe(fn func()) (cancel func()) {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// SubscriberCount reports how many listeners are attached.
func (p *Provider) SubscriberCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

// invalidate applies a mutation and clears the cache under the lock, then
// delivers the broadcast. Invalidate-then-broadcast ordering guarantees no
// subscriber re-resolves against a stale cache entry.
func (p *Provider) invalidate(mutate func()) {
	p.mu.Lock()
	mutate()
	p.cache = make(map[cacheKey]*Bitmap)
	listeners := make([]func(), 0, len(p.subs))
	ids := make([]int, 0, len(p.subs))
	for id := range p.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		listeners = append(listeners, p.subs[id])
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
