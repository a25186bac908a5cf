package branddata

import (
	"sync"

	"github.com/shoutbase/shoutbase/internal/templates"
)

// Document is the brand data store: a path-addressable nested document
// holding brand voice settings, channel templates, and color/logo metadata.
// Reads and writes go through explicit Get/Set; UI layers that want refresh
// behavior subscribe for change notifications instead of relying on any
// implicit reactivity.
type Document struct {
	mu      sync.RWMutex
	root    map[string]any
	subs    map[int]func(path []string)
	nextSub int
}

// New returns an empty document.
func New() *Document {
	return &Document{
		root: map[string]any{},
		subs: map[int]func(path []string){},
	}
}

// Get returns the value at path. The second return is false when any key
// along the path is missing or a non-map value is traversed through.
func (d *Document) Get(path ...string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var cur any = d.root
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// GetString returns the string at path, or "" when the path is missing or
// holds a non-string.
func (d *Document) GetString(path ...string) string {
	v, ok := d.Get(path...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Set writes value at path, creating intermediate objects as needed. A
// non-map value in the middle of the path is replaced by an object.
// Subscribers are notified after the write completes.
func (d *Document) Set(path []string, value any) {
	if len(path) == 0 {
		return
	}

	d.mu.Lock()
	cur := d.root
	for _, key := range path[:len(path)-1] {
		next, ok := cur[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[key] = next
		}
		cur = next
	}
	cur[path[len(path)-1]] = value

	fns := make([]func(path []string), 0, len(d.subs))
	for _, fn := range d.subs {
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	notified := make([]string, len(path))
	copy(notified, path)
	for _, fn := range fns {
		fn(notified)
	}
}

// Subscribe registers fn to run after every Set, with the path that changed.
// The returned function removes the subscription.
func (d *Document) Subscribe(fn func(path []string)) (unsubscribe func()) {
	d.mu.Lock()
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.subs, id)
		d.mu.Unlock()
	}
}

// Snapshot returns a deep copy of the document contents, safe to hand to
// persistence or serialization without racing later writes.
func (d *Document) Snapshot() map[string]any {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copyMap(d.root)
}

// Replace swaps the entire document contents. Used when loading a persisted
// document; subscribers are not notified.
func (d *Document) Replace(root map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if root == nil {
		root = map[string]any{}
	}
	d.root = copyMap(root)
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

// EnsureDefaults seeds every registered channel template slot that has no
// stored value yet. Existing values are never overwritten; calling this
// repeatedly is safe. It mirrors the "create default sub-object on first
// access" behavior the dashboard depends on when a channel is first opened.
func (d *Document) EnsureDefaults() {
	for _, desc := range templates.RegisteredDefaults() {
		path := TemplatePath(desc.Channel, desc.MessageType, desc.Platform)
		if _, ok := d.Get(path...); ok {
			continue
		}
		d.Set(path, templates.GetDefault(desc.Channel, desc.MessageType, desc.Platform))
	}
}

// TemplatePath returns the document path for a channel template slot.
// Social templates nest one level deeper, per platform.
func TemplatePath(channel templates.Channel, messageType templates.MessageType, platform templates.Platform) []string {
	if platform != templates.PlatformNone {
		return []string{"voice", "channels", string(channel), string(messageType), string(platform)}
	}
	return []string{"voice", "channels", string(channel), string(messageType)}
}

// BrandName returns the brand display name, or "" when unset.
func (d *Document) BrandName() string {
	return d.GetString("brand", "name")
}
