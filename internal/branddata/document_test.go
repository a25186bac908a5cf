package branddata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoutbase/shoutbase/internal/templates"
)

func TestDocument_SetCreatesIntermediateObjects(t *testing.T) {
	doc := New()
	doc.Set([]string{"voice", "channels", "email", "request"}, "Hi {{name}}")

	got, ok := doc.Get("voice", "channels", "email", "request")
	require.True(t, ok)
	assert.Equal(t, "Hi {{name}}", got)

	// Intermediate node is addressable too.
	node, ok := doc.Get("voice", "channels")
	require.True(t, ok)
	assert.IsType(t, map[string]any{}, node)
}

func TestDocument_GetMissingPath(t *testing.T) {
	doc := New()
	doc.Set([]string{"brand", "name"}, "Acme")

	_, ok := doc.Get("brand", "logo")
	assert.False(t, ok)
	// Traversing through a leaf value fails rather than panicking.
	_, ok = doc.Get("brand", "name", "deeper")
	assert.False(t, ok)

	assert.Equal(t, "", doc.GetString("brand", "logo"))
	assert.Equal(t, "Acme", doc.GetString("brand", "name"))
}

func TestDocument_SetReplacesLeafWithObject(t *testing.T) {
	doc := New()
	doc.Set([]string{"brand"}, "just a string")
	doc.Set([]string{"brand", "name"}, "Acme")

	assert.Equal(t, "Acme", doc.GetString("brand", "name"))
}

func TestDocument_SubscribeNotify(t *testing.T) {
	doc := New()

	var gotPaths [][]string
	unsubscribe := doc.Subscribe(func(path []string) {
		gotPaths = append(gotPaths, path)
	})

	doc.Set([]string{"brand", "name"}, "Acme")
	require.Len(t, gotPaths, 1)
	assert.Equal(t, []string{"brand", "name"}, gotPaths[0])

	unsubscribe()
	doc.Set([]string{"brand", "name"}, "Other")
	assert.Len(t, gotPaths, 1, "no notifications after unsubscribe")
}

func TestDocument_SnapshotIsDeepCopy(t *testing.T) {
	doc := New()
	doc.Set([]string{"voice", "tone"}, "friendly")

	snap := doc.Snapshot()
	snap["voice"].(map[string]any)["tone"] = "mutated"

	assert.Equal(t, "friendly", doc.GetString("voice", "tone"))
}

func TestDocument_ReplaceThenSnapshotRoundTrip(t *testing.T) {
	root := map[string]any{
		"brand": map[string]any{"name": "Acme", "colors": []any{"#111", "#222"}},
		"voice": map[string]any{"tone": "warm"},
	}

	doc := New()
	doc.Replace(root)

	if diff := cmp.Diff(root, doc.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsureDefaults_SeedsAllRegisteredSlots(t *testing.T) {
	doc := New()
	doc.EnsureDefaults()

	for _, d := range templates.RegisteredDefaults() {
		path := TemplatePath(d.Channel, d.MessageType, d.Platform)
		got := doc.GetString(path...)
		assert.Equal(t, templates.GetDefault(d.Channel, d.MessageType, d.Platform), got,
			"slot %v not seeded", path)
	}
}

func TestEnsureDefaults_NeverOverwrites(t *testing.T) {
	doc := New()
	custom := "My custom ask for {{name}}"
	path := TemplatePath(templates.ChannelEmail, templates.MessageRequest, templates.PlatformNone)
	doc.Set(path, custom)

	doc.EnsureDefaults()
	assert.Equal(t, custom, doc.GetString(path...))
}

func TestTemplatePath_SocialNestsPlatform(t *testing.T) {
	assert.Equal(t,
		[]string{"voice", "channels", "email", "request"},
		TemplatePath(templates.ChannelEmail, templates.MessageRequest, templates.PlatformNone))
	assert.Equal(t,
		[]string{"voice", "channels", "social", "request", "twitter"},
		TemplatePath(templates.ChannelSocial, templates.MessageRequest, templates.PlatformTwitter))
}
