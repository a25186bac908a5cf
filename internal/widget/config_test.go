package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, DefaultTemplateID, cfg.WidgetTemplateID)
	assert.Equal(t, "light", cfg.Theme)
	assert.False(t, cfg.DarkMode)
	assert.Equal(t, RoundedMd, cfg.Rounded)
	assert.True(t, cfg.ShowAvatar)
	assert.Equal(t, AnimationFade, cfg.Animation)
	assert.Equal(t, WidthFull, cfg.Width)
	assert.Equal(t, ShadowMd, cfg.Shadow)
}

func TestSet_PatchesSingleField(t *testing.T) {
	cfg := Defaults()

	got := Set(cfg, "dark_mode", "true")
	assert.True(t, got.DarkMode)
	// The original is untouched.
	assert.False(t, cfg.DarkMode)

	got = Set(got, "highlight_color", "rebeccapurple")
	assert.Equal(t, "rebeccapurple", got.HighlightColor)
	assert.True(t, got.DarkMode, "earlier patches survive later ones")
}

func TestSet_EnumFieldsStoreValueUnvalidated(t *testing.T) {
	got := Set(Defaults(), "rounded", "enormous")
	assert.Equal(t, Rounded("enormous"), got.Rounded)
	// The bad value only resolves at render time, to the fallback class.
	assert.Equal(t, "rounded-md", got.Rounded.CSSClass())
}

func TestSet_UnknownFieldIsNoOp(t *testing.T) {
	cfg := Defaults()
	got := Set(cfg, "sparkle_level", "11")
	assert.Equal(t, cfg, got)
}

func TestEnumFallbackClasses(t *testing.T) {
	assert.Equal(t, "rounded-full", RoundedFull.CSSClass())
	assert.Equal(t, "rounded-md", Rounded("bogus").CSSClass())

	assert.Equal(t, "anim-none", AnimationNone.CSSClass())
	assert.Equal(t, "anim-fade", Animation("wobble").CSSClass())

	assert.Equal(t, "shadow-xl", ShadowXl.CSSClass())
	assert.Equal(t, "shadow-md", Shadow("cosmic").CSSClass())
}

func TestSet_BoolParsing(t *testing.T) {
	assert.True(t, Set(Defaults(), "auto_rotate", "1").AutoRotate)
	assert.True(t, Set(Defaults(), "auto_rotate", "true").AutoRotate)
	assert.False(t, Set(Defaults(), "auto_rotate", "maybe").AutoRotate)
}
