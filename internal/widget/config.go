package widget

import "strconv"

// Rounded selects the corner radius class applied to the widget frame.
type Rounded string

const (
	RoundedNone Rounded = "none"
	RoundedSm   Rounded = "sm"
	RoundedMd   Rounded = "md"
	RoundedLg   Rounded = "lg"
	RoundedFull Rounded = "full"
)

// CSSClass maps the variant to its frame class. Unknown values resolve to
// the medium radius on purpose; the customization panel stores whatever the
// client sent and the renderer absorbs it here.
func (r Rounded) CSSClass() string {
	switch r {
	case RoundedNone:
		return "rounded-none"
	case RoundedSm:
		return "rounded-sm"
	case RoundedMd:
		return "rounded-md"
	case RoundedLg:
		return "rounded-lg"
	case RoundedFull:
		return "rounded-full"
	default:
		return "rounded-md"
	}
}

// Animation selects how testimonials enter the viewport.
type Animation string

const (
	AnimationFade  Animation = "fade"
	AnimationSlide Animation = "slide"
	AnimationZoom  Animation = "zoom"
	AnimationFlip  Animation = "flip"
	AnimationNone  Animation = "none"
)

// CSSClass maps the variant to its animation class; unknown falls back to fade.
func (a Animation) CSSClass() string {
	switch a {
	case AnimationFade:
		return "anim-fade"
	case AnimationSlide:
		return "anim-slide"
	case AnimationZoom:
		return "anim-zoom"
	case AnimationFlip:
		return "anim-flip"
	case AnimationNone:
		return "anim-none"
	default:
		return "anim-fade"
	}
}

// Shadow selects the drop-shadow depth.
type Shadow string

const (
	ShadowNone Shadow = "none"
	ShadowSm   Shadow = "sm"
	ShadowMd   Shadow = "md"
	ShadowLg   Shadow = "lg"
	ShadowXl   Shadow = "xl"
)

// CSSClass maps the variant to its shadow class; unknown falls back to md.
func (s Shadow) CSSClass() string {
	switch s {
	case ShadowNone:
		return "shadow-none"
	case ShadowSm:
		return "shadow-sm"
	case ShadowMd:
		return "shadow-md"
	case ShadowLg:
		return "shadow-lg"
	case ShadowXl:
		return "shadow-xl"
	default:
		return "shadow-md"
	}
}

// Width selects between filling the container and a fixed card width.
type Width string

const (
	WidthFull  Width = "full"
	WidthFixed Width = "fixed"
)

// Config is the customization state for one widget-authoring session. It is
// created with Defaults when the gallery opens, mutated field by field from
// the panel, and discarded unless exported as embed code.
type Config struct {
	WidgetTemplateID string    `json:"widget_template_id"`
	Theme            string    `json:"theme"`
	DarkMode         bool      `json:"dark_mode"`
	Rounded          Rounded   `json:"rounded"`
	ShowAvatar       bool      `json:"show_avatar"`
	ShowRating       bool      `json:"show_rating"`
	ShowCompany      bool      `json:"show_company"`
	Animation        Animation `json:"animation"`
	Position         string    `json:"position"`
	AutoRotate       bool      `json:"auto_rotate"`
	HighlightColor   string    `json:"highlight_color"` // accepted verbatim, any string
	FontStyle        string    `json:"font_style"`
	Width            Width     `json:"width"`
	Border           bool      `json:"border"`
	Shadow           Shadow    `json:"shadow"`
}

// Defaults returns the configuration every authoring session starts from.
func Defaults() Config {
	return Config{
		WidgetTemplateID: DefaultTemplateID,
		Theme:            "light",
		DarkMode:         false,
		Rounded:          RoundedMd,
		ShowAvatar:       true,
		ShowRating:       true,
		ShowCompany:      true,
		Animation:        AnimationFade,
		Position:         "bottom-right",
		AutoRotate:       false,
		HighlightColor:   "#6D28D9",
		FontStyle:        "sans",
		Width:            WidthFull,
		Border:           true,
		Shadow:           ShadowMd,
	}
}

// Set returns a copy of cfg with the named field set from its string form,
// matching how the customization panel patches one field at a time. Enum
// fields are stored unvalidated; an unrecognized value resolves to the
// default class at render time. Unknown field names leave the copy
// unchanged.
func Set(cfg Config, field, value string) Config {
	switch field {
	case "widget_template_id":
		cfg.WidgetTemplateID = value
	case "theme":
		cfg.Theme = value
	case "dark_mode":
		cfg.DarkMode = parseBool(value)
	case "rounded":
		cfg.Rounded = Rounded(value)
	case "show_avatar":
		cfg.ShowAvatar = parseBool(value)
	case "show_rating":
		cfg.ShowRating = parseBool(value)
	case "show_company":
		cfg.ShowCompany = parseBool(value)
	case "animation":
		cfg.Animation = Animation(value)
	case "position":
		cfg.Position = value
	case "auto_rotate":
		cfg.AutoRotate = parseBool(value)
	case "highlight_color":
		cfg.HighlightColor = value
	case "font_style":
		cfg.FontStyle = value
	case "width":
		cfg.Width = Width(value)
	case "border":
		cfg.Border = parseBool(value)
	case "shadow":
		cfg.Shadow = Shadow(value)
	}
	return cfg
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
