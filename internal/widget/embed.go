package widget

import (
	"strconv"
	"strings"
)

// ScriptURL is the loader every embed snippet references.
const ScriptURL = "https://cdn.shoutbase.io/widget/v1/embed.js"

// PlaceholderTestimonialID is emitted when no testimonial has been chosen
// yet, so the copied snippet stays paste-able and self-describing.
const PlaceholderTestimonialID = "YOUR_TESTIMONIAL_ID"

// Attribute values are escaped before interpolation. The dashboard accepts
// highlight colors and ids verbatim, so the snippet must not trust them.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// Generate serializes cfg plus a testimonial id into a self-contained embed
// snippet: one div carrying a data attribute per configuration field in a
// fixed order, followed by the loader script tag. Identical inputs always
// produce byte-identical output.
func Generate(cfg Config, testimonialID string) string {
	if testimonialID == "" {
		testimonialID = PlaceholderTestimonialID
	}

	var b strings.Builder
	b.WriteString(`<div class="shoutbase-widget"`)
	writeAttr(&b, "data-widget-type", ResolveTemplateID(cfg.WidgetTemplateID))
	writeAttr(&b, "data-testimonial-id", testimonialID)
	writeAttr(&b, "data-theme", cfg.Theme)
	writeAttr(&b, "data-dark-mode", strconv.FormatBool(cfg.DarkMode))
	writeAttr(&b, "data-rounded", string(cfg.Rounded))
	writeAttr(&b, "data-show-avatar", strconv.FormatBool(cfg.ShowAvatar))
	writeAttr(&b, "data-show-rating", strconv.FormatBool(cfg.ShowRating))
	writeAttr(&b, "data-show-company", strconv.FormatBool(cfg.ShowCompany))
	writeAttr(&b, "data-animation", string(cfg.Animation))
	writeAttr(&b, "data-position", cfg.Position)
	writeAttr(&b, "data-auto-rotate", strconv.FormatBool(cfg.AutoRotate))
	writeAttr(&b, "data-highlight-color", cfg.HighlightColor)
	writeAttr(&b, "data-font-style", cfg.FontStyle)
	writeAttr(&b, "data-width", string(cfg.Width))
	writeAttr(&b, "data-border", strconv.FormatBool(cfg.Border))
	writeAttr(&b, "data-shadow", string(cfg.Shadow))
	b.WriteString("></div>\n")
	b.WriteString(`<script src="` + ScriptURL + `" async></script>`)
	return b.String()
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(attrEscaper.Replace(value))
	b.WriteString(`"`)
}
