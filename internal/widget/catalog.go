package widget

// DefaultTemplateID is the gallery template a session starts from and the
// fallback for unknown template ids.
const DefaultTemplateID = "card"

// Template describes one entry in the widget gallery.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog returns the widget gallery in display order.
func Catalog() []Template {
	return []Template{
		{ID: "card", Name: "Card", Description: "Single testimonial card with avatar and rating"},
		{ID: "quote", Name: "Quote", Description: "Large pull-quote layout, text forward"},
		{ID: "minimal", Name: "Minimal", Description: "Compact single line, no chrome"},
		{ID: "carousel", Name: "Carousel", Description: "Rotating set of testimonials"},
		{ID: "grid", Name: "Grid", Description: "Masonry wall of testimonials"},
		{ID: "spotlight", Name: "Spotlight", Description: "One featured testimonial with accent background"},
	}
}

// ResolveTemplateID returns id when it names a catalog template and
// DefaultTemplateID otherwise.
func ResolveTemplateID(id string) string {
	for _, t := range Catalog() {
		if t.ID == id {
			return id
		}
	}
	return DefaultTemplateID
}
