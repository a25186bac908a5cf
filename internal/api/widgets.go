package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoutbase/shoutbase/internal/widget"
)

// WidgetHandlers serves the widget gallery and embed-code generation.
type WidgetHandlers struct{}

func NewWidgetHandlers() *WidgetHandlers { return &WidgetHandlers{} }

// EmbedRequest asks for an embed snippet. Config fields not supplied keep
// their defaults; an empty testimonial id produces a placeholder snippet.
type EmbedRequest struct {
	Config        widget.Config `json:"config"`
	TestimonialID string        `json:"testimonial_id"`
}

// EmbedResponse carries the generated snippet.
type EmbedResponse struct {
	Snippet string `json:"snippet"`
}

// ListTemplates returns the widget gallery.
func (h *WidgetHandlers) ListTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]widget.Template{
		"templates": widget.Catalog(),
	})
}

// GenerateEmbed serializes the configuration into an embed snippet.
func (h *WidgetHandlers) GenerateEmbed(c echo.Context) error {
	req := EmbedRequest{Config: widget.Defaults()}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	return c.JSON(http.StatusOK, EmbedResponse{
		Snippet: widget.Generate(req.Config, req.TestimonialID),
	})
}

// PatchConfigRequest applies one customization-panel change to a config.
type PatchConfigRequest struct {
	Config widget.Config `json:"config"`
	Field  string        `json:"field"`
	Value  string        `json:"value"`
}

// PatchConfig sets a single field from its string form and returns the
// updated configuration. Enum values are stored as sent; unknown ones
// resolve to the default rendering class later.
func (h *WidgetHandlers) PatchConfig(c echo.Context) error {
	req := PatchConfigRequest{Config: widget.Defaults()}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	return c.JSON(http.StatusOK, map[string]widget.Config{
		"config": widget.Set(req.Config, req.Field, req.Value),
	})
}
