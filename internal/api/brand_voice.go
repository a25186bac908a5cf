package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/shoutbase/shoutbase/internal/api/auth"
	"github.com/shoutbase/shoutbase/internal/branddata"
	"github.com/shoutbase/shoutbase/internal/templates"
)

// BrandVoiceHandlers serves the brand document and channel template editing.
type BrandVoiceHandlers struct {
	store        *branddata.Store
	db           *sql.DB
	defaultBrand string
}

func NewBrandVoiceHandlers(store *branddata.Store, db *sql.DB, defaultBrand string) *BrandVoiceHandlers {
	return &BrandVoiceHandlers{store: store, db: db, defaultBrand: defaultBrand}
}

// TemplateResponse carries one template slot's stored value and its live
// preview with sample substitutions applied.
type TemplateResponse struct {
	Template string `json:"template"`
	Preview  string `json:"preview"`
}

// PutTemplateRequest updates one template slot.
type PutTemplateRequest struct {
	Template string `json:"template"`
}

// PreviewRequest renders an unsaved template with the preview context.
type PreviewRequest struct {
	Template string `json:"template"`
}

// orgForUser resolves the caller's organization. Single-org membership for
// now; the first membership wins.
func (h *BrandVoiceHandlers) orgForUser(c echo.Context) (int64, error) {
	user := auth.CurrentUser(c)
	if user == nil {
		return 0, fmt.Errorf("no authenticated user")
	}
	var orgID int64
	err := h.db.QueryRowContext(c.Request().Context(),
		`SELECT org_id FROM org_members WHERE user_id = $1 ORDER BY org_id LIMIT 1`,
		user.ID,
	).Scan(&orgID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve org: %w", err)
	}
	return orgID, nil
}

func slotFromRequest(c echo.Context) (templates.Channel, templates.MessageType, templates.Platform) {
	channel := templates.Channel(c.Param("channel"))
	messageType := templates.MessageType(c.Param("type"))
	platform := templates.Platform(c.QueryParam("platform"))
	return channel, messageType, platform
}

func (h *BrandVoiceHandlers) brandName(doc *branddata.Document) string {
	if name := doc.BrandName(); name != "" {
		return name
	}
	return h.defaultBrand
}

// GetDocument returns the caller's full brand document, seeded with
// defaults for any slot never written.
func (h *BrandVoiceHandlers) GetDocument(c echo.Context) error {
	orgID, err := h.orgForUser(c)
	if err != nil {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "No organization membership"})
	}

	doc, err := h.store.Load(c.Request().Context(), orgID)
	if err != nil {
		log.Error().Err(err).Int64("org_id", orgID).Msg("Failed to load brand document")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load brand data"})
	}

	return c.JSON(http.StatusOK, doc.Snapshot())
}

// GetTemplate returns the stored template for a slot plus its preview.
func (h *BrandVoiceHandlers) GetTemplate(c echo.Context) error {
	orgID, err := h.orgForUser(c)
	if err != nil {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "No organization membership"})
	}
	channel, messageType, platform := slotFromRequest(c)

	doc, err := h.store.Load(c.Request().Context(), orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load brand data"})
	}

	tpl := doc.GetString(branddata.TemplatePath(channel, messageType, platform)...)
	return c.JSON(http.StatusOK, TemplateResponse{
		Template: tpl,
		Preview:  templates.Resolve(tpl, templates.PreviewContext(h.brandName(doc))),
	})
}

// PutTemplate stores a template for a slot. Social templates must fit the
// platform's character budget once rendered.
func (h *BrandVoiceHandlers) PutTemplate(c echo.Context) error {
	orgID, err := h.orgForUser(c)
	if err != nil {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "No organization membership"})
	}
	channel, messageType, platform := slotFromRequest(c)

	var req PutTemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	doc, err := h.store.Load(c.Request().Context(), orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load brand data"})
	}

	rendered := templates.Resolve(req.Template, templates.PreviewContext(h.brandName(doc)))
	if !templates.FitsLimit(platform, rendered) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": fmt.Sprintf("Rendered message exceeds the %d character limit for %s", templates.CharacterLimit(platform), platform),
		})
	}

	doc.Set(branddata.TemplatePath(channel, messageType, platform), req.Template)
	if err := h.store.Save(c.Request().Context(), orgID, doc); err != nil {
		log.Error().Err(err).Int64("org_id", orgID).Msg("Failed to save brand document")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save brand data"})
	}

	return c.JSON(http.StatusOK, TemplateResponse{
		Template: req.Template,
		Preview:  rendered,
	})
}

// GetDefault returns the registry default for a slot. Unregistered slots
// return an empty template rather than 404, matching the registry contract.
func (h *BrandVoiceHandlers) GetDefault(c echo.Context) error {
	channel, messageType, platform := slotFromRequest(c)
	return c.JSON(http.StatusOK, map[string]string{
		"template": templates.GetDefault(channel, messageType, platform),
	})
}

// GetSuggestions returns the curated alternatives for a slot.
func (h *BrandVoiceHandlers) GetSuggestions(c echo.Context) error {
	channel, messageType, platform := slotFromRequest(c)
	suggestions := templates.ListSuggestions(channel, messageType, platform)
	if suggestions == nil {
		suggestions = []string{}
	}
	return c.JSON(http.StatusOK, map[string][]string{"suggestions": suggestions})
}

// Preview renders an unsaved template with the caller's brand context.
func (h *BrandVoiceHandlers) Preview(c echo.Context) error {
	orgID, err := h.orgForUser(c)
	if err != nil {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "No organization membership"})
	}

	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	doc, err := h.store.Load(c.Request().Context(), orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load brand data"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"preview": templates.Resolve(req.Template, templates.PreviewContext(h.brandName(doc))),
	})
}
