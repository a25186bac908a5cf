package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/shoutbase/shoutbase/internal/api/auth"
	"github.com/shoutbase/shoutbase/pkg/models"
)

// TestimonialHandlers serves the collected-testimonial inventory the widget
// and embed endpoints reference by id.
type TestimonialHandlers struct {
	db *sql.DB
}

func NewTestimonialHandlers(db *sql.DB) *TestimonialHandlers {
	return &TestimonialHandlers{db: db}
}

// CreateTestimonialRequest records one collected testimonial.
type CreateTestimonialRequest struct {
	AuthorName   string  `json:"author_name"`
	AuthorHandle *string `json:"author_handle,omitempty"`
	Company      *string `json:"company,omitempty"`
	Body         string  `json:"body"`
	Rating       *int    `json:"rating,omitempty"`
	Source       string  `json:"source"`
}

func (h *TestimonialHandlers) orgForUser(c echo.Context) (int64, bool) {
	user := auth.CurrentUser(c)
	if user == nil {
		return 0, false
	}
	var orgID int64
	err := h.db.QueryRowContext(c.Request().Context(),
		`SELECT org_id FROM org_members WHERE user_id = $1 ORDER BY org_id LIMIT 1`,
		user.ID,
	).Scan(&orgID)
	if err != nil {
		return 0, false
	}
	return orgID, true
}

// List returns the org's testimonials, newest first.
func (h *TestimonialHandlers) List(c echo.Context) error {
	orgID, ok := h.orgForUser(c)
	if !ok {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "No organization membership"})
	}

	rows, err := h.db.QueryContext(c.Request().Context(), `
		SELECT id, org_id, author_name, author_handle, author_avatar, company, body, rating, source, approved, collected_at, approved_at
		FROM testimonials WHERE org_id = $1 ORDER BY collected_at DESC
	`, orgID)
	if err != nil {
		log.Error().Err(err).Int64("org_id", orgID).Msg("Failed to list testimonials")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}
	defer rows.Close()

	out := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.OrgID, &t.AuthorName, &t.AuthorHandle, &t.AuthorAvatar, &t.Company, &t.Body, &t.Rating, &t.Source, &t.Approved, &t.CollectedAt, &t.ApprovedAt); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}

	return c.JSON(http.StatusOK, map[string][]models.Testimonial{"testimonials": out})
}

// Create records a testimonial and returns it with its generated id.
func (h *TestimonialHandlers) Create(c echo.Context) error {
	orgID, ok := h.orgForUser(c)
	if !ok {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "No organization membership"})
	}

	var req CreateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.AuthorName == "" || req.Body == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "author_name and body are required",
		})
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "rating must be between 1 and 5",
		})
	}
	if req.Source == "" {
		req.Source = "custom-page"
	}

	t := models.Testimonial{
		ID:           uuid.NewString(),
		OrgID:        orgID,
		AuthorName:   req.AuthorName,
		AuthorHandle: req.AuthorHandle,
		Company:      req.Company,
		Body:         req.Body,
		Rating:       req.Rating,
		Source:       req.Source,
		CollectedAt:  time.Now().UTC(),
	}

	_, err := h.db.ExecContext(c.Request().Context(), `
		INSERT INTO testimonials (id, org_id, author_name, author_handle, company, body, rating, source, approved, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)
	`, t.ID, t.OrgID, t.AuthorName, t.AuthorHandle, t.Company, t.Body, t.Rating, t.Source, t.CollectedAt)
	if err != nil {
		log.Error().Err(err).Int64("org_id", orgID).Msg("Failed to store testimonial")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}

	return c.JSON(http.StatusCreated, t)
}
