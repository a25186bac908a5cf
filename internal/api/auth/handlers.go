package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoutbase/shoutbase/internal/signup"
	"github.com/shoutbase/shoutbase/pkg/models"
)

// AuthHandlers contains the authentication handler methods
type AuthHandlers struct {
	tokenService *TokenService
	db           *sql.DB
}

// NewAuthHandlers creates a new authentication handlers instance
func NewAuthHandlers(tokenService *TokenService, db *sql.DB) *AuthHandlers {
	return &AuthHandlers{
		tokenService: tokenService,
		db:           db,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	User      *UserInfo  `json:"user"`
	TokenPair *TokenPair `json:"tokens"`
}

// UserInfo represents basic user information (no sensitive data)
type UserInfo struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// SignupRequest represents the two-step signup payload
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	InviteToken     string `json:"invite_token,omitempty"`
}

// SignupResponse represents the signup response. Redirect is set instead of
// the success step when the account was created already verified.
type SignupResponse struct {
	User     *UserInfo  `json:"user,omitempty"`
	Tokens   *TokenPair `json:"tokens,omitempty"`
	Redirect string     `json:"redirect,omitempty"`
}

// RefreshRequest represents the token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ResetRequestBody asks for a password reset email
type ResetRequestBody struct {
	Email string `json:"email"`
}

// ResetConfirmBody sets a new password using a reset token
type ResetConfirmBody struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// FieldErrorResponse carries field-keyed validation messages
type FieldErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func userInfo(u *models.User) *UserInfo {
	return &UserInfo{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// Login handles user authentication with email/password
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	user := &models.User{}
	err := h.db.QueryRow(`
		SELECT id, email, password_hash, name, is_active, email_verified, created_at, updated_at
		FROM users WHERE email = $1
	`, req.Email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.IsActive, &user.EmailVerified, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid email or password",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Database error",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid email or password",
		})
	}

	if !user.IsActive {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "Account is deactivated",
		})
	}

	tokenPair, err := h.tokenService.CreateTokenPair(user, c.Request().Header.Get("User-Agent"), c.RealIP())
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to create session")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create session",
		})
	}

	_, _ = h.db.Exec(`UPDATE users SET last_login_at = NOW() WHERE id = $1`, user.ID)

	return c.JSON(http.StatusOK, LoginResponse{
		User:      userInfo(user),
		TokenPair: tokenPair,
	})
}

// Signup creates an account by driving the signup wizard end to end:
// identity validation, credential validation, then account creation. Field
// errors come back keyed by field name; a verified-on-create account gets a
// redirect instead of the success step.
func (h *AuthHandlers) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	w := signup.New()
	w.SetFields(signup.Fields{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})

	if !w.Next() {
		return c.JSON(http.StatusUnprocessableEntity, FieldErrorResponse{Errors: w.Errors()})
	}

	var created *models.User
	outcome, err := w.Submit(c.Request().Context(), signup.SubmitterFunc(
		func(ctx context.Context, f signup.Fields) (signup.Result, error) {
			user, verified, err := h.createAccount(ctx, f, req.InviteToken)
			if err != nil {
				return signup.Result{}, err
			}
			created = user
			return signup.Result{AlreadyVerified: verified}, nil
		}))
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			return c.JSON(http.StatusConflict, FieldErrorResponse{
				Errors: map[string]string{"email": "An account with this email already exists"},
			})
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Signup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create account",
		})
	}
	if outcome == signup.OutcomeBlocked {
		return c.JSON(http.StatusUnprocessableEntity, FieldErrorResponse{Errors: w.Errors()})
	}

	tokenPair, err := h.tokenService.CreateTokenPair(created, c.Request().Header.Get("User-Agent"), c.RealIP())
	if err != nil {
		log.Error().Err(err).Int64("user_id", created.ID).Msg("Failed to create session after signup")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Account created but session could not be started",
		})
	}

	resp := SignupResponse{User: userInfo(created), Tokens: tokenPair}
	if outcome == signup.OutcomeRedirected {
		// Verified on create: skip the success screen entirely.
		resp.Redirect = "/dashboard"
	}
	return c.JSON(http.StatusCreated, resp)
}

var errEmailTaken = errors.New("email already registered")

// createAccount inserts the user row. A valid invite token makes the account
// verified from the start.
func (h *AuthHandlers) createAccount(ctx context.Context, f signup.Fields, inviteToken string) (*models.User, bool, error) {
	var exists int
	if err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, f.Email).Scan(&exists); err != nil {
		return nil, false, fmt.Errorf("failed to check email: %w", err)
	}
	if exists > 0 {
		return nil, false, errEmailTaken
	}

	verified := false
	if inviteToken != "" {
		hash := h.tokenService.hashToken(inviteToken)
		var inviteID int64
		err := h.db.QueryRowContext(ctx, `
			SELECT id FROM invites
			WHERE token_hash = $1 AND email = $2 AND expires_at > NOW() AND accepted_at IS NULL
		`, hash, f.Email).Scan(&inviteID)
		if err == nil {
			verified = true
			_, _ = h.db.ExecContext(ctx, `UPDATE invites SET accepted_at = NOW() WHERE id = $1`, inviteID)
		} else if err != sql.ErrNoRows {
			return nil, false, fmt.Errorf("failed to check invite: %w", err)
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{}
	err = h.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, name, is_active, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, $4, NOW(), NOW())
		RETURNING id, email, name, is_active, email_verified, created_at, updated_at
	`, f.Email, string(passwordHash), f.Name, verified).Scan(
		&user.ID, &user.Email, &user.Name, &user.IsActive, &user.EmailVerified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	return user, verified, nil
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandlers) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "refresh_token is required",
		})
	}

	pair, err := h.tokenService.RefreshTokens(req.RefreshToken, c.Request().Header.Get("User-Agent"), c.RealIP())
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid or expired refresh token",
		})
	}
	return c.JSON(http.StatusOK, pair)
}

// Logout revokes the current session
func (h *AuthHandlers) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token != "" {
		_ = h.tokenService.RevokeSession(token)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// RequestPasswordReset creates a reset token for the account. The response
// is identical whether or not the email exists.
func (h *AuthHandlers) RequestPasswordReset(c echo.Context) error {
	var req ResetRequestBody
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "email is required",
		})
	}

	accepted := map[string]string{"status": "If the account exists, a reset link has been sent"}

	var userID int64
	err := h.db.QueryRow(`SELECT id FROM users WHERE email = $1 AND is_active`, req.Email).Scan(&userID)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusAccepted, accepted)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}

	token, err := h.tokenService.generateRandomToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create reset token"})
	}

	_, err = h.db.Exec(`
		INSERT INTO password_resets (user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, NOW() + INTERVAL '1 hour', NOW())
	`, userID, h.tokenService.hashToken(token))
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to store reset token")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create reset token"})
	}

	// Mail delivery is the outbound mailer's job; the token is logged at
	// debug level for local development only.
	log.Debug().Int64("user_id", userID).Msg("Password reset token issued")

	return c.JSON(http.StatusAccepted, accepted)
}

// ResetPassword sets a new password using a reset token
func (h *AuthHandlers) ResetPassword(c echo.Context) error {
	var req ResetConfirmBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if len(req.NewPassword) < signup.MinPasswordLength {
		return c.JSON(http.StatusUnprocessableEntity, FieldErrorResponse{
			Errors: map[string]string{"new_password": "Password must be at least 8 characters"},
		})
	}

	var userID, resetID int64
	err := h.db.QueryRow(`
		SELECT id, user_id FROM password_resets
		WHERE token_hash = $1 AND expires_at > NOW() AND used_at IS NULL
	`, h.tokenService.hashToken(req.Token)).Scan(&resetID, &userID)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid or expired reset token",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to hash password"})
	}

	if _, err := h.db.Exec(`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, string(passwordHash), userID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update password"})
	}
	_, _ = h.db.Exec(`UPDATE password_resets SET used_at = NOW() WHERE id = $1`, resetID)
	// All outstanding sessions die with the old password.
	_, _ = h.db.Exec(`DELETE FROM auth_tokens WHERE user_id = $1`, userID)

	return c.JSON(http.StatusOK, map[string]string{"status": "password updated"})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
