package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pigeonpulse/loft-api/internal/api/metrics"
	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

type AuthHandler struct {
	authService     ports.AuthService
	identityService ports.IdentityService
}

func NewAuthHandler(authService ports.AuthService, identityService ports.IdentityService) *AuthHandler {
	return &AuthHandler{authService: authService, identityService: identityService}
}

type loginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Registered bool   `json:"registered"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Registered: u.Registered(),
	}
}

// Login verifies an identity-provider credential and returns a bearer token.
//
// @Summary      Login with an identity provider credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Identity provider credential"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Credential)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredential):
			metrics.LoginsTotal.WithLabelValues("invalid_credential").Inc()
		case errors.Is(err, domain.ErrEmailNotVerified):
			metrics.LoginsTotal.WithLabelValues("email_unverified").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// Logout revokes the presented bearer token.
//
// @Summary      Logout and revoke the current token
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := ""
	if header := c.Request().Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			token = parts[1]
		}
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	if token != "" {
		metrics.TokensRevokedTotal.Inc()
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's profile and default loft.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		User: toUserResponse(p.User),
		Loft: loftResponse{
			ID:    p.Loft.ID,
			Name:  p.Loft.Name,
			Alias: p.Loft.Alias,
		},
		Role: string(p.Role),
	})
}

type meResponse struct {
	User userResponse `json:"user"`
	Loft loftResponse `json:"loft"`
	Role string       `json:"role"`
}

// SearchUser finds a user by email for sharing invitations, creating an
// invite placeholder when no account exists yet.
//
// @Summary      Search a user by email
// @Tags         auth
// @Produce      json
// @Param        email  query     string  true  "Email address"
// @Success      200    {object}  userResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/auth/users/search [get]
func (h *AuthHandler) SearchUser(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	user, err := h.identityService.SearchByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
