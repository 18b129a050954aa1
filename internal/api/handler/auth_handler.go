package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
)

// AuthHandler serves signup, signin, signout and profile for one role.
type AuthHandler struct {
	authService   ports.AuthService
	role          domain.Role
	signupEnabled bool
}

// NewAuthHandler binds the auth endpoints to role. signupEnabled is ignored
// for zones, which are created by admins.
func NewAuthHandler(authService ports.AuthService, role domain.Role, signupEnabled bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		role:          role,
		signupEnabled: signupEnabled && role != domain.RoleZone,
	}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type zoneSigninRequest struct {
	ZoneID   string `json:"zoneId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   domain.Role       `json:"role"`
	Status domain.ZoneStatus `json:"status,omitempty"`
	Token  string            `json:"token"`
}

func newAuthResponse(a *domain.Actor, token string) authResponse {
	return authResponse{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Role:   a.Role,
		Status: a.Status,
		Token:  token,
	}
}

// Signup creates an account and returns it with a token.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /admin/signup [post]
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	if !h.signupEnabled {
		return echo.NewHTTPError(http.StatusForbidden, "signup is disabled")
	}

	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, token, err := h.authService.Signup(c.Request().Context(), h.role, req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newAuthResponse(actor, token))
}

// Signin authenticates by email and password.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /admin/signin [post]
// @Router       /signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.signin(c, req.Email, req.Password)
}

// ZoneSignin authenticates a zone by zoneId and password.
//
// @Summary      Zone sign in
// @Tags         zone
// @Accept       json
// @Produce      json
// @Param        body  body      zoneSigninRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /zone/signin [post]
func (h *AuthHandler) ZoneSignin(c echo.Context) error {
	var req zoneSigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.signin(c, req.ZoneID, req.Password)
}

func (h *AuthHandler) signin(c echo.Context, login, password string) error {
	actor, token, err := h.authService.Signin(c.Request().Context(), h.role, login, password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAuthResponse(actor, token))
}

// Signout revokes the presented token.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /admin/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	if err := h.authService.Signout(c.Request().Context(), claims); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "signed out successfully"})
}

// Profile returns the authenticated actor.
//
// @Summary      Current profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Actor
// @Failure      401  {object}  messageResponse
// @Router       /admin/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, actor)
}
