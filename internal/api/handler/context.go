package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/api/middleware"
	"github.com/zonehead/commerce-api/internal/core/domain"
)

// currentActor returns the actor resolved by the Auth middleware. Its
// absence means the route was mounted without Auth.
func currentActor(c echo.Context) (*domain.Actor, error) {
	actor, _ := c.Get(middleware.ActorKey).(*domain.Actor)
	if actor == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}

func currentClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// bindAndValidate decodes the request into req and runs the struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type messageResponse struct {
	Message string `json:"message"`
}
