package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

// recordManager is the create/list/delete surface of a record service.
type recordManager[T any] interface {
	Create(ctx context.Context, actor *domain.Actor, rec *T) (*T, error)
	List(ctx context.Context, actor *domain.Actor) ([]*T, error)
	Delete(ctx context.Context, actor *domain.Actor, id string) error
}

func listRecords[T any](c echo.Context, svc recordManager[T]) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	recs, err := svc.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if recs == nil {
		recs = []*T{}
	}
	return c.JSON(http.StatusOK, recs)
}

func deleteRecord[T any](c echo.Context, svc recordManager[T], kind string) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	if err := svc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: kind + " deleted successfully"})
}
