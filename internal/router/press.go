package router

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/press-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/press-hunter/internal/dto"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
	"github.com/labstack/echo/v4"
)

type PressRouter struct {
	e      *echo.Echo
	reader storage.Reader
}

func NewPressRouter(e *echo.Echo, reader storage.Reader) *PressRouter {
	return &PressRouter{
		e:      e,
		reader: reader,
	}
}

func (r *PressRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.GET("/teams/:teamId/press-comments", r.listByTeam)
	g.GET("/fixtures/:fixtureId/press-comments", r.listByFixture)
}

func (r *PressRouter) listByTeam(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}

	limit := storage.DefaultListSize
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return apperr.NewFieldValidation("limit", "must be a positive integer")
		}
	}

	comments, err := r.reader.ListByTeam(c.Request().Context(), teamID, storage.ClampLimit(limit))
	if err != nil {
		return fmt.Errorf("failed to list comments for team %d: %w", teamID, err)
	}

	return c.JSON(http.StatusOK, dto.NewPressCommentList(comments))
}

func (r *PressRouter) listByFixture(c echo.Context) error {
	fixtureID, err := pathID(c, "fixtureId")
	if err != nil {
		return err
	}

	comments, err := r.reader.ListByFixture(c.Request().Context(), fixtureID)
	if err != nil {
		return fmt.Errorf("failed to list comments for fixture %d: %w", fixtureID, err)
	}

	return c.JSON(http.StatusOK, dto.NewPressCommentList(comments))
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, apperr.NewFieldValidation(name, "must be a positive integer")
	}
	return id, nil
}
