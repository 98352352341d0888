package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"miniter/internal/errors"
	"miniter/internal/middleware"
	"miniter/internal/service"
)

// FollowHandler handles follow and unfollow endpoints.
type FollowHandler struct {
	followService service.FollowService
}

// NewFollowHandler creates a new follow handler.
func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// FollowRequest names the user to follow.
type FollowRequest struct {
	Follow uint `json:"follow" validate:"required"`
}

// UnfollowRequest names the user to unfollow.
type UnfollowRequest struct {
	Unfollow uint `json:"unfollow" validate:"required"`
}

// Follow godoc
// @Summary Follow a user
// @Tags follows
// @Accept json
// @Param Authorization header string true "Access token"
// @Param request body FollowRequest true "Target user"
// @Success 200 "empty body"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 "empty body"
// @Failure 500 {object} errors.ErrorResponse
// @Router /follow [post]
func (h *FollowHandler) Follow(c echo.Context) error {
	var req FollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.followService.Follow(c.Request().Context(), middleware.UserID(c), req.Follow); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusOK)
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags follows
// @Accept json
// @Param Authorization header string true "Access token"
// @Param request body UnfollowRequest true "Target user"
// @Success 200 "empty body"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 "empty body"
// @Failure 500 {object} errors.ErrorResponse
// @Router /unfollow [post]
func (h *FollowHandler) Unfollow(c echo.Context) error {
	var req UnfollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.followService.Unfollow(c.Request().Context(), middleware.UserID(c), req.Unfollow); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusOK)
}
