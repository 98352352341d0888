package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"miniter/internal/errors"
	"miniter/internal/middleware"
	"miniter/internal/model"
	"miniter/internal/service"
)

// TweetHandler handles tweet and timeline endpoints.
type TweetHandler struct {
	tweetService service.TweetService
}

// NewTweetHandler creates a new tweet handler.
func NewTweetHandler(tweetService service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// TweetRequest represents a tweet post. Any user_id in the body is
// ignored; the author comes from the authenticated context.
type TweetRequest struct {
	Tweet string `json:"tweet" validate:"required"`
}

// TweetResponse represents a successful tweet post.
type TweetResponse struct {
	Msg        string `json:"msg"`
	StatusCode int    `json:"status_code"`
}

// TimelineResponse represents a timeline.
type TimelineResponse struct {
	UserID   uint                  `json:"user_id"`
	Timeline []model.TimelineEntry `json:"timeline"`
}

// Post godoc
// @Summary Post a tweet as the authenticated user
// @Tags tweets
// @Accept json
// @Produce json
// @Param Authorization header string true "Access token"
// @Param request body TweetRequest true "Tweet text, 1-300 characters"
// @Success 200 {object} TweetResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 "empty body"
// @Failure 500 {object} errors.ErrorResponse
// @Router /tweet [post]
func (h *TweetHandler) Post(c echo.Context) error {
	var req TweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.tweetService.Post(c.Request().Context(), middleware.UserID(c), req.Tweet); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, TweetResponse{
		Msg:        "tweet posted successfully",
		StatusCode: http.StatusOK,
	})
}

// Timeline godoc
// @Summary Public timeline of a user
// @Tags tweets
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} TimelineResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /timeline/{user_id} [get]
func (h *TweetHandler) Timeline(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || id < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	return h.respondTimeline(c, uint(id))
}

// MyTimeline godoc
// @Summary Timeline of the authenticated user
// @Tags tweets
// @Produce json
// @Param Authorization header string true "Access token"
// @Success 200 {object} TimelineResponse
// @Failure 401 "empty body"
// @Failure 500 {object} errors.ErrorResponse
// @Router /timeline [get]
func (h *TweetHandler) MyTimeline(c echo.Context) error {
	return h.respondTimeline(c, middleware.UserID(c))
}

// respondTimeline shapes the timeline response. A user without tweets,
// existing or not, gets an empty timeline rather than an error.
func (h *TweetHandler) respondTimeline(c echo.Context, userID uint) error {
	entries, err := h.tweetService.Timeline(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to load timeline",
			Code:  "TIMELINE_FAILED",
		})
	}

	return c.JSON(http.StatusOK, TimelineResponse{
		UserID:   userID,
		Timeline: entries,
	})
}
