package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "miniter/internal/errors"
	"miniter/internal/model"
)

// MockTweetService is a mock implementation of service.TweetService.
type MockTweetService struct {
	mock.Mock
}

func (m *MockTweetService) Post(ctx context.Context, userID uint, text string) error {
	args := m.Called(ctx, userID, text)
	return args.Error(0)
}

func (m *MockTweetService) Timeline(ctx context.Context, userID uint) ([]model.TimelineEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimelineEntry), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTweetHandler_Post_UsesContextIdentity(t *testing.T) {
	mockSvc := new(MockTweetService)
	// The author must be the authenticated user, never the body's user_id.
	mockSvc.On("Post", mock.Anything, uint(1), "hello").Return(nil)

	h := NewTweetHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodPost, "/tweet", `{"tweet":"hello","user_id":999}`)
	c.Set("user_id", uint(1))

	require.NoError(t, h.Post(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TweetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Msg)

	mockSvc.AssertExpectations(t)
}

func TestTweetHandler_Post_TooLong(t *testing.T) {
	mockSvc := new(MockTweetService)
	mockSvc.On("Post", mock.Anything, uint(1), mock.Anything).Return(apperrors.ErrTweetTooLong)

	h := NewTweetHandler(mockSvc)
	body := `{"tweet":"` + strings.Repeat("a", 301) + `"}`
	c, _ := newTestContext(t, http.MethodPost, "/tweet", body)
	c.Set("user_id", uint(1))

	err := h.Post(c)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTweetHandler_Timeline(t *testing.T) {
	entries := []model.TimelineEntry{{UserID: 2, Tweet: "I am sinbee!"}}

	mockSvc := new(MockTweetService)
	mockSvc.On("Timeline", mock.Anything, uint(1)).Return(entries, nil)

	h := NewTweetHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodGet, "/timeline/1", "")
	c.SetParamNames("user_id")
	c.SetParamValues("1")

	require.NoError(t, h.Timeline(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":1,"timeline":[{"user_id":2,"tweet":"I am sinbee!"}]}`, rec.Body.String())
}

func TestTweetHandler_Timeline_EmptyIsNotAnError(t *testing.T) {
	mockSvc := new(MockTweetService)
	// Nonexistent users also yield an empty timeline.
	mockSvc.On("Timeline", mock.Anything, uint(42)).Return([]model.TimelineEntry{}, nil)

	h := NewTweetHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodGet, "/timeline/42", "")
	c.SetParamNames("user_id")
	c.SetParamValues("42")

	require.NoError(t, h.Timeline(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":42,"timeline":[]}`, rec.Body.String())
}

func TestTweetHandler_Timeline_BadParam(t *testing.T) {
	h := NewTweetHandler(new(MockTweetService))
	c, _ := newTestContext(t, http.MethodGet, "/timeline/abc", "")
	c.SetParamNames("user_id")
	c.SetParamValues("abc")

	err := h.Timeline(c)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTweetHandler_MyTimeline(t *testing.T) {
	mockSvc := new(MockTweetService)
	mockSvc.On("Timeline", mock.Anything, uint(7)).Return([]model.TimelineEntry{}, nil)

	h := NewTweetHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodGet, "/timeline", "")
	c.Set("user_id", uint(7))

	require.NoError(t, h.MyTimeline(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"timeline":[]}`, rec.Body.String())
}
