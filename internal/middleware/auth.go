package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"miniter/internal/auth"
	"miniter/internal/model"
	"miniter/internal/repository"
)

const (
	userIDKey = "user_id"
	userKey   = "auth_user"
)

// Auth guards protected routes. The Authorization header carries the raw
// token, no scheme prefix. A missing, malformed, tampered or expired
// token short-circuits with 401 and an empty body; the handler is never
// invoked. On success the authenticated identity is attached to the
// request-scoped context.
func Auth(tokens *auth.TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.Verify(token)
		},
		SuccessHandler: func(c echo.Context) {
			userID, _ := c.Get("user").(uint)
			c.Set(userIDKey, userID)
			// The account may have been deleted since the token was
			// issued; the identity still stands, with no profile.
			if user, err := users.FindByID(c.Request().Context(), userID); err == nil {
				c.Set(userKey, user)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.NoContent(http.StatusUnauthorized)
		},
	})
}

// UserID returns the authenticated user id attached by Auth.
func UserID(c echo.Context) uint {
	id, _ := c.Get(userIDKey).(uint)
	return id
}

// CurrentUser returns the resolved user record, or nil if the row no
// longer exists.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userKey).(*model.User)
	return user
}
