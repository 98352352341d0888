package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"miniter/internal/auth"
	"miniter/internal/handler"
	"miniter/internal/middleware"
	"miniter/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	tweetHandler *handler.TweetHandler,
	followHandler *handler.FollowHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/sign-up", authHandler.SignUp)
	e.POST("/login", authHandler.Login)
	e.GET("/timeline/:user_id", tweetHandler.Timeline)

	// Secured routes (raw token in the Authorization header)
	secured := e.Group("", middleware.Auth(tokens, users))
	secured.POST("/tweet", tweetHandler.Post)
	secured.POST("/follow", followHandler.Follow)
	secured.POST("/unfollow", followHandler.Unfollow)
	secured.GET("/timeline", tweetHandler.MyTimeline)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
