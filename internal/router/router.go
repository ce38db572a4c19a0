package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"authdemo/internal/handler"
)

// MaxBodySize caps request bodies. Field contents are otherwise judged only
// by the form rules, so a long but well-formed email still gets a form answer.
const MaxBodySize = "64K"

// Register wires routes and middleware.
func Register(e *echo.Echo, formHandler *handler.FormHandler) error {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(MaxBodySize))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/state", formHandler.State)
	api.GET("/notifications", formHandler.Notifications)
	api.POST("/panels/:panel", formHandler.ShowPanel)
	api.POST("/fields/:field/visibility", formHandler.ToggleVisibility)

	api.POST("/forms/login", formHandler.Login)
	api.POST("/forms/signup", formHandler.Signup)
	api.POST("/forms/forgot", formHandler.Reset)
	api.POST("/logout", formHandler.Logout)

	return nil
}
