package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"authdemo/internal/controller"
	"authdemo/internal/errors"
)

// ClientCookie names the cookie that identifies a browser's UI state.
const ClientCookie = "authdemo_client"

const clientCookieMaxAge = 30 * 24 * time.Hour

// FormHandler exposes the form controller actions over HTTP.
type FormHandler struct {
	registry *controller.Registry
}

// NewFormHandler creates a new form handler.
func NewFormHandler(registry *controller.Registry) *FormHandler {
	return &FormHandler{registry: registry}
}

// LoginRequest represents a login form submission.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// SignupRequest represents a signup form submission.
type SignupRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// ResetRequest represents a forgot-password form submission.
type ResetRequest struct {
	Email           string `json:"email" form:"email"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// StateResponse wraps the UI state, plus the error of a failed action.
type StateResponse struct {
	State controller.State      `json:"state"`
	Error *errors.ErrorResponse `json:"error,omitempty"`
}

// State godoc
// @Summary Current UI state of the calling client
// @Tags ui
// @Produce json
// @Success 200 {object} StateResponse
// @Router /state [get]
func (h *FormHandler) State(c echo.Context) error {
	ctrl := h.controllerFor(c)
	return c.JSON(http.StatusOK, StateResponse{State: ctrl.State()})
}

// Notifications godoc
// @Summary Visible notifications of the calling client
// @Tags ui
// @Produce json
// @Success 200 {array} controller.Notification
// @Router /notifications [get]
func (h *FormHandler) Notifications(c echo.Context) error {
	ctrl := h.controllerFor(c)
	return c.JSON(http.StatusOK, ctrl.Notifications())
}

// ShowPanel godoc
// @Summary Switch the active panel
// @Tags ui
// @Produce json
// @Param panel path string true "login, signup or forgot"
// @Success 200 {object} StateResponse
// @Failure 404 {object} StateResponse
// @Router /panels/{panel} [post]
func (h *FormHandler) ShowPanel(c echo.Context) error {
	ctrl := h.controllerFor(c)
	err := ctrl.ShowPanel(controller.Panel(c.Param("panel")))
	return h.respond(c, ctrl, err, http.StatusOK)
}

// ToggleVisibility godoc
// @Summary Toggle masking of a password field
// @Tags ui
// @Produce json
// @Param field path string true "Password field id, e.g. login-password"
// @Success 200 {object} StateResponse
// @Failure 404 {object} StateResponse
// @Router /fields/{field}/visibility [post]
func (h *FormHandler) ToggleVisibility(c echo.Context) error {
	ctrl := h.controllerFor(c)
	_, err := ctrl.TogglePasswordVisibility(c.Param("field"))
	return h.respond(c, ctrl, err, http.StatusOK)
}

// Login godoc
// @Summary Submit the login form
// @Tags forms
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} StateResponse
// @Failure 400 {object} StateResponse
// @Failure 401 {object} StateResponse
// @Failure 500 {object} StateResponse
// @Router /forms/login [post]
func (h *FormHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctrl := h.controllerFor(c)
	err := ctrl.Login(c.Request().Context(), req.Email, req.Password)
	return h.respond(c, ctrl, err, http.StatusOK)
}

// Signup godoc
// @Summary Submit the signup form
// @Tags forms
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 201 {object} StateResponse
// @Failure 400 {object} StateResponse
// @Failure 409 {object} StateResponse
// @Failure 500 {object} StateResponse
// @Router /forms/signup [post]
func (h *FormHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctrl := h.controllerFor(c)
	err := ctrl.Signup(c.Request().Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	return h.respond(c, ctrl, err, http.StatusCreated)
}

// Reset godoc
// @Summary Submit the forgot-password form
// @Tags forms
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Email and new password"
// @Success 200 {object} StateResponse
// @Failure 400 {object} StateResponse
// @Failure 404 {object} StateResponse
// @Failure 500 {object} StateResponse
// @Router /forms/forgot [post]
func (h *FormHandler) Reset(c echo.Context) error {
	var req ResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctrl := h.controllerFor(c)
	err := ctrl.Reset(c.Request().Context(), req.Email, req.NewPassword, req.ConfirmPassword)
	return h.respond(c, ctrl, err, http.StatusOK)
}

// Logout godoc
// @Summary Log out and reset all forms
// @Tags forms
// @Produce json
// @Success 200 {object} StateResponse
// @Router /logout [post]
func (h *FormHandler) Logout(c echo.Context) error {
	ctrl := h.controllerFor(c)
	ctrl.Logout()
	return c.JSON(http.StatusOK, StateResponse{State: ctrl.State()})
}

// controllerFor resolves the caller's controller, issuing a client cookie on
// first contact.
func (h *FormHandler) controllerFor(c echo.Context) *controller.FormController {
	id := ""
	if cookie, err := c.Cookie(ClientCookie); err == nil {
		if parsed, err := uuid.Parse(cookie.Value); err == nil {
			id = parsed.String()
		}
	}
	if id == "" {
		id = uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     ClientCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   int(clientCookieMaxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return h.registry.Get(id)
}

func (h *FormHandler) respond(c echo.Context, ctrl *controller.FormController, err error, okStatus int) error {
	if err == nil {
		return c.JSON(okStatus, StateResponse{State: ctrl.State()})
	}
	httpErr := errors.MapErrorToHTTP(err)
	resp := httpErr.ToErrorResponse()
	return c.JSON(httpErr.StatusCode, StateResponse{State: ctrl.State(), Error: &resp})
}
