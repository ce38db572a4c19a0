package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "authdemo/internal/errors"
	"authdemo/internal/logging"
	"authdemo/internal/model"
	"authdemo/internal/service"
)

// Panel is one of the mutually exclusive authentication views.
type Panel string

const (
	PanelLogin  Panel = "login"
	PanelSignup Panel = "signup"
	PanelForgot Panel = "forgot"
)

// Panels lists every panel in display order.
var Panels = []Panel{PanelLogin, PanelSignup, PanelForgot}

// ParsePanel accepts "login", "signup", "forgot" and their "-form" element ids.
func ParsePanel(s string) (Panel, error) {
	for _, p := range Panels {
		if s == string(p) || s == string(p)+"-form" {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownPanel, s)
}

// PasswordFields are the inputs whose masking can be toggled.
var PasswordFields = []string{
	"login-password",
	"signup-password",
	"signup-confirm",
	"forgot-password",
	"forgot-confirm",
}

const (
	iconMasked  = "👁"
	iconVisible = "🙈"

	msgSignupDone = "Account created successfully. You can login now with your credentials."
	msgResetDone  = "Password updated successfully. You can login now."
	msgInternal   = "Something went wrong. Please try again."

	toastSignupDone = "Account created successfully"
	toastResetDone  = "Password updated successfully"
	toastLoggedOut  = "You have been logged out."
	toastInternal   = "Unexpected error. Please try again."
)

// Options tunes controller timing. ClientIdleTimeout only applies to a
// Registry; zero keeps clients until Close.
type Options struct {
	PanelSwitchDelay  time.Duration
	NotificationTTL   time.Duration
	ClientIdleTimeout time.Duration
}

// FormMessages are the inline texts under one form.
type FormMessages struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

// FieldView describes how a password input is rendered.
type FieldView struct {
	Field     string `json:"field"`
	Visible   bool   `json:"visible"`
	InputType string `json:"input_type"`
	Icon      string `json:"icon"`
}

// Welcome is the authenticated view.
type Welcome struct {
	Name    string `json:"name"`
	Subtext string `json:"subtext"`
	Email   string `json:"email"`
}

// State is a snapshot of everything the UI renders for one client.
type State struct {
	Panel         Panel                  `json:"panel"`
	Authenticated bool                   `json:"authenticated"`
	Welcome       *Welcome               `json:"welcome,omitempty"`
	Messages      map[Panel]FormMessages `json:"messages"`
	Values        map[Panel]FormValues   `json:"values"`
	Fields        []FieldView            `json:"fields"`
	PendingPanel  Panel                  `json:"pending_panel,omitempty"`
	Notifications []Notification         `json:"notifications"`
}

// FormValues are the non-secret field values kept after a submission, the
// way a browser keeps what was typed until the form is reset.
type FormValues struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// FormController owns one client's UI state and drives the auth service in
// response to form actions. Each action holds the controller lock for its
// whole run, so actions on one client never interleave.
type FormController struct {
	mu       sync.Mutex
	auth     service.AuthService
	notifier *Notifier
	delay    time.Duration

	panel    Panel
	user     *model.User
	messages map[Panel]*FormMessages
	values   map[Panel]*FormValues
	visible  map[string]bool

	pending      *time.Timer
	pendingPanel Panel
	pendingGen   uint64
}

// NewFormController creates a controller showing the login panel.
func NewFormController(auth service.AuthService, opts Options) *FormController {
	c := &FormController{
		auth:     auth,
		notifier: NewNotifier(opts.NotificationTTL),
		delay:    opts.PanelSwitchDelay,
		panel:    PanelLogin,
		visible:  make(map[string]bool, len(PasswordFields)),
	}
	c.resetForms()
	return c
}

// Login authenticates the client.
func (c *FormController) Login(ctx context.Context, email, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages[PanelLogin].Error = ""
	c.values[PanelLogin].Email = email

	user, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return c.fail(PanelLogin, err)
	}

	c.user = user
	greeting := user.Name
	if greeting == "" {
		greeting = "user"
	}
	c.notifier.Push(fmt.Sprintf("Welcome back, %s!", greeting), SeveritySuccess)
	return nil
}

// Signup registers a new user and switches to the login panel after the
// configured delay.
func (c *FormController) Signup(ctx context.Context, name, email, password, confirm string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages[PanelSignup].Error = ""
	c.messages[PanelSignup].Success = ""
	c.values[PanelSignup].Name = name
	c.values[PanelSignup].Email = email

	if _, err := c.auth.Signup(ctx, name, email, password, confirm); err != nil {
		return c.fail(PanelSignup, err)
	}

	c.messages[PanelSignup].Success = msgSignupDone
	c.notifier.Push(toastSignupDone, SeveritySuccess)
	c.scheduleSwitch(PanelLogin)
	return nil
}

// Reset replaces a user's password and switches to the login panel after
// the configured delay.
func (c *FormController) Reset(ctx context.Context, email, newPassword, confirm string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages[PanelForgot].Error = ""
	c.messages[PanelForgot].Success = ""
	c.values[PanelForgot].Email = email

	if _, err := c.auth.ResetPassword(ctx, email, newPassword, confirm); err != nil {
		return c.fail(PanelForgot, err)
	}

	c.messages[PanelForgot].Success = msgResetDone
	c.notifier.Push(toastResetDone, SeveritySuccess)
	c.scheduleSwitch(PanelLogin)
	return nil
}

// Logout drops the authenticated user and returns to a clean login panel.
func (c *FormController) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelSwitch()
	c.user = nil
	c.panel = PanelLogin
	c.resetForms()
	c.notifier.Push(toastLoggedOut, SeverityInfo)
}

// ShowPanel activates p and cancels any pending automatic switch.
func (c *FormController) ShowPanel(p Panel) error {
	parsed, err := ParsePanel(string(p))
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelSwitch()
	c.panel = parsed
	return nil
}

// TogglePasswordVisibility flips a password input between masked and plain.
func (c *FormController) TogglePasswordVisibility(field string) (FieldView, error) {
	if !isPasswordField(field) {
		return FieldView{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownField, field)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible[field] = !c.visible[field]
	return c.fieldView(field), nil
}

// State returns a snapshot of the client's UI.
func (c *FormController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := State{
		Panel:         c.panel,
		Authenticated: c.user != nil,
		Messages:      make(map[Panel]FormMessages, len(Panels)),
		Values:        make(map[Panel]FormValues, len(Panels)),
		Fields:        make([]FieldView, 0, len(PasswordFields)),
		Notifications: c.notifier.Active(),
	}
	if c.user != nil {
		st.Welcome = &Welcome{
			Name:    c.user.DisplayName(),
			Subtext: "Signed in as " + c.user.Email,
			Email:   c.user.Email,
		}
	}
	if c.pending != nil {
		st.PendingPanel = c.pendingPanel
	}
	for _, p := range Panels {
		st.Messages[p] = *c.messages[p]
		st.Values[p] = *c.values[p]
	}
	for _, f := range PasswordFields {
		st.Fields = append(st.Fields, c.fieldView(f))
	}
	return st
}

// Notifications returns the visible notifications.
func (c *FormController) Notifications() []Notification {
	return c.notifier.Active()
}

// Close cancels the pending switch and all notification timers.
func (c *FormController) Close() {
	c.mu.Lock()
	c.cancelSwitch()
	c.mu.Unlock()
	c.notifier.Close()
}

// fail records err on panel's form. Store failures get a generic message.
func (c *FormController) fail(panel Panel, err error) error {
	if fe, ok := apperrors.AsFormError(err); ok {
		c.messages[panel].Error = fe.Message
		c.notifier.Push(fe.Toast, SeverityError)
		return err
	}

	logging.L.Error("form action failed", "panel", panel, "err", err)
	c.messages[panel].Error = msgInternal
	c.notifier.Push(toastInternal, SeverityError)
	return err
}

// scheduleSwitch replaces any pending switch with a new one to target.
// Callers hold c.mu.
func (c *FormController) scheduleSwitch(target Panel) {
	c.cancelSwitch()
	gen := c.pendingGen
	c.pendingPanel = target
	c.pending = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A cancel or reschedule after the timer fired bumps the generation.
		if c.pendingGen != gen {
			return
		}
		c.pending = nil
		c.panel = target
	})
}

// cancelSwitch stops the pending switch. Callers hold c.mu.
func (c *FormController) cancelSwitch() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.pendingGen++
}

// resetForms clears messages and kept values of every form. Callers hold c.mu
// or own c exclusively.
func (c *FormController) resetForms() {
	c.messages = make(map[Panel]*FormMessages, len(Panels))
	c.values = make(map[Panel]*FormValues, len(Panels))
	for _, p := range Panels {
		c.messages[p] = &FormMessages{}
		c.values[p] = &FormValues{}
	}
}

func (c *FormController) fieldView(field string) FieldView {
	if c.visible[field] {
		return FieldView{Field: field, Visible: true, InputType: "text", Icon: iconVisible}
	}
	return FieldView{Field: field, Visible: false, InputType: "password", Icon: iconMasked}
}

func isPasswordField(field string) bool {
	for _, f := range PasswordFields {
		if f == field {
			return true
		}
	}
	return false
}
