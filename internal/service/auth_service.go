package service

import (
	"context"
	"strings"

	apperrors "authdemo/internal/errors"
	"authdemo/internal/logging"
	"authdemo/internal/model"
	"authdemo/internal/repository"
)

// Inline and toast texts shown for each failure.
const (
	msgLoginEmail     = "Please enter a valid email address."
	msgPasswordNeeded = "Password is required."
	msgBadCredentials = "Incorrect email or password."
	msgNameNeeded     = "Name is required."
	msgSignupEmail    = "Enter a valid email address."
	msgResetEmail     = "Enter a valid registered email address."
	msgWeakPassword   = "Weak password. Use 8+ chars, 1 uppercase & 1 number."
	msgMismatch       = "Passwords do not match."
	msgEmailTaken     = "Email is already registered. Try logging in."
	msgNoSuchUser     = "No user found with this email."

	toastBadEmail       = "Invalid email format"
	toastPasswordNeeded = "Password is required"
	toastLoginFailed    = "Login failed. Check your credentials."
	toastNameNeeded     = "Please enter your name"
	toastWeakPassword   = "Password is too weak"
	toastMismatch       = "Passwords do not match"
	toastEmailTaken     = "Email already exists"
	toastNoSuchUser     = "User not found"
)

// AuthService runs the credential flows against the user store. Every
// failure it reports to the user is an *errors.FormError; any other error
// comes from persistence.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Signup(ctx context.Context, name, email, password, confirm string) (*model.User, error)
	ResetPassword(ctx context.Context, email, newPassword, confirm string) (*model.User, error)
}

type authService struct {
	store repository.UserStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(store repository.UserStore) AuthService {
	return &authService{store: store}
}

// Login checks email and password against the freshly loaded user list.
// Unknown email and wrong password produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)

	if !IsValidEmail(email) {
		return nil, apperrors.NewFormError(apperrors.ErrValidation, "email", msgLoginEmail, toastBadEmail)
	}
	if password == "" {
		return nil, apperrors.NewFormError(apperrors.ErrValidation, "password", msgPasswordNeeded, toastPasswordNeeded)
	}

	users := s.store.Load(ctx)
	user := repository.FindByEmail(users, email)
	if user == nil || user.Password != password {
		logging.L.Debug("login rejected", "email", email)
		return nil, apperrors.NewFormError(apperrors.ErrAuth, "", msgBadCredentials, toastLoginFailed)
	}

	found := *user
	logging.L.Info("user logged in", "email", found.Email)
	return &found, nil
}

// Signup validates the form and appends a new user.
func (s *authService) Signup(ctx context.Context, name, email, password, confirm string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, apperrors.NewFormError(apperrors.ErrValidation, "name", msgNameNeeded, toastNameNeeded)
	}
	if !IsValidEmail(email) {
		return nil, apperrors.NewFormError(apperrors.ErrValidation, "email", msgSignupEmail, toastBadEmail)
	}
	if !IsStrongPassword(password) {
		return nil, apperrors.NewFormError(apperrors.ErrValidation, "password", msgWeakPassword, toastWeakPassword)
	}
	if password != confirm {
		return nil, apperrors.NewFormError(apperrors.ErrValidation, "confirm", msgMismatch, toastMismatch)
	}

	user := model.User{Name: name, Email: email, Password: password}
	err := s.store.Mutate(ctx, func(users []model.User) ([]model.User, error) {
		if repository.FindByEmail(users, email) != nil {
			return nil, apperrors.NewFormError(apperrors.ErrConflict, "email", msgEmailTaken, toastEmailTaken)
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}

	logging.L.Info("user registered", "email", user.Email)
	return &user, nil
}

// ResetPassword replaces the password of an existing user. Unlike Login it
// tells the caller when the email is not registered.
func (s *authService) ResetPassword(ctx context.Context, email, newPassword, confirm string) (*model.User, error) {
	email = strings.TrimSpace(email)

	if !IsValidEmail(email) {
		return nil, apperrors.NewFormError(apperrors.ErrValidation, "email", msgResetEmail, toastBadEmail)
	}

	var updated model.User
	err := s.store.Mutate(ctx, func(users []model.User) ([]model.User, error) {
		user := repository.FindByEmail(users, email)
		if user == nil {
			return nil, apperrors.NewFormError(apperrors.ErrNotFound, "email", msgNoSuchUser, toastNoSuchUser)
		}
		if !IsStrongPassword(newPassword) {
			return nil, apperrors.NewFormError(apperrors.ErrValidation, "password", msgWeakPassword, toastWeakPassword)
		}
		if newPassword != confirm {
			return nil, apperrors.NewFormError(apperrors.ErrValidation, "confirm", msgMismatch, toastMismatch)
		}
		user.Password = newPassword
		updated = *user
		return users, nil
	})
	if err != nil {
		return nil, err
	}

	logging.L.Info("password reset", "email", updated.Email)
	return &updated, nil
}
