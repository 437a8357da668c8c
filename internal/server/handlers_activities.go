package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
)

func (s *Server) handleListActivities(c echo.Context) error {
	activities, err := s.app.ListActivities(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list activities", err)
	}

	if err := c.JSON(http.StatusOK, activities); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSignup(c echo.Context) error {
	name := activityName(c)
	email := c.QueryParam("email")
	if email == "" {
		return apperrors.ValidationError("email is required").WithField("activity", name)
	}

	err := s.app.Signup(c.Request().Context(), name, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return apperrors.NotFoundError("Activity not found").WithField("activity", name)
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return apperrors.ValidationError("Student is already signed up for this activity").
			WithField("activity", name).
			WithField("email", email)
	case err != nil:
		return apperrors.InternalError("failed to sign up", err).WithField("activity", name)
	}

	message := fmt.Sprintf("Signed up %s for %s", email, name)
	if err := c.JSON(http.StatusOK, map[string]string{"message": message}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUnregister(c echo.Context) error {
	name := activityName(c)
	email := c.QueryParam("email")
	if email == "" {
		return apperrors.ValidationError("email is required").WithField("activity", name)
	}

	err := s.app.Unregister(c.Request().Context(), name, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return apperrors.NotFoundError("Activity not found").WithField("activity", name)
	case errors.Is(err, domain.ErrNotSignedUp):
		return apperrors.ValidationError("Student is not signed up for this activity").
			WithField("activity", name).
			WithField("email", email)
	case err != nil:
		return apperrors.InternalError("failed to unregister", err).WithField("activity", name)
	}

	message := fmt.Sprintf("Unregistered %s from %s", email, name)
	if err := c.JSON(http.StatusOK, map[string]string{"message": message}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// activityName returns the URL-decoded activity name path segment.
// Echo routes on the raw path, so encoded names ("Soccer%20Team") arrive
// still escaped and must be unescaped before the store lookup.
func activityName(c echo.Context) string {
	raw := c.Param("name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
