package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// UserHandler exposes the in-memory user directory as JSON.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetUser returns a single directory entry.
//
// @Summary      Get user by username
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username (case-insensitive)"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  map[string]string
// @Router       /api/User/{username} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	username := c.Param("username")
	user, err := h.users.GetUser(c.Request().Context(), username)
	if err != nil {
		return userError(err, username)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers returns every directory entry ordered by username.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /api/User [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser adds a directory entry.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/User [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user data"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.users.CreateUser(c.Request().Context(), req.toDomain())
	if err != nil {
		return userError(err, req.Username)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/User/"+url.PathEscape(user.Username))
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser replaces the mutable fields of an entry. Admin only.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string               true  "Username"
// @Param        body      body      updateUserRequest    true  "User fields"
// @Success      200       {object}  domain.User
// @Failure      401       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /api/User/{username} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user data"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	username := c.Param("username")
	user, err := h.users.UpdateUser(c.Request().Context(), req.toDomain(username))
	if err != nil {
		return userError(err, username)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes an entry. Admin only.
//
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/User/{username} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	username := c.Param("username")
	if err := h.users.DeleteUser(c.Request().Context(), username); err != nil {
		return userError(err, username)
	}
	return c.NoContent(http.StatusNoContent)
}

func userError(err error, username string) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("User '%s' not found", username))
	case errors.Is(err, domain.ErrUserExists):
		return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("User '%s' already exists", username))
	case errors.Is(err, domain.ErrInvalidUser):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user data")
	}
	return err
}
