package handler

import (
	"strings"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

type userRequest struct {
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Location   string `json:"location"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

func (r userRequest) toDomain() domain.User {
	return domain.User{
		Username:   strings.TrimSpace(r.Username),
		Email:      r.Email,
		Location:   r.Location,
		Department: r.Department,
		Role:       r.Role,
	}
}

type updateUserRequest struct {
	Email      string `json:"email" validate:"omitempty,email"`
	Location   string `json:"location"`
	Department string `json:"department"`
	Role       string `json:"role" validate:"required"`
}

func (r updateUserRequest) toDomain(username string) domain.User {
	return domain.User{
		Username:   username,
		Email:      r.Email,
		Location:   r.Location,
		Department: r.Department,
		Role:       r.Role,
	}
}
