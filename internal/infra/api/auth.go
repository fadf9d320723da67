package api

import (
	"context"
	"net/http"

	"engineershub/internal/domain/entity"
	"engineershub/internal/domain/repository"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.AuthResponse, error) {
	var resp entity.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, &loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, req *repository.RegisterRequest) (*entity.AuthResponse, error) {
	var resp entity.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Me calls GET /auth/me.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
