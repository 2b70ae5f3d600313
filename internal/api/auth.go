package api

import (
	"context"
	"net/http"
	"net/url"

	"vandar/client/internal/models"
)

type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, req, &out, "Login failed"); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/signup", nil, req, &out, "Signup failed"); err != nil {
		return models.MessageResponse{}, err
	}
	return out, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) (models.MessageResponse, error) {
	query := url.Values{"token": {token}}

	var out models.MessageResponse
	if err := s.client.do(ctx, http.MethodGet, "/auth/verify-email", query, nil, &out, "Verification failed"); err != nil {
		return models.MessageResponse{}, err
	}
	return out, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error) {
	req := models.ForgotPasswordRequest{Email: email}

	var out models.MessageResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/forget-password", nil, req, &out, "Failed to send reset email"); err != nil {
		return models.MessageResponse{}, err
	}
	return out, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (models.MessageResponse, error) {
	req := models.ResetPasswordRequest{Token: token, NewPassword: newPassword}

	var out models.MessageResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/forget-password", nil, req, &out, "Password reset failed"); err != nil {
		return models.MessageResponse{}, err
	}
	return out, nil
}

// CurrentUser relies on the transport attaching the stored bearer token.
func (s *AuthService) CurrentUser(ctx context.Context) (models.User, error) {
	var out models.CurrentUserResponse
	if err := s.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out, "Failed to get user"); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil, "Logout failed")
}
