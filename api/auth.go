package api

import (
	"context"

	"socialclient/models"
)

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type RegisterResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type VerifyOTPRequest struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	OTP   string `json:"otp"`
}

type VerifyOTPResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	OTP   string `json:"otp"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register создает неподтвержденный аккаунт. Токен на этом шаге не выдается
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.postJSON(ctx, "register", "/student/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyOTP подтверждает одноразовый код. Аутентификацию не выполняет -
// логин отдельный шаг
func (c *Client) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VerifyOTPResponse, error) {
	var resp VerifyOTPResponse
	if err := c.postJSON(ctx, "verify-otp", "/student/verify-otp", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login обменивает учетные данные на токен
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var raw struct {
		Token string     `json:"token"`
		User  userSchema `json:"user"`
	}
	if err := c.postJSON(ctx, "login", "/student/login", req, &raw); err != nil {
		return nil, err
	}
	return &LoginResponse{Token: raw.Token, User: toUser(raw.User)}, nil
}
