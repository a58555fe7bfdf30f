package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"stream-portal/model"
)

// rawAuthResponse covers both the success and failure payloads the auth
// endpoints produce.
type rawAuthResponse struct {
	Message     string             `json:"message"`
	Detail      string             `json:"detail"`
	AccessToken string             `json:"access_token"`
	Token       string             `json:"token"`
	TokenType   string             `json:"token_type"`
	User        *model.UserSummary `json:"user"`
}

// RegisterUser creates an account with a JSON payload. Success and failure
// both come back as an AuthResponse; callers branch on Status instead of an
// error value. A pure network failure maps to status 500 with a generic
// message. Exactly one attempt is made.
func (c *Client) RegisterUser(ctx context.Context, payload model.RegisterPayload) model.AuthResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		return networkFailure()
	}

	resp, err := c.request(ctx, http.MethodPost, "/auth/register", bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return networkFailure()
	}

	var raw rawAuthResponse
	_ = json.Unmarshal(resp.Body, &raw) // tolerate empty or non-JSON bodies

	if resp.Status < 200 || resp.Status >= 300 {
		message := raw.Message
		if message == "" {
			message = "Registration failed"
		}
		return model.AuthResponse{Status: resp.Status, Message: message}
	}

	return successAuthResponse(resp.Status, raw, "Registration successful")
}

// LoginUser authenticates with form-urlencoded credentials, which is what
// the upstream login endpoint expects. Failure messages prefer the
// upstream's "detail" field over "message"; register does not, and the two
// paths are deliberately kept separate.
func (c *Client) LoginUser(ctx context.Context, payload model.LoginPayload) model.AuthResponse {
	form := url.Values{}
	form.Set("username", payload.Username)
	form.Set("password", payload.Password)

	resp, err := c.request(ctx, http.MethodPost, "/auth/login", strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	if err != nil {
		return networkFailure()
	}

	var raw rawAuthResponse
	_ = json.Unmarshal(resp.Body, &raw)

	if resp.Status < 200 || resp.Status >= 300 {
		message := raw.Detail
		if message == "" {
			message = raw.Message
		}
		if message == "" {
			message = "Login failed"
		}
		return model.AuthResponse{Status: resp.Status, Message: message}
	}

	return successAuthResponse(resp.Status, raw, "Login successful")
}

func successAuthResponse(status int, raw rawAuthResponse, fallbackMessage string) model.AuthResponse {
	message := raw.Message
	if message == "" {
		message = fallbackMessage
	}

	token := raw.AccessToken
	if token == "" {
		token = raw.Token
	}

	tokenType := raw.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return model.AuthResponse{
		Status:    status,
		Message:   message,
		Token:     token,
		TokenType: tokenType,
		User:      raw.User,
	}
}

func networkFailure() model.AuthResponse {
	return model.AuthResponse{
		Status:  500,
		Message: "Network error. Please try again.",
	}
}
