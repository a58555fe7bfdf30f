package session

import (
	"encoding/json"
	"fmt"

	"stream-portal/model"
)

// Session provides auth state on top of an injected Store. A nil Session,
// or one with no store, behaves like an anonymous context: empty headers,
// not authenticated, logout is a no-op.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

// AuthHeaders returns the Authorization and Content-Type headers for
// authenticated calls, or an empty set when no token is stored.
func (s *Session) AuthHeaders() map[string]string {
	if s == nil || s.store == nil {
		return map[string]string{}
	}

	token, ok, err := s.store.Get(KeyAuthToken)
	if err != nil || !ok || token == "" {
		return map[string]string{}
	}

	tokenType, ok, err := s.store.Get(KeyTokenType)
	if err != nil || !ok || tokenType == "" {
		tokenType = "Bearer"
	}

	return map[string]string{
		"Authorization": tokenType + " " + token,
		"Content-Type":  "application/json",
	}
}

// IsAuthenticated reports whether a token is present in the store.
func (s *Session) IsAuthenticated() bool {
	if s == nil || s.store == nil {
		return false
	}
	token, ok, err := s.store.Get(KeyAuthToken)
	return err == nil && ok && token != ""
}

// SaveLogin persists the credentials from a successful auth response.
func (s *Session) SaveLogin(resp model.AuthResponse) error {
	if s == nil || s.store == nil {
		return nil
	}
	if resp.Token == "" {
		return fmt.Errorf("auth response has no token")
	}

	if err := s.store.Set(KeyAuthToken, resp.Token); err != nil {
		return err
	}

	tokenType := resp.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	if err := s.store.Set(KeyTokenType, tokenType); err != nil {
		return err
	}

	if resp.User != nil {
		data, err := json.Marshal(resp.User)
		if err != nil {
			return fmt.Errorf("failed to serialize user: %v", err)
		}
		if err := s.store.Set(KeyUser, string(data)); err != nil {
			return err
		}
	}

	return nil
}

// User returns the cached user summary saved at login, if any.
func (s *Session) User() (model.UserSummary, bool) {
	if s == nil || s.store == nil {
		return model.UserSummary{}, false
	}

	data, ok, err := s.store.Get(KeyUser)
	if err != nil || !ok {
		return model.UserSummary{}, false
	}

	var user model.UserSummary
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return model.UserSummary{}, false
	}
	return user, true
}

// Logout removes the token, token type and cached user from the store.
func (s *Session) Logout() error {
	if s == nil || s.store == nil {
		return nil
	}
	for _, key := range []string{KeyAuthToken, KeyTokenType, KeyUser} {
		if err := s.store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
