package model

// UserSummary is the account info the upstream returns with auth responses
// and from the profile endpoint.
type UserSummary struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// AuthResponse is the single shape both register and login produce, for the
// success and failure paths alike. Callers branch on Status (200/201 mean
// success) rather than on an error value, since network failures and
// upstream rejections are both folded into this shape.
type AuthResponse struct {
	Status    int          `json:"status"`
	Message   string       `json:"message,omitempty"`
	Token     string       `json:"token,omitempty"`
	TokenType string       `json:"tokenType,omitempty"`
	User      *UserSummary `json:"user,omitempty"`
}

// RegisterPayload is the JSON body for account registration.
type RegisterPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginPayload carries login credentials. The login endpoint expects
// form-urlencoded data, so this is never marshaled to JSON.
type LoginPayload struct {
	Username string
	Password string
}
