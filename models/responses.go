package models

// Envelope is the uniform body of every /api response.
// Exactly one of Data or Error is set.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Message is a data payload carrying only a human-readable message.
type Message struct {
	Message string `json:"message"`
}
