package models

// User is the identity of a logged-in (mock) account.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserState is the session's authentication state. It resets to the zero
// value on logout; nothing is persisted.
type UserState struct {
	IsAuthenticated bool  `json:"is_authenticated"`
	User            *User `json:"user,omitempty"`
}
