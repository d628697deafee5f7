package models

// Credential is the durable proof of authentication. Token is opaque to the client.
type Credential struct {
	Token string
	Email string
}

// Valid reports whether the credential carries a token.
func (c Credential) Valid() bool {
	return c.Token != ""
}

// Profile is the account data behind auth/profile.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ProfileUpdate is a partial profile change; nil fields are left as they are.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
