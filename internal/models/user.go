package models

// User is a registered seeker. The password hash never leaves the server.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// PublicView is the part of a user returned by the auth endpoints.
type PublicView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() *PublicView {
	return &PublicView{ID: u.ID, Name: u.Name, Email: u.Email}
}
