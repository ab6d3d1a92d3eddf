package domain

import "time"

type Member struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the public view of a member returned by the auth endpoint.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (m *Member) Profile() Profile {
	return Profile{ID: m.ID, Name: m.Name, Email: m.Email}
}
