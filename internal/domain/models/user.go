package models

// UserStatusActive is the only status allowed to sign in.
const UserStatusActive = "active"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}
