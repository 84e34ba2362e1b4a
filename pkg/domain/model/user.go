package model

import "github.com/lakecity-club/clubstate/pkg/domain/types"

// User is an authenticated account
type User struct {
	ID        types.UserID `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	IsAdmin   bool         `json:"isAdmin"`
}

// FullName returns the user's display name, used to stamp modification info
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
