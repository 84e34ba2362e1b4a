package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ArticleID identifies a published article
type ArticleID string

// ImageID identifies a gallery image
type ImageID string

// EventID identifies a scheduled club event
type EventID string

// MemberID identifies a club member roster entry
type MemberID string

// UserID identifies an authenticated user account
type UserID string

// Album is the name of a photo album. Album names are user-supplied and are
// not guaranteed to be unique across time.
type Album string

// NewImageID generates a fresh image ID for staged uploads
func NewImageID() ImageID {
	return ImageID(uuid.New().String())
}

func (x ArticleID) String() string { return string(x) }
func (x ImageID) String() string   { return string(x) }
func (x EventID) String() string   { return string(x) }
func (x MemberID) String() string  { return string(x) }
func (x UserID) String() string    { return string(x) }
func (x Album) String() string     { return string(x) }

// Validate checks that an ID is non-empty
func (x ArticleID) Validate() error {
	if x == "" {
		return goerr.New("article ID must not be empty")
	}
	return nil
}

// Validate checks that an ID is non-empty
func (x ImageID) Validate() error {
	if x == "" {
		return goerr.New("image ID must not be empty")
	}
	return nil
}
