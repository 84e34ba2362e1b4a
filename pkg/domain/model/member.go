package model

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

// Member is a club roster entry
type Member struct {
	ID               types.MemberID   `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	City             string           `json:"city,omitempty"`
	Rating           int              `json:"rating"`
	PeakRating       int              `json:"peakRating"`
	DateJoined       *time.Time       `json:"dateJoined"`
	IsActive         bool             `json:"isActive"`
	ModificationInfo ModificationInfo `json:"modificationInfo"`
}

// FullName returns the member's display name
func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
