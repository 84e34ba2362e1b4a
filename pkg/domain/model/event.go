package model

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

// Event is a scheduled club event
type Event struct {
	ID               types.EventID    `json:"id"`
	Title            string           `json:"title"`
	Venue            string           `json:"venue"`
	Start            time.Time        `json:"start"`
	Description      string           `json:"description,omitempty"`
	ArticleID        types.ArticleID  `json:"articleId,omitempty"`
	ModificationInfo ModificationInfo `json:"modificationInfo"`
}

// IsUpcoming reports whether the event starts after the given time
func (e Event) IsUpcoming(now time.Time) bool {
	return e.Start.After(now)
}
