package model

import "time"

// ModificationInfo records who created and last edited an entity. It is
// stamped by the mutation pipelines from the authenticated user at dispatch
// time, never by the server response.
type ModificationInfo struct {
	CreatedBy      string    `json:"createdBy"`
	DateCreated    time.Time `json:"dateCreated"`
	LastEditedBy   string    `json:"lastEditedBy"`
	DateLastEdited time.Time `json:"dateLastEdited"`
}

// NewModificationInfo returns modification info for a freshly created entity
func NewModificationInfo(author string, now time.Time) ModificationInfo {
	return ModificationInfo{
		CreatedBy:      author,
		DateCreated:    now,
		LastEditedBy:   author,
		DateLastEdited: now,
	}
}

// Edited returns a copy with the last-edited fields replaced
func (m ModificationInfo) Edited(author string, now time.Time) ModificationInfo {
	m.LastEditedBy = author
	m.DateLastEdited = now
	return m
}
