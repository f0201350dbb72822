package models

import (
	"errors"
	"time"
)

var ErrSavedItemTarget = errors.New("exactly one of gigId or savedUserId must be set")

// SavedItem is a bookmark a user places on a gig or on another user's profile.
type SavedItem struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	GigID       *int64    `json:"gigId"`
	SavedUserID *int64    `json:"savedUserId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *SavedItem) Key() int64         { return s.ID }
func (s *SavedItem) AssignKey(id int64) { s.ID = id }

// Validate enforces that the bookmark targets exactly one thing.
func (s *SavedItem) Validate() error {
	if (s.GigID == nil) == (s.SavedUserID == nil) {
		return ErrSavedItemTarget
	}
	return nil
}
