package models

import "time"

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known statuses. Any known status may
// follow any other.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application is a student's request to be considered for a gig.
type Application struct {
	ID          int64             `json:"id"`
	GigID       int64             `json:"gigId"`
	StudentID   int64             `json:"studentId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter *string           `json:"coverLetter"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (a *Application) Key() int64         { return a.ID }
func (a *Application) AssignKey(id int64) { a.ID = id }
