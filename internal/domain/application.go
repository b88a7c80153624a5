package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusUnread      ApplicationStatus = "Unread"
	ApplicationStatusViewed      ApplicationStatus = "Viewed"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusArchived    ApplicationStatus = "Archived"
)

// ValidApplicationStatus reports whether s is one of the enumerated statuses.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusUnread, ApplicationStatusViewed,
		ApplicationStatusShortlisted, ApplicationStatusRejected,
		ApplicationStatusArchived:
		return true
	}
	return false
}

// applicationTransitions enumerates the legal administrator-visible moves.
// Unread only ever advances to Viewed, and only via the view-once path.
// Archived restores to a caller-chosen target; the machine does not remember
// the pre-archive status.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusUnread:      {ApplicationStatusViewed},
	ApplicationStatusViewed:      {ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusArchived},
	ApplicationStatusShortlisted: {ApplicationStatusRejected, ApplicationStatusArchived},
	ApplicationStatusRejected:    {ApplicationStatusShortlisted, ApplicationStatusArchived},
	ApplicationStatusArchived:    {ApplicationStatusUnread, ApplicationStatusViewed, ApplicationStatusShortlisted, ApplicationStatusRejected},
}

// CanTransition reports whether moving from one status to another is legal.
// A same-status move is always allowed; callers treat it as a no-op.
func CanTransition(from, to ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, t := range applicationTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type Application struct {
	ID          int32             `json:"id"`
	JobID       int32             `json:"job_id"`
	FullName    string            `json:"full_name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phone_number"`
	Address     string            `json:"address"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// ApplicationSummary is the listing projection, joined with the posting.
type ApplicationSummary struct {
	ID            int32             `json:"id"`
	JobID         int32             `json:"job_id"`
	FullName      string            `json:"full_name"`
	Email         string            `json:"email"`
	PositionTitle string            `json:"position_title"`
	Department    string            `json:"department"`
	Status        ApplicationStatus `json:"status"`
	SubmittedAt   time.Time         `json:"submitted_at"`
}
