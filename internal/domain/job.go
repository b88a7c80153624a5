package domain

import "time"

type JobStatus string

const (
	JobStatusOpen     JobStatus = "Open"
	JobStatusClosed   JobStatus = "Closed"
	JobStatusArchived JobStatus = "Archived"
)

type Job struct {
	ID             int32      `json:"id"`
	PositionTitle  string     `json:"position_title"`
	Department     string     `json:"department"`
	JobDescription string     `json:"job_description"`
	Qualifications string     `json:"qualifications"`
	SalaryGrade    string     `json:"salary_grade"`
	Deadline       time.Time  `json:"deadline"`
	Status         JobStatus  `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// AcceptsApplications reports whether a submission against this job may
// proceed. Expired postings are treated as closed even if the row has not
// been demoted yet.
func (j *Job) AcceptsApplications(now time.Time) bool {
	if j.Status != JobStatusOpen {
		return false
	}
	return !j.Deadline.Before(truncateToDay(now))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
