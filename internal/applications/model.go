package applications

import "time"

// Application statuses. Pending is the only state that can change.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// Slot is one weekly availability window.
type Slot struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Application is a tutor's application to a job listing.
type Application struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	JobID         string    `json:"jobId"`
	DocumentID    string    `json:"documentId"`
	TeachingStyle string    `json:"teachingStyle"`
	Availability  []Slot    `json:"availability"`
	IsConfirmed   bool      `json:"isConfirmed"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ApplyInput is what a tutor submits alongside the resume file.
type ApplyInput struct {
	JobID         string
	FileName      string
	Resume        []byte
	TeachingStyle string
	Availability  []Slot
	Confirmed     bool
}

// AppliedJob is a tutor's view of one of their applications.
type AppliedJob struct {
	ApplicationID string    `json:"applicationId"`
	JobID         string    `json:"jobId"`
	JobTitle      string    `json:"jobTitle"`
	JobSubject    string    `json:"jobSubject"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	JobFrequency  string    `json:"jobFrequency"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"appliedAt"`
}

// Received is a parent's view of an application to one of their listings.
type Received struct {
	ApplicationID string    `json:"applicationId"`
	JobID         string    `json:"jobId"`
	JobTitle      string    `json:"jobTitle"`
	JobSubject    string    `json:"jobSubject"`
	ApplicantID   string    `json:"applicantId"`
	ApplicantName string    `json:"applicantName"`
	TeachingStyle string    `json:"teachingStyle"`
	Availability  []Slot    `json:"availability"`
	Status        string    `json:"status"`
	DocumentID    string    `json:"documentId"`
	AppliedAt     time.Time `json:"appliedAt"`
}
