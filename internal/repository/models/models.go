package models

import "time"

// Candidate is one entry of a quiz's denormalized roster snapshot. The
// snapshot is copied from the external roster at quiz creation time and is
// not affected by later roster changes.
type Candidate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClassYear int    `json:"class_year"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

type Quiz struct {
	ID         string
	Name       string
	Candidates []Candidate
	CreatedAt  time.Time
}

// RatingResponse is one stored rating row. Abstained candidates have no row.
type RatingResponse struct {
	QuizID        string
	VoterName     string
	VoterEmail    string
	CandidateID   string
	CandidateName string
	Rating        int
	SubmittedAt   time.Time
}

// CandidateAggregate is the per-candidate result of SQL-side grouping.
type CandidateAggregate struct {
	CandidateID   string
	CandidateName string
	AverageScore  float64
	TotalVotes    int
}

// VoterRecord is one distinct voter (keyed by email) with the timestamp of
// their most recent stored response.
type VoterRecord struct {
	VoterName   string
	VoterEmail  string
	SubmittedAt time.Time
}
