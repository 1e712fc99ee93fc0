package service

// CandidateScore is a derived per-candidate aggregate. It is computed
// freshly from stored responses on every request and never persisted.
type CandidateScore struct {
	CandidateID   string
	CandidateName string
	AverageScore  float64
	TotalVotes    int
}

// TierAssignment is the three-band partition of ranked candidate scores.
// Each band is internally shuffled for presentation.
type TierAssignment struct {
	Top    []CandidateScore
	Middle []CandidateScore
	Low    []CandidateScore
}
