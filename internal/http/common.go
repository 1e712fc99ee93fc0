package http

import (
	"errors"
	"net/http"
	"time"

	"rushvote/internal/repository/models"
	"rushvote/internal/service"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type candidateDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClassYear int    `json:"class_year"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

type quizDTO struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Candidates []candidateDTO `json:"candidates"`
	CreatedAt  time.Time      `json:"created_at"`
}

type scoreDTO struct {
	CandidateID   string  `json:"candidate_id"`
	CandidateName string  `json:"candidate_name"`
	AverageScore  float64 `json:"average_score"`
	TotalVotes    int     `json:"total_votes"`
}

type voterDTO struct {
	VoterName   string    `json:"voter_name"`
	VoterEmail  string    `json:"voter_email"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func toCandidateDTOs(candidates []models.Candidate) []candidateDTO {
	out := make([]candidateDTO, len(candidates))
	for i, c := range candidates {
		out[i] = candidateDTO{ID: c.ID, Name: c.Name, ClassYear: c.ClassYear, PhotoURL: c.PhotoURL}
	}
	return out
}

func fromCandidateDTOs(dtos []candidateDTO) []models.Candidate {
	out := make([]models.Candidate, len(dtos))
	for i, c := range dtos {
		out[i] = models.Candidate{ID: c.ID, Name: c.Name, ClassYear: c.ClassYear, PhotoURL: c.PhotoURL}
	}
	return out
}

func toQuizDTO(quiz models.Quiz) quizDTO {
	return quizDTO{
		ID:         quiz.ID,
		Name:       quiz.Name,
		Candidates: toCandidateDTOs(quiz.Candidates),
		CreatedAt:  quiz.CreatedAt,
	}
}

func toScoreDTOs(scores []service.CandidateScore) []scoreDTO {
	out := make([]scoreDTO, len(scores))
	for i, s := range scores {
		out[i] = scoreDTO{
			CandidateID:   s.CandidateID,
			CandidateName: s.CandidateName,
			AverageScore:  s.AverageScore,
			TotalVotes:    s.TotalVotes,
		}
	}
	return out
}

func toVoterDTOs(voters []models.VoterRecord) []voterDTO {
	out := make([]voterDTO, len(voters))
	for i, v := range voters {
		out[i] = voterDTO{VoterName: v.VoterName, VoterEmail: v.VoterEmail, SubmittedAt: v.SubmittedAt}
	}
	return out
}

// respondServiceError maps service error taxonomy onto HTTP statuses so
// callers can tell duplicate from not-found from transient failures.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPayload), errors.Is(err, service.ErrEmptyRoster):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "quiz not found"})
	case errors.Is(err, service.ErrDuplicateSubmission):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "you have already submitted this quiz with this email"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
