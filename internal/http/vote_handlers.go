package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// VoteHandler serves the public voting surface: quiz detail, submission
// and the live response counter the voting page polls.
type VoteHandler struct {
	submissions SubmissionService
	analytics   AnalyticsService
	quizzes     QuizService
}

func NewVoteHandler(submissions SubmissionService, analytics AnalyticsService, quizzes QuizService) *VoteHandler {
	return &VoteHandler{submissions: submissions, analytics: analytics, quizzes: quizzes}
}

type submitRequest struct {
	VoterName  string          `json:"voterName"`
	VoterEmail string          `json:"voterEmail"`
	Ratings    map[string]*int `json:"ratings"`
}

// Submit handles POST /api/quiz/:quizId/submit
func (h *VoteHandler) Submit(c *gin.Context) {
	quizID := c.Param("quizId")

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request data"})
		return
	}

	err := h.submissions.SubmitVote(c.Request.Context(), quizID, req.VoterName, req.VoterEmail, req.Ratings)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetQuiz handles GET /api/quiz/:quizId
func (h *VoteHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizzes.GetQuiz(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuizDTO(quiz))
}

// ResponseCount handles GET /api/quiz/:quizId/response-count
func (h *VoteHandler) ResponseCount(c *gin.Context) {
	count := h.analytics.CountVoters(c.Request.Context(), c.Param("quizId"))
	c.JSON(http.StatusOK, gin.H{"count": count})
}
