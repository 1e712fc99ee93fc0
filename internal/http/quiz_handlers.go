package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuizHandler serves the organizer quiz management surface.
type QuizHandler struct {
	quizzes QuizService
}

func NewQuizHandler(quizzes QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

type createQuizRequest struct {
	Name       string         `json:"name"`
	Candidates []candidateDTO `json:"candidates"`
}

// CreateQuiz handles POST /api/quizzes
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request data"})
		return
	}

	quiz, err := h.quizzes.CreateQuiz(c.Request.Context(), req.Name, fromCandidateDTOs(req.Candidates))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quizId": quiz.ID})
}

// ListQuizzes handles GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizzes.ListQuizzes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	dtos := make([]quizDTO, len(quizzes))
	for i, q := range quizzes {
		dtos[i] = toQuizDTO(q)
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": dtos})
}

type renameQuizRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameQuiz handles PATCH /api/quizzes/:quizId
func (h *QuizHandler) RenameQuiz(c *gin.Context) {
	var req renameQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quiz name is required"})
		return
	}

	if err := h.quizzes.RenameQuiz(c.Request.Context(), c.Param("quizId"), req.Name); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

type updateCandidatesRequest struct {
	Candidates []candidateDTO `json:"candidates"`
}

// UpdateCandidates handles PUT /api/quizzes/:quizId/candidates
func (h *QuizHandler) UpdateCandidates(c *gin.Context) {
	var req updateCandidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request data"})
		return
	}

	if err := h.quizzes.UpdateCandidates(c.Request.Context(), c.Param("quizId"), fromCandidateDTOs(req.Candidates)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteQuiz handles DELETE /api/quizzes/:quizId
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.quizzes.DeleteQuiz(c.Request.Context(), c.Param("quizId")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
