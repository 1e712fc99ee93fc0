package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the organizer review surface: standings, tier
// partitions and the deduplicated voter roster.
type AnalyticsHandler struct {
	analytics AnalyticsService
}

func NewAnalyticsHandler(analytics AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetAnalytics handles GET /api/quiz/:quizId/analytics
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	scores, err := h.analytics.GetAnalytics(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": toScoreDTOs(scores)})
}

// GetTiers handles GET /api/quiz/:quizId/tiers?top=25&middle=50&low=25
func (h *AnalyticsHandler) GetTiers(c *gin.Context) {
	topPct, err1 := parsePercent(c.DefaultQuery("top", "25"))
	midPct, err2 := parsePercent(c.DefaultQuery("middle", "50"))
	lowPct, err3 := parsePercent(c.DefaultQuery("low", "25"))
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "tier percentages must be numbers"})
		return
	}

	tiers, err := h.analytics.GetTiers(c.Request.Context(), c.Param("quizId"), topPct, midPct, lowPct)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tiers": gin.H{
		"top":    toScoreDTOs(tiers.Top),
		"middle": toScoreDTOs(tiers.Middle),
		"low":    toScoreDTOs(tiers.Low),
	}})
}

// ListVoters handles GET /api/quiz/:quizId/voters
func (h *AnalyticsHandler) ListVoters(c *gin.Context) {
	voters := h.analytics.ListVoters(c.Request.Context(), c.Param("quizId"))
	c.JSON(http.StatusOK, gin.H{"voters": toVoterDTOs(voters)})
}

type deleteVoterRequest struct {
	VoterEmail string `json:"voterEmail" binding:"required"`
}

// DeleteVoter handles DELETE /api/quiz/:quizId/voters
func (h *AnalyticsHandler) DeleteVoter(c *gin.Context) {
	var req deleteVoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "voter email required"})
		return
	}

	if err := h.analytics.DeleteVoterResponses(c.Request.Context(), c.Param("quizId"), req.VoterEmail); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func parsePercent(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}
