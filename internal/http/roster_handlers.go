package http

import (
	"context"
	"net/http"
	"time"

	"rushvote/internal/repository/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const rosterCacheKey = "roster:candidates"

// RosterHandler proxies the external candidate roster for the quiz
// creation and editing screens. The roster is never consulted on the
// analytics path, so it is safe to serve through the cache.
type RosterHandler struct {
	roster   RosterSource
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

func NewRosterHandler(roster RosterSource, cache Cacher, logger *zap.Logger, ttl time.Duration) *RosterHandler {
	if roster == nil {
		panic("nil RosterSource provided to NewRosterHandler")
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RosterHandler{
		roster:   roster,
		cache:    cache,
		logger:   logger.Named("roster-handler"),
		cacheTTL: ttl,
	}
}

// ListCandidates handles GET /api/candidates
func (h *RosterHandler) ListCandidates(c *gin.Context) {
	candidates, err := FindAndCache(c.Request.Context(), h.cache, &h.sfGroup, rosterCacheKey, h.cacheTTL, h.logger,
		func(fetchCtx context.Context) ([]models.Candidate, error) {
			return h.roster.ListCandidates(fetchCtx)
		})
	if err != nil {
		h.logger.Error("roster fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch candidates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": toCandidateDTOs(candidates)})
}
