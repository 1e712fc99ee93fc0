package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rushvote/pkg/httpserver"
)

// RouterConfig collects everything the router needs wired in.
type RouterConfig struct {
	Submissions   SubmissionService
	Analytics     AnalyticsService
	Quizzes       QuizService
	Roster        RosterSource
	Cache         Cacher
	Logger        *zap.Logger
	AdminUser     string
	AdminPassword string
	RosterTTL     time.Duration
	CORSOrigins   []string
}

// NewRouter assembles the gin engine: public voting endpoints, the
// admin-gated management surface and the roster proxy.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpserver.RequestLogger(cfg.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	voteHandler := NewVoteHandler(cfg.Submissions, cfg.Analytics, cfg.Quizzes)
	analyticsHandler := NewAnalyticsHandler(cfg.Analytics)
	quizHandler := NewQuizHandler(cfg.Quizzes)
	rosterHandler := NewRosterHandler(cfg.Roster, cfg.Cache, cfg.Logger, cfg.RosterTTL)
	authHandler := NewAuthHandler(cfg.AdminUser, cfg.AdminPassword)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/signin", authHandler.Signin)

		quiz := api.Group("/quiz/:quizId")
		{
			quiz.GET("", voteHandler.GetQuiz)
			quiz.POST("/submit", voteHandler.Submit)
			quiz.GET("/response-count", voteHandler.ResponseCount)
			quiz.GET("/analytics", analyticsHandler.GetAnalytics)
			quiz.GET("/tiers", analyticsHandler.GetTiers)
			quiz.GET("/voters", analyticsHandler.ListVoters)
			quiz.DELETE("/voters", AdminAuth(), analyticsHandler.DeleteVoter)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.ListQuizzes)

			admin := quizzes.Group("")
			admin.Use(AdminAuth())
			{
				admin.POST("", quizHandler.CreateQuiz)
				admin.PATCH("/:quizId", quizHandler.RenameQuiz)
				admin.PUT("/:quizId/candidates", quizHandler.UpdateCandidates)
				admin.DELETE("/:quizId", quizHandler.DeleteQuiz)
			}
		}

		api.GET("/candidates", AdminAuth(), rosterHandler.ListCandidates)
	}

	return r
}
