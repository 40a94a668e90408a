package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportsmockery/smgo/config"
	"github.com/sportsmockery/smgo/controllers"
	"github.com/sportsmockery/smgo/llm"
	"github.com/sportsmockery/smgo/middleware"
	"github.com/sportsmockery/smgo/sportsdata"
	"github.com/sportsmockery/smgo/utils"
)

// SetupRouter wires middlewares and all API routes.
func SetupRouter(db *gorm.DB, store *sportsdata.Store, llmClient *llm.Client) *gin.Engine {
	cfg := config.Get()
	gin.SetMode(cfg.GinMode)

	router := gin.New()

	ginLogger, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel,
		cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err != nil {
		ginLogger = utils.Logger
	}
	router.Use(utils.Ginzap(ginLogger, time.RFC3339, true))
	router.Use(utils.RecoveryWithZap(ginLogger, true))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Client")
	router.Use(cors.New(corsConfig))

	feed := controllers.NewFeedController(db)
	posts := controllers.NewPostController(db)
	chat := controllers.NewChatController(db)
	polls := controllers.NewPollController(db)
	ai := controllers.NewAIController(llmClient)
	audio := controllers.NewAudioController(db)
	teamData := controllers.NewTeamDataController(store)
	mobileConfig := controllers.NewMobileConfigController()
	auth := controllers.NewAuthController(db)
	gm := controllers.NewGMController(db, store, llmClient)
	draft := controllers.NewDraftController(db, store, llmClient)

	limited := middleware.RateLimitMiddleware()

	api := router.Group("/api")
	{
		api.GET("/feed", middleware.AuthOptional(), feed.GetFeed)
		api.POST("/feed", middleware.AuthOptional(), feed.GetPersonalizedFeed)

		api.GET("/posts/:id", posts.GetPost)
		api.GET("/team/:slug", posts.ListTeamPosts)
		api.POST("/views/:id", limited, posts.RecordView)
		api.GET("/search", posts.Search)

		// Static per-team pages; the slug set is fixed so these stay literal
		// routes instead of a parameter that would collide with /api/feed.
		for _, team := range config.Teams {
			api.GET("/"+team.Slug+"/roster", teamData.Roster(team.Slug))
			api.GET("/"+team.Slug+"/schedule", teamData.Schedule(team.Slug))
			api.GET("/"+team.Slug+"/stats", teamData.Stats(team.Slug))
		}

		api.GET("/chat/messages", chat.ListMessages)
		api.POST("/chat/messages", middleware.AuthRequired(), limited, chat.SendMessage)

		api.GET("/polls/:id", middleware.AuthOptional(), polls.GetPoll)
		api.POST("/polls/:id/vote", middleware.AuthRequired(), limited, polls.Vote)

		api.POST("/ask-ai", limited, ai.Ask)

		api.GET("/audio/:slug", audio.GetBySlug)

		api.GET("/mobile/config", mobileConfig.Get)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", limited, auth.Register)
			authGroup.POST("/login", limited, auth.Login)
			authGroup.POST("/logout", auth.Logout)
			authGroup.GET("/me", middleware.AuthRequired(), auth.Me)
			authGroup.GET("/oauth/redirect", auth.OAuthRedirect)
			authGroup.GET("/oauth/callback", auth.OAuthCallback)
		}

		gmGroup := api.Group("/gm")
		{
			gmGroup.GET("/teams/:team/roster", gm.Roster)
			gmGroup.GET("/teams/:team/opponents", gm.Opponents)
			gmGroup.GET("/teams/:team/picks", gm.Picks)
			gmGroup.GET("/teams/:team/cap", gm.Cap)
			gmGroup.GET("/leaderboard", gm.Leaderboard)

			authed := gmGroup.Group("", middleware.AuthRequired())
			{
				authed.POST("/trade/grade", limited, gm.GradeTrade)
				authed.POST("/sessions", gm.SaveSession)
				authed.GET("/sessions", gm.ListSessions)
				authed.GET("/sessions/:id", gm.GetSession)

				authed.POST("/draft/start", draft.Start)
				authed.GET("/draft/prospects", draft.Prospects)
				authed.GET("/draft/eligibility", draft.Eligibility)
				authed.GET("/drafts/:id", draft.Get)
				authed.POST("/drafts/:id/pick", draft.Pick)
				authed.POST("/drafts/:id/grade", draft.Grade)
			}
		}
	}

	router.NoRoute(func(ctx *gin.Context) {
		utils.Fail(ctx, http.StatusNotFound, "api route not found")
	})

	return router
}
