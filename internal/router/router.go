package router

import (
	"github.com/blues/ets/internal/config"
	"github.com/blues/ets/internal/handler"
	"github.com/blues/ets/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "effort-tracker",
		})
	})

	authLogic := logic.NewAuthLogic(db, cfg.Auth)
	authHandler := handler.NewAuthHandler(authLogic)
	teamHandler := handler.NewTeamHandler(db)
	memberHandler := handler.NewMemberHandler(db, cfg.Auth)
	taskHandler := handler.NewTaskHandler(db)
	reportHandler := handler.NewReportHandler(db)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		// Everything below requires a valid session token.
		authed := api.Group("", handler.AuthRequired(authLogic))
		{
			authed.POST("/auth/change-password", authHandler.ChangePassword)

			teams := authed.Group("/teams")
			{
				teams.GET("", teamHandler.GetTeams)
				teams.POST("", teamHandler.CreateTeam)
			}

			members := authed.Group("/members")
			{
				members.GET("", memberHandler.GetMembers)
				members.GET("/:id", memberHandler.GetMember)
				members.POST("", memberHandler.CreateMember)
				members.PUT("/:id", memberHandler.UpdateMember)
				members.DELETE("/:id", memberHandler.DeleteMember)
			}

			tasks := authed.Group("/tasks")
			{
				tasks.GET("", taskHandler.GetTasks)
				tasks.GET("/:id", taskHandler.GetTask)
				tasks.POST("", taskHandler.CreateTask)
				tasks.PUT("/:id", taskHandler.UpdateTask)
				tasks.POST("/:id/tag", taskHandler.TagTask)
			}

			authed.GET("/reports", reportHandler.GetReport)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
