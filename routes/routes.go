package routes

import (
	"student-activity-api/controllers"
	"student-activity-api/middleware"
	"student-activity-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Student Activity API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)

			// Submissions
			submissions := protected.Group("/submissions")
			{
				// Flagged listing must register before /:id
				submissions.GET("/flagged", middleware.RequireRole(models.RoleAdmin), controllers.GetFlaggedSubmissions)

				submissions.GET("", controllers.ListSubmissions)
				submissions.GET("/:id", controllers.GetSubmission)
				submissions.GET("/:id/document", controllers.DownloadDocument)

				// Only students create submissions
				submissions.POST("", middleware.RequireRole(models.RoleStudent), controllers.CreateSubmission)

				// Only the assigned faculty reviews (ownership enforced in the engine)
				submissions.POST("/:id/approve", middleware.RequireRole(models.RoleFaculty), controllers.ApproveSubmission)
				submissions.POST("/:id/reject", middleware.RequireRole(models.RoleFaculty), controllers.RejectSubmission)

				// Deletion workflow is admin territory
				submissions.POST("/:id/flag", middleware.RequireRole(models.RoleAdmin), controllers.FlagSubmission)
				submissions.POST("/:id/unflag", middleware.RequireRole(models.RoleAdmin), controllers.UnflagSubmission)
				submissions.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.FinalizeSubmissionDeletion)
			}
		}
	}
}
