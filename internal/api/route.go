package api

import (
	"Parchment/internal/api/middleware"
	"Parchment/internal/pkg/logger"
	"Parchment/internal/pkg/metrics"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/metrics", metrics.Handler())

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.ActorMiddleware())
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("", group.UserHandler.CreateUser)
			userGroup.GET("/:id", group.UserHandler.GetUser)
			userGroup.PUT("/:id", group.UserHandler.UpdateUser)
			userGroup.DELETE("/:id", group.UserHandler.DeleteUser)
		}

		contentGroup := apiGroup.Group("/contents")
		{
			contentGroup.POST("", group.ContentHandler.CreateContent)
			contentGroup.GET("/search", group.ContentHandler.SearchContents)
			contentGroup.GET("/slug/:slug", group.ContentHandler.GetContentBySlug)
			contentGroup.GET("/:id", group.ContentHandler.GetContent)
			contentGroup.PUT("/:id", group.ContentHandler.UpdateContent)
			contentGroup.DELETE("/:id", group.ContentHandler.DeleteContent)
			contentGroup.GET("/:id/translations", group.TranslationHandler.GetTranslationsByContent)
			contentGroup.POST("/:id/hits/:kind", group.ContentHandler.RecordHit)
		}

		approvalGroup := apiGroup.Group("/approvals")
		{
			approvalGroup.POST("", group.ApprovalHandler.CreateApproval)
			approvalGroup.GET("/:id", group.ApprovalHandler.GetApproval)
			approvalGroup.PUT("/:id", group.ApprovalHandler.UpdateApproval)
			approvalGroup.DELETE("/:id", group.ApprovalHandler.DeleteApproval)
		}

		seoGroup := apiGroup.Group("/seo")
		{
			seoGroup.POST("", group.SEOHandler.CreateSEOData)
			seoGroup.GET("/:id", group.SEOHandler.GetSEOData)
			seoGroup.PUT("/:id", group.SEOHandler.UpdateSEOData)
			seoGroup.DELETE("/:id", group.SEOHandler.DeleteSEOData)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.POST("", group.MediaHandler.CreateMediaFile)
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
			mediaGroup.GET("/:id", group.MediaHandler.GetMediaFile)
			mediaGroup.PUT("/:id", group.MediaHandler.UpdateMediaFile)
			mediaGroup.DELETE("/:id", group.MediaHandler.DeleteMediaFile)
		}

		translationGroup := apiGroup.Group("/translations")
		{
			translationGroup.POST("", group.TranslationHandler.CreateTranslation)
			translationGroup.GET("/:id", group.TranslationHandler.GetTranslation)
			translationGroup.PUT("/:id", group.TranslationHandler.UpdateTranslation)
			translationGroup.DELETE("/:id", group.TranslationHandler.DeleteTranslation)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		{
			analyticsGroup.POST("", group.AnalyticsHandler.CreateAnalytics)
			analyticsGroup.GET("/:id", group.AnalyticsHandler.GetAnalytics)
			analyticsGroup.PUT("/:id", group.AnalyticsHandler.UpdateAnalytics)
			analyticsGroup.DELETE("/:id", group.AnalyticsHandler.DeleteAnalytics)
		}

		integrationGroup := apiGroup.Group("/integrations")
		{
			integrationGroup.POST("", group.IntegrationHandler.CreateIntegration)
			integrationGroup.GET("/:id", group.IntegrationHandler.GetIntegration)
			integrationGroup.PUT("/:id", group.IntegrationHandler.UpdateIntegration)
			integrationGroup.DELETE("/:id", group.IntegrationHandler.DeleteIntegration)
		}

		securityLogGroup := apiGroup.Group("/security-logs")
		{
			securityLogGroup.POST("", group.SecurityLogHandler.CreateSecurityLog)
			securityLogGroup.GET("/:id", group.SecurityLogHandler.GetSecurityLog)
			securityLogGroup.PUT("/:id", group.SecurityLogHandler.UpdateSecurityLog)
			securityLogGroup.DELETE("/:id", group.SecurityLogHandler.DeleteSecurityLog)
		}

		performanceGroup := apiGroup.Group("/performance-metrics")
		{
			performanceGroup.POST("", group.PerformanceHandler.CreateMetrics)
			performanceGroup.GET("/:id", group.PerformanceHandler.GetMetrics)
			performanceGroup.PUT("/:id", group.PerformanceHandler.UpdateMetrics)
			performanceGroup.DELETE("/:id", group.PerformanceHandler.DeleteMetrics)
		}

		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.GET("", group.AdminHandler.Describe)
			adminGroup.GET("/log", group.AdminHandler.Log)
			adminGroup.GET("/:entity", group.AdminHandler.List)
		}
	}

	return r
}
