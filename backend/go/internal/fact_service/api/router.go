package api

import (
	"Trivio/backend/go/internal/fact_service/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter 配置和返回一个 Gin 引擎实例。
func SetupRouter(h *Handler, jwtSecret string, svc *service.Service) *gin.Engine {
	// 使用默认中间件 (logger, recovery) 创建一个 Gin 引擎。
	r := gin.Default()
	r.Use(TraceMiddleware("fact_service"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 创建认证中间件实例
	authMiddleware := AuthMiddleware(jwtSecret, svc)

	// 使用 v1 版本对 API 进行分组
	apiV1 := r.Group("/api/v1")
	{
		// 用户认证路由组
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", h.RegisterEmail)
			auth.POST("/login", h.LoginEmail)
			auth.POST("/logout", authMiddleware, h.Logout)
		}

		// 领域路由组，认证中间件保护这个组下的所有路由
		protected := apiV1.Group("")
		protected.Use(authMiddleware)
		{
			protected.POST("/topics", h.CreateTopic)
			protected.PATCH("/topics/:id", h.UpdateTopic)
			protected.GET("/topics", h.ListTopics)

			protected.POST("/facts", h.CreateFact)
			protected.PATCH("/facts/:id", h.UpdateFact)
			protected.GET("/facts", h.ListFacts)

			protected.POST("/requests", h.CreateRequest)

			protected.PUT("/fact-states", h.UpdateUserFactState)
			protected.GET("/fact-states", h.ListUserFactState)
		}
	}

	return r
}
