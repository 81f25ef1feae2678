package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(getEnv("ALLOWED_ORIGIN", "http://localhost:3000")),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupUserRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.POST("", c.UserHandler.CreateUser)
		users.GET("", c.UserHandler.GetUsers)
		users.PUT("", c.UserHandler.UpdateUserName)
		users.GET("/loans", c.UserHandler.GetUserLoanHistories)
		users.DELETE("/:name", c.UserHandler.DeleteUser)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.CreateBook)
		books.GET("", c.BookHandler.GetBooks)
		books.GET("/stat", c.BookHandler.GetBookStatistics)
		books.POST("/loan", c.BookHandler.LoanBook)
		books.GET("/loan/count", c.BookHandler.CountLoanedBooks)
		books.PUT("/return", c.BookHandler.ReturnBook)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		statusCode := http.StatusOK

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
