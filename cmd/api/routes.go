package main

import (
	"net/http"

	"github.com/abhishek622/journalMin/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.requestLogger())
	r.Use(app.cors())

	r.GET("/healthz", app.Handler.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", app.Handler.SignUp)
		v1.POST("/login", app.Handler.Login)
		v1.GET("/moods", app.Handler.ListMoods)
	}

	// only creation is throttled; reads, edits and the assistant are not
	createLimit := ratelimit.Middleware(app.Limiter, userKey, app.Logger)

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)

		// entry routes
		protected.POST("/entries", createLimit, app.Handler.CreateEntry)
		protected.GET("/entries", app.Handler.ListEntries)
		protected.GET("/entries/:id", app.Handler.GetEntry)
		protected.PATCH("/entries/:id", app.Handler.UpdateEntry)
		protected.DELETE("/entries/:id", app.Handler.DeleteEntry)

		// category routes
		protected.POST("/categories", createLimit, app.Handler.CreateCategory)
		protected.GET("/categories", app.Handler.ListCategories)
		protected.GET("/categories/:id", app.Handler.GetCategory)
		protected.DELETE("/categories/:id", app.Handler.DeleteCategory)

		// draft routes
		protected.GET("/drafts", app.Handler.GetDraft)
		protected.PUT("/drafts", app.Handler.SaveDraft)

		protected.POST("/ai/ask", app.Handler.AskAboutEntry)
	}

	return r
}
