package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Rohit273848/travel-notes-app/internal/middleware"
	"github.com/Rohit273848/travel-notes-app/internal/modules/account"
	"github.com/Rohit273848/travel-notes-app/internal/modules/note"
	"github.com/Rohit273848/travel-notes-app/internal/modules/summary"
	"github.com/Rohit273848/travel-notes-app/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"data": "pong"})
	})

	account.NewHandler(account.NewService(a.db)).RegisterRoutes(api)

	noteSvc := note.NewService(a.db)
	note.NewHandler(noteSvc).RegisterRoutes(api, authMW)

	summarySvc := summary.NewService(noteSvc, summary.NewSummarizer(a.cfg.AI))
	summary.NewHandler(summarySvc).RegisterRoutes(api)
}
