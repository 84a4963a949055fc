// Package server exposes the application over HTTP. Handlers are a thin
// presentation layer: input validation happens here, business logic in
// the services.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lightmeal/calorie-helper/internal/services"
)

// Server wires the services into a gin engine.
type Server struct {
	sessions  *services.SessionService
	profiles  *services.ProfileService
	records   *services.RecordService
	assistant *services.AssistantService
	engine    *gin.Engine
}

// New builds the router.
func New(sessions *services.SessionService, profiles *services.ProfileService, records *services.RecordService, assistant *services.AssistantService) *Server {
	s := &Server{
		sessions:  sessions,
		profiles:  profiles,
		records:   records,
		assistant: assistant,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.POST("/api/login", s.login)

	authed := engine.Group("/api", s.authMiddleware())
	authed.POST("/logout", s.logout)
	authed.GET("/dashboard", s.dashboard)
	authed.GET("/records", s.listRecords)
	authed.POST("/records", s.addRecord)
	authed.GET("/profile", s.getProfile)
	authed.PUT("/profile", s.putProfile)
	authed.GET("/quickfoods", s.quickFoods)
	authed.POST("/ai/analyze-image", s.analyzeImage)
	authed.POST("/ai/search", s.searchFood)
	authed.POST("/ai/chat", s.chat)
	authed.POST("/ai/edit-image", s.editImage)
	authed.GET("/ai/advice", s.advice)

	s.engine = engine
	return s
}

// Handler returns the underlying http.Handler (used by tests).
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts serving on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// apiError writes a uniform error body.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// authMiddleware validates the Bearer session token.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		session := s.sessions.Current()
		if !session.LoggedIn || token == "" || token != session.Token {
			apiError(c, http.StatusUnauthorized, "invalid session token")
			c.Abort()
			return
		}
		c.Next()
	}
}
