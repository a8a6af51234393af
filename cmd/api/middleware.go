package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhishek622/journalMin/internal/auth"
	"github.com/abhishek622/journalMin/internal/handler"
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.TokenMaker)
		if err != nil {
			response.Unauthorized(c, err.Error())
			return
		}

		// Check if user still exists
		if _, err := app.Repository.User.GetUserByID(c.Request.Context(), claims.UserID); err != nil {
			response.Unauthorized(c, "Unauthorized access")
			return
		}

		c.Set(handler.ClaimsKey, claims)
		c.Next()
	}
}

func verifyClaimsFromAuthHeader(c *gin.Context, tokenMaker *auth.JWTMaker) (*auth.UserClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header")
	}

	claims, err := tokenMaker.VerifyToken(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// requestLogger writes one zap line per request.
func (app *application) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Info("http",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (app *application) cors() gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, o := range app.Config.GetCORSOrigins() {
		allowed[o] = true
	}
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// userKey keys the creation limiter by authenticated user.
func userKey(c *gin.Context) string {
	v, ok := c.Get(handler.ClaimsKey)
	if !ok {
		return ""
	}
	if claims, ok := v.(*auth.UserClaims); ok {
		return "user:" + claims.UserID
	}
	return ""
}
