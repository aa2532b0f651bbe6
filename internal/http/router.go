package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/otpauthsvc/internal/http/handlers"
	"github.com/you/otpauthsvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/refresh", ah.Refresh)

	v := r.Group("/auth").Use(jwtmw.WithJWT())
	v.GET("/profile", ah.Profile)
	v.POST("/logout", ah.Logout)

	return r
}
