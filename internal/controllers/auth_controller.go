package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/factorypro/site_backend/internal/middleware"
	"github.com/factorypro/site_backend/internal/utils"
)

type AuthController struct {
	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string
	SessionTTL        time.Duration
	SecureCookie      bool
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login checks the submitted password against the single admin credential
// and, on success, sets a signed 24h session cookie.
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.CheckAdminPassword(req.Password, a.AdminPassword, a.AdminPasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	now := time.Now().UTC()
	claims := middleware.Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.SessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.SetCookie(middleware.CookieName, token, int(a.SessionTTL.Seconds()), "/", "", a.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful"})
}

// Check reports whether the request carries a valid session. The token is
// neither refreshed nor rotated.
func (a *AuthController) Check(c *gin.Context) {
	tokenStr := middleware.TokenFromRequest(c)
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	if _, err := middleware.ParseToken(a.JWTSecret, tokenStr); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// Logout clears the session cookie unconditionally.
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", a.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}
