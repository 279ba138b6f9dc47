package controllers

import (
	"strings"
	"time"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login body. Login accepts username or
// email in the same field.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a customer and returns a JWT.
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	login := strings.TrimSpace(req.Login)
	var user models.User
	if err := config.DB.Where("username = ? OR email = ?", login, strings.ToLower(login)).
		First(&user).Error; err != nil {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Invalid password for user: %s", user.Username)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if user.IsBlocked {
		utils.LogError("Blocked user attempted login: %s", user.Username)
		utils.Forbidden(c, "Your account has been blocked")
		return
	}
	if !user.IsVerified {
		utils.Forbidden(c, "Please verify your email before logging in")
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Model(&user).Update("last_login_at", user.LastLoginAt).Error; err != nil {
		utils.LogError("Failed to update last login for user ID: %d: %v", user.ID, err)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("Login successful: %s (ID: %d)", user.Username, user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout ends the session. Tokens are stateless, the client discards
// its copy.
func Logout(c *gin.Context) {
	utils.LogInfo("Logout called")
	utils.Success(c, "Logged out successfully", nil)
}
