package controllers

import (
	"strings"
	"time"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const otpValidity = 10 * time.Minute

// RegisterRequest represents the signup body
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Register creates an unverified account and emails a one time code.
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if ok, msg := utils.ValidateUsername(req.Username); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}
	if ok, msg := utils.ValidateEmail(req.Email); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}
	if req.Phone != "" {
		ok, normalized := utils.ValidatePhone(req.Phone)
		if !ok {
			utils.BadRequest(c, normalized, nil)
			return
		}
		req.Phone = normalized
	}

	var existing models.User
	if err := config.DB.Where("username = ? OR email = ?", req.Username, req.Email).
		First(&existing).Error; err == nil {
		utils.Conflict(c, "Username or email already in use", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	if err := issueSignupOTP(user); err != nil {
		utils.LogError("Failed to issue signup OTP for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to send verification code", nil)
		return
	}

	session := sessions.Default(c)
	session.Set("pending_user_id", user.ID)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
	}

	utils.LogInfo("User registered, verification pending: %s (ID: %d)", user.Username, user.ID)
	utils.Created(c, "Account created. Check your email for the verification code.", gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func issueSignupOTP(user models.User) error {
	code := utils.GenerateOTP()

	// One live OTP per user.
	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.UserOTP{}).Error; err != nil {
		return err
	}
	otp := models.UserOTP{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(otpValidity),
	}
	if err := config.DB.Create(&otp).Error; err != nil {
		return err
	}

	go func() {
		if err := utils.SendOTP(user.Email, code); err != nil {
			utils.LogError("Failed to send OTP email to %s: %v", user.Email, err)
		}
	}()
	return nil
}

// VerifySignupOTPRequest represents the email verification body
type VerifySignupOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// VerifySignupOTP confirms the emailed code and activates the account.
func VerifySignupOTP(c *gin.Context) {
	utils.LogInfo("VerifySignupOTP called")

	var req VerifySignupOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		utils.NotFound(c, "Account not found")
		return
	}
	if user.IsVerified {
		utils.Success(c, "Account is already verified", nil)
		return
	}

	var otp models.UserOTP
	if err := config.DB.Where("user_id = ? AND code = ?", user.ID, req.OTP).First(&otp).Error; err != nil {
		utils.BadRequest(c, "Invalid verification code", nil)
		return
	}
	if time.Now().After(otp.ExpiresAt) {
		utils.BadRequest(c, "Verification code has expired", nil)
		return
	}

	if err := config.DB.Model(&user).Update("is_verified", true).Error; err != nil {
		utils.LogError("Failed to verify user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to verify account", nil)
		return
	}
	config.DB.Where("user_id = ?", user.ID).Delete(&models.UserOTP{})

	session := sessions.Default(c)
	session.Delete("pending_user_id")
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User verified: %s (ID: %d)", user.Username, user.ID)
	utils.Success(c, "Account verified successfully", gin.H{"token": token})
}

// ResendSignupOTP issues a fresh verification code.
func ResendSignupOTP(c *gin.Context) {
	utils.LogInfo("ResendSignupOTP called")

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		utils.NotFound(c, "Account not found")
		return
	}
	if user.IsVerified {
		utils.BadRequest(c, "Account is already verified", nil)
		return
	}

	if err := issueSignupOTP(user); err != nil {
		utils.LogError("Failed to reissue OTP for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to send verification code", nil)
		return
	}

	utils.Success(c, "A new verification code has been sent", nil)
}
